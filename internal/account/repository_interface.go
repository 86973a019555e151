package account

import (
	"context"

	"gympulse/internal/auth"
)

type Repository interface {
	Create(ctx context.Context, name, email string, password auth.HashedPassword, role Role) (*Account, error)
	CreateTrainer(ctx context.Context, name, email string, password auth.HashedPassword, profile TrainerProfile) (*Trainer, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id int) (*Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetTrainerProfile(ctx context.Context, accountID int) (*TrainerProfile, error)
	Deactivate(ctx context.Context, id int) error
}
