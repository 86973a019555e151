package profile

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateProfileRequest) (*Profile, error)
	FindByAccountID(ctx context.Context, accountID int) (*Profile, error)
	ExistsForAccount(ctx context.Context, accountID int) (bool, error)
}
