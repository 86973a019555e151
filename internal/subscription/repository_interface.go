package subscription

import (
	"context"
	"time"

	"gympulse/internal/profile"
)

type Repository interface {
	// ApplyRenewal extends the account's subscription and records the
	// renewal in one transaction, holding the profile row lock throughout.
	ApplyRenewal(ctx context.Context, accountID, months int, amount int64, paymentMethod string, now time.Time) (*profile.Profile, error)
	ListRenewals(ctx context.Context, accountID int) ([]Renewal, error)
}
