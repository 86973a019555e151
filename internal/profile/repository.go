package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gympulse/internal/db"
)

const profileColumns = `id, account_id, diet_preference, payment_status, payment_method, payment_date,
	subscription_start_date, subscription_end_date, target_months, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *repository) Create(ctx context.Context, req CreateProfileRequest) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `
		INSERT INTO user_profiles (account_id, diet_preference, payment_method, target_months)
		VALUES ($1, $2, $3, $4)
		RETURNING `+profileColumns,
		req.AccountID, nullIfEmpty(req.DietPreference), nullIfEmpty(req.PaymentMethod), req.TargetMonths)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByAccountID(ctx context.Context, accountID int) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `SELECT `+profileColumns+` FROM user_profiles WHERE account_id = $1`, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ExistsForAccount(ctx context.Context, accountID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM user_profiles WHERE account_id = $1)`, accountID)
}
