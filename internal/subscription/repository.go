package subscription

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"gympulse/internal/profile"
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

func (r *repository) ApplyRenewal(ctx context.Context, accountID, months int, amount int64, paymentMethod string, now time.Time) (*profile.Profile, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var p profile.Profile
	err = tx.QueryRowxContext(ctx, `
		SELECT `+profileColumns+`
		FROM user_profiles
		WHERE account_id = $1
		FOR UPDATE`,
		accountID,
	).StructScan(&p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, err
	}

	start, end := Extend(p.SubscriptionStartDate, p.SubscriptionEndDate, months, now)
	method := nullIfEmpty(paymentMethod)

	var updated profile.Profile
	err = tx.QueryRowxContext(ctx, `
		UPDATE user_profiles
		SET subscription_start_date = $1,
		    subscription_end_date = $2,
		    payment_status = TRUE,
		    payment_date = $3,
		    payment_method = COALESCE($4, payment_method),
		    updated_at = NOW()
		WHERE id = $5
		RETURNING `+profileColumns,
		start, end, now, method, p.ID,
	).StructScan(&updated)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO subscription_renewals (account_id, months, amount, payment_method)
		VALUES ($1, $2, $3, $4)`,
		accountID, months, amount, method,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) ListRenewals(ctx context.Context, accountID int) ([]Renewal, error) {
	renewals := []Renewal{}
	err := r.db.SelectContext(ctx, &renewals, `
		SELECT id, account_id, months, amount, payment_method, created_at
		FROM subscription_renewals
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC`, accountID)
	if err != nil {
		return nil, err
	}
	return renewals, nil
}
