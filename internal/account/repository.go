package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gympulse/internal/auth"
	"gympulse/internal/db"
)

const accountColumns = `id, name, email, password_hash, role, is_active, created_at, updated_at`

const uniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (r *repository) Create(ctx context.Context, name, email string, password auth.HashedPassword, role Role) (*Account, error) {
	if password.IsZero() {
		return nil, auth.ErrEmptyPassword
	}

	var a Account
	err := r.db.GetContext(ctx, &a, `
		INSERT INTO accounts (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+accountColumns,
		name, email, password.String(), role)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return &a, nil
}

// CreateTrainer inserts the account and its trainer profile atomically.
func (r *repository) CreateTrainer(ctx context.Context, name, email string, password auth.HashedPassword, profile TrainerProfile) (*Trainer, error) {
	if password.IsZero() {
		return nil, auth.ErrEmptyPassword
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var a Account
	err = tx.GetContext(ctx, &a, `
		INSERT INTO accounts (name, email, password_hash, role)
		VALUES ($1, $2, $3, 'trainer')
		RETURNING `+accountColumns,
		name, email, password.String())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	var p TrainerProfile
	err = tx.GetContext(ctx, &p, `
		INSERT INTO trainer_profiles (account_id, mobile, gender, experience, specialization, joining_period)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, account_id, mobile, gender, experience, specialization, joining_period, created_at`,
		a.ID, profile.Mobile, profile.Gender, profile.Experience, profile.Specialization, profile.JoiningPeriod)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &Trainer{Account: &a, Profile: &p}, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	err := r.db.GetContext(ctx, &a, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Account, error) {
	var a Account
	err := r.db.GetContext(ctx, &a, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email)
}

func (r *repository) GetTrainerProfile(ctx context.Context, accountID int) (*TrainerProfile, error) {
	var p TrainerProfile
	err := r.db.GetContext(ctx, &p, `
		SELECT id, account_id, mobile, gender, experience, specialization, joining_period, created_at
		FROM trainer_profiles
		WHERE account_id = $1`, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Deactivate is the only way an account goes away; rows are never deleted.
func (r *repository) Deactivate(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
