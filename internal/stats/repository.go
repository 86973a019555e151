package stats

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) TableCounts(ctx context.Context) (*TableCounts, error) {
	var c TableCounts
	err := r.db.GetContext(ctx, &c, `
		SELECT
			(SELECT COUNT(*) FROM accounts) AS accounts_total,
			(SELECT COUNT(*) FROM accounts WHERE role = 'trainer') AS accounts_trainers,
			(SELECT COUNT(*) FROM accounts WHERE role = 'user') AS accounts_users,
			(SELECT COUNT(*) FROM user_profiles WHERE payment_status) AS profiles_paid,
			(SELECT COUNT(*) FROM user_profiles WHERE NOT payment_status) AS profiles_unpaid,
			(SELECT COUNT(*) FROM attendance) AS attendance_total,
			(SELECT COUNT(*) FROM attendance WHERE status = 'pending') AS attendance_pending,
			(SELECT COUNT(*) FROM attendance WHERE status = 'accepted') AS attendance_accepted,
			(SELECT COUNT(*) FROM user_diet_plans) AS diet_plans,
			(SELECT COUNT(*) FROM food_entries) AS food_entries,
			(SELECT COUNT(*) FROM workout_videos) AS videos,
			(SELECT COUNT(*) FROM reviews) AS reviews,
			(SELECT COUNT(*) FROM chat_messages) AS chat_messages`)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
