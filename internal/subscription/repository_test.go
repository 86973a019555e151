package subscription

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gympulse/internal/profile"
)

var profileCols = []string{
	"id", "account_id", "diet_preference", "payment_status", "payment_method", "payment_date",
	"subscription_start_date", "subscription_end_date", "target_months", "created_at", "updated_at",
}

func setupSubscriptionMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestApplyRenewal_RestartsAbsentSubscription(t *testing.T) {
	repo, mock, close := setupSubscriptionMock(t)
	defer close()

	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	end := now.Add(90 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_profiles WHERE account_id = $1 FOR UPDATE")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(3, 7, "vegan", false, nil, nil, nil, nil, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE user_profiles SET subscription_start_date = $1")).
		WithArgs(now, end, now, "card", 3).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(3, 7, "vegan", true, "card", now, now, end, nil, now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO subscription_renewals (account_id, months, amount, payment_method)")).
		WithArgs(7, 3, int64(699), "card").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	p, err := repo.ApplyRenewal(context.Background(), 7, 3, 699, "card", now)
	require.NoError(t, err)
	assert.True(t, p.PaymentStatus)
	require.NotNil(t, p.SubscriptionEndDate)
	assert.True(t, p.SubscriptionEndDate.Equal(end))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRenewal_StacksActiveSubscription(t *testing.T) {
	repo, mock, close := setupSubscriptionMock(t)
	defer close()

	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	start := now.Add(-20 * 24 * time.Hour)
	end := now.Add(10 * 24 * time.Hour)
	newEnd := end.Add(30 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(3, 7, nil, true, "upi", start, start, end, 1, now, now))
	// Empty payment method is sent as NULL so COALESCE keeps the stored one.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE user_profiles")).
		WithArgs(start, newEnd, now, nil, 3).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(3, 7, nil, true, "upi", now, start, newEnd, 1, now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO subscription_renewals")).
		WithArgs(7, 1, int64(399), nil).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	p, err := repo.ApplyRenewal(context.Background(), 7, 1, 399, "", now)
	require.NoError(t, err)
	assert.True(t, p.SubscriptionEndDate.Equal(newEnd))
	require.NotNil(t, p.PaymentMethod)
	assert.Equal(t, "upi", *p.PaymentMethod)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRenewal_MissingProfile(t *testing.T) {
	repo, mock, close := setupSubscriptionMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(profileCols))
	mock.ExpectRollback()

	_, err := repo.ApplyRenewal(context.Background(), 9, 1, 399, "", time.Now())
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRenewal_HistoryInsertFailsRollsBack(t *testing.T) {
	repo, mock, close := setupSubscriptionMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(3, 7, nil, false, nil, nil, nil, nil, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE user_profiles")).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(3, 7, nil, true, nil, now, now, now, nil, now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO subscription_renewals")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.ApplyRenewal(context.Background(), 7, 1, 399, "", now)
	assert.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRenewals(t *testing.T) {
	repo, mock, close := setupSubscriptionMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM subscription_renewals WHERE account_id = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "months", "amount", "payment_method", "created_at"}).
			AddRow(2, 7, 6, 1199, "card", now).
			AddRow(1, 7, 1, 399, nil, now.Add(-time.Hour)))

	out, err := repo.ListRenewals(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1199), out[0].Amount)
	assert.Nil(t, out[1].PaymentMethod)
}
