package subscription

import "time"

// DaysPerMonth is the fixed month length used for every renewal.
const DaysPerMonth = 30

// Renewal is an append-only history row written once per successful renewal.
type Renewal struct {
	ID            int       `db:"id" json:"id"`
	AccountID     int       `db:"account_id" json:"user_id"`
	Months        int       `db:"months" json:"months"`
	Amount        int64     `db:"amount" json:"amount"`
	PaymentMethod *string   `db:"payment_method" json:"payment_method"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type RenewRequest struct {
	UserID        int    `json:"user_id"`
	RenewalMonths int    `json:"renewal_months"`
	PaymentMethod string `json:"payment_method"`
}

type Status struct {
	IsActive              bool       `json:"is_active"`
	IsExpired             bool       `json:"is_expired"`
	ExpiringSoon          bool       `json:"expiring_soon"`
	RemainingDays         int        `json:"remaining_days"`
	SubscriptionStartDate *time.Time `json:"subscription_start_date"`
	SubscriptionEndDate   *time.Time `json:"subscription_end_date"`
	TargetMonths          *int       `json:"target_months"`
	CanRenew              bool       `json:"can_renew"`
	PaymentStatus         bool       `json:"payment_status"`
}

type RenewResult struct {
	Amount      int64
	NewEndDate  time.Time
	RenewalDays int
}
