package profile

import "time"

type DietPreference string

const (
	DietVegetarian DietPreference = "vegetarian"
	DietNonVeg     DietPreference = "non_veg"
	DietVegan      DietPreference = "vegan"
	DietOthers     DietPreference = "others"
)

func (d DietPreference) IsValid() bool {
	switch d {
	case DietVegetarian, DietNonVeg, DietVegan, DietOthers:
		return true
	}
	return false
}

// Profile is the billing and diet extension of an account.
type Profile struct {
	ID                    int             `db:"id" json:"id"`
	AccountID             int             `db:"account_id" json:"account_id"`
	DietPreference        *DietPreference `db:"diet_preference" json:"diet_preference"`
	PaymentStatus         bool            `db:"payment_status" json:"payment_status"`
	PaymentMethod         *string         `db:"payment_method" json:"payment_method"`
	PaymentDate           *time.Time      `db:"payment_date" json:"payment_date"`
	SubscriptionStartDate *time.Time      `db:"subscription_start_date" json:"subscription_start_date"`
	SubscriptionEndDate   *time.Time      `db:"subscription_end_date" json:"subscription_end_date"`
	TargetMonths          *int            `db:"target_months" json:"target_months"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at" json:"updated_at"`
}

// IsSubscriptionActive reports whether an end date is set and strictly after now.
func (p *Profile) IsSubscriptionActive(now time.Time) bool {
	return p.SubscriptionEndDate != nil && p.SubscriptionEndDate.After(now)
}

// IsExpired reports whether an end date is set and before now.
func (p *Profile) IsExpired(now time.Time) bool {
	return p.SubscriptionEndDate != nil && p.SubscriptionEndDate.Before(now)
}

// RemainingDays counts whole days left, zero when expired or unset.
func (p *Profile) RemainingDays(now time.Time) int {
	if !p.IsSubscriptionActive(now) {
		return 0
	}
	return int(p.SubscriptionEndDate.Sub(now) / (24 * time.Hour))
}

// Diet returns the stored preference, or "" when none is set.
func (p *Profile) Diet() DietPreference {
	if p.DietPreference == nil {
		return ""
	}
	return *p.DietPreference
}

type CreateProfileRequest struct {
	AccountID      int    `json:"user_id" validate:"required,gt=0"`
	DietPreference string `json:"diet_preference" validate:"omitempty,oneof=vegetarian non_veg vegan others"`
	PaymentMethod  string `json:"payment_method" validate:"omitempty,max=50"`
	TargetMonths   *int   `json:"target_months" validate:"omitempty,gte=1,lte=12"`
}

// View adds the derived subscription state to a Profile.
type View struct {
	*Profile
	IsSubscriptionActive bool `json:"is_subscription_active"`
	RemainingDays        int  `json:"remaining_days"`
}
