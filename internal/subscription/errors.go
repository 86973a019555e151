package subscription

import "gympulse/internal/api"

var (
	ErrMissingFields = api.Validation("User ID and renewal months are required")
	ErrInvalidMonths = api.Validation("Invalid renewal months")
)
