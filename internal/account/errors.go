package account

import "gympulse/internal/api"

var (
	ErrUserNotFound       = api.NotFound("User not found")
	ErrTrainerNotFound    = api.NotFound("Trainer not found")
	ErrEmailExists        = api.Conflict("Email already registered")
	ErrInvalidCredentials = api.Unauthorized("Invalid email or password")
	ErrAccountInactive    = api.Unauthorized("Account is deactivated")
	ErrInvalidRefresh     = api.Unauthorized("Invalid or expired refresh token")
)
