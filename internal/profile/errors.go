package profile

import "gympulse/internal/api"

var (
	ErrProfileNotFound = api.NotFound("Profile not found")
	ErrProfileExists   = api.Conflict("Profile already exists")
)
