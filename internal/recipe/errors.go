package recipe

import "gympulse/internal/api"

var (
	ErrMissingFields       = api.Validation("name, ingredients, instructions, and food_type are required")
	ErrInvalidFoodType     = api.Validation("Invalid food_type. Must be veg, non_veg, vegan, or other")
	ErrRecipeNotFound      = api.NotFound("Recipe not found")
	ErrUserProfileNotFound = api.NotFound("User profile not found")
)
