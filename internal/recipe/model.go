package recipe

import "time"

type FoodType string

const (
	FoodVeg    FoodType = "veg"
	FoodNonVeg FoodType = "non_veg"
	FoodVegan  FoodType = "vegan"
	FoodOther  FoodType = "other"
)

// FoodTypes lists every accepted food type.
var FoodTypes = []FoodType{FoodVeg, FoodNonVeg, FoodVegan, FoodOther}

func (f FoodType) IsValid() bool {
	switch f {
	case FoodVeg, FoodNonVeg, FoodVegan, FoodOther:
		return true
	}
	return false
}

type Recipe struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	FoodType     FoodType  `db:"food_type"`
	Ingredients  string    `db:"ingredients"`
	Instructions string    `db:"instructions"`
	CreatedBy    *int      `db:"created_by"`
	CreatedAt    time.Time `db:"created_at"`
}

type AddRecipeRequest struct {
	Name         string `json:"name"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	FoodType     string `json:"food_type"`
	AdminID      *int   `json:"admin_id"`
}

// UpdateRecipeRequest carries only the fields present in the request body.
type UpdateRecipeRequest struct {
	Name         *string `json:"name"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
	FoodType     *string `json:"food_type"`
}

// Created is the short form returned after an insert.
type Created struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	FoodType  FoodType `json:"food_type"`
	CreatedAt string   `json:"created_at"`
}

type Item struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	FoodType     FoodType `json:"food_type"`
	CreatedAt    string   `json:"created_at"`
}

type UserRecipes struct {
	UserDiet *string
	Recipes  []Item
}

type Counts struct {
	Veg    int `json:"veg"`
	NonVeg int `json:"non_veg"`
	Vegan  int `json:"vegan"`
	Other  int `json:"other"`
}

func (c Counts) Total() int {
	return c.Veg + c.NonVeg + c.Vegan + c.Other
}
