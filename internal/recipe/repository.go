package recipe

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const recipeColumns = `id, name, food_type, ingredients, instructions, created_by, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Recipe) (*Recipe, error) {
	var out Recipe
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO food_recipes (name, food_type, ingredients, instructions, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+recipeColumns,
		rec.Name, rec.FoodType, rec.Ingredients, rec.Instructions, rec.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Recipe, error) {
	var out Recipe
	err := r.db.GetContext(ctx, &out, `SELECT `+recipeColumns+` FROM food_recipes WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns recipes newest first. An empty foodType means no filter.
func (r *repository) List(ctx context.Context, foodType FoodType) ([]Recipe, error) {
	recipes := []Recipe{}
	var err error
	if foodType == "" {
		err = r.db.SelectContext(ctx, &recipes, `
			SELECT `+recipeColumns+`
			FROM food_recipes
			ORDER BY created_at DESC, id DESC`)
	} else {
		err = r.db.SelectContext(ctx, &recipes, `
			SELECT `+recipeColumns+`
			FROM food_recipes
			WHERE food_type = $1
			ORDER BY created_at DESC, id DESC`, foodType)
	}
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *repository) Update(ctx context.Context, rec *Recipe) (*Recipe, error) {
	var out Recipe
	err := r.db.GetContext(ctx, &out, `
		UPDATE food_recipes
		SET name = $1, food_type = $2, ingredients = $3, instructions = $4
		WHERE id = $5
		RETURNING `+recipeColumns,
		rec.Name, rec.FoodType, rec.Ingredients, rec.Instructions, rec.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) Delete(ctx context.Context, id int) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name, `DELETE FROM food_recipes WHERE id = $1 RETURNING name`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrRecipeNotFound
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

func (r *repository) CountByType(ctx context.Context) (Counts, error) {
	var rows []struct {
		FoodType FoodType `db:"food_type"`
		Count    int      `db:"count"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT food_type, COUNT(*) AS count
		FROM food_recipes
		GROUP BY food_type`)
	if err != nil {
		return Counts{}, err
	}

	var c Counts
	for _, row := range rows {
		switch row.FoodType {
		case FoodVeg:
			c.Veg = row.Count
		case FoodNonVeg:
			c.NonVeg = row.Count
		case FoodVegan:
			c.Vegan = row.Count
		case FoodOther:
			c.Other = row.Count
		}
	}
	return c, nil
}
