package recipe

import "context"

type Repository interface {
	Create(ctx context.Context, r *Recipe) (*Recipe, error)
	FindByID(ctx context.Context, id int) (*Recipe, error)
	List(ctx context.Context, foodType FoodType) ([]Recipe, error)
	Update(ctx context.Context, r *Recipe) (*Recipe, error)
	Delete(ctx context.Context, id int) (string, error)
	CountByType(ctx context.Context) (Counts, error)
}
