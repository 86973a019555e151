package recipe

import (
	"context"
	"errors"
	"time"

	"gympulse/internal/account"
	"gympulse/internal/metrics"
	"gympulse/internal/profile"
)

const dateLayout = "2006-01-02"

type AccountFinder interface {
	FindByID(ctx context.Context, id int) (*account.Account, error)
}

type ProfileFinder interface {
	FindByAccountID(ctx context.Context, accountID int) (*profile.Profile, error)
}

type Service interface {
	Add(ctx context.Context, req AddRecipeRequest) (*Created, error)
	ListForUser(ctx context.Context, userID int) (*UserRecipes, error)
	ListAll(ctx context.Context, foodType string) ([]Item, error)
	Update(ctx context.Context, id int, req UpdateRecipeRequest) (*Item, error)
	Delete(ctx context.Context, id int) (string, error)
	CountByType(ctx context.Context) (Counts, error)
}

type service struct {
	repo     Repository
	accounts AccountFinder
	profiles ProfileFinder
	loc      *time.Location
}

func NewService(repo Repository, accounts AccountFinder, profiles ProfileFinder, loc *time.Location) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{repo: repo, accounts: accounts, profiles: profiles, loc: loc}
}

// DietFilter maps a diet preference to its food type. Unknown or empty
// preferences map to "", which lists every recipe.
func DietFilter(d profile.DietPreference) FoodType {
	switch d {
	case profile.DietVegetarian:
		return FoodVeg
	case profile.DietNonVeg:
		return FoodNonVeg
	case profile.DietVegan:
		return FoodVegan
	case profile.DietOthers:
		return FoodOther
	}
	return ""
}

func (s *service) date(t time.Time) string {
	return t.In(s.loc).Format(dateLayout)
}

func (s *service) item(r Recipe) Item {
	return Item{
		ID:           r.ID,
		Name:         r.Name,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		FoodType:     r.FoodType,
		CreatedAt:    s.date(r.CreatedAt),
	}
}

func (s *service) items(recipes []Recipe) []Item {
	out := make([]Item, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, s.item(r))
	}
	return out
}

// resolveCreator returns nil when the id is unset or unknown.
func (s *service) resolveCreator(ctx context.Context, id *int) (*int, error) {
	if id == nil || *id == 0 {
		return nil, nil
	}
	a, err := s.accounts.FindByID(ctx, *id)
	if errors.Is(err, account.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a.ID, nil
}

func (s *service) Add(ctx context.Context, req AddRecipeRequest) (*Created, error) {
	if req.Name == "" || req.Ingredients == "" || req.Instructions == "" || req.FoodType == "" {
		return nil, ErrMissingFields
	}
	foodType := FoodType(req.FoodType)
	if !foodType.IsValid() {
		return nil, ErrInvalidFoodType
	}

	creator, err := s.resolveCreator(ctx, req.AdminID)
	if err != nil {
		return nil, err
	}

	r, err := s.repo.Create(ctx, &Recipe{
		Name:         req.Name,
		FoodType:     foodType,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CreatedBy:    creator,
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordRecipeWrite("create")

	return &Created{
		ID:        r.ID,
		Name:      r.Name,
		FoodType:  r.FoodType,
		CreatedAt: s.date(r.CreatedAt),
	}, nil
}

func (s *service) ListForUser(ctx context.Context, userID int) (*UserRecipes, error) {
	if _, err := s.accounts.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	p, err := s.profiles.FindByAccountID(ctx, userID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil, ErrUserProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	recipes, err := s.repo.List(ctx, DietFilter(p.Diet()))
	if err != nil {
		return nil, err
	}

	var diet *string
	if p.DietPreference != nil {
		d := string(*p.DietPreference)
		diet = &d
	}
	return &UserRecipes{UserDiet: diet, Recipes: s.items(recipes)}, nil
}

func (s *service) ListAll(ctx context.Context, foodType string) ([]Item, error) {
	recipes, err := s.repo.List(ctx, FoodType(foodType))
	if err != nil {
		return nil, err
	}
	return s.items(recipes), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateRecipeRequest) (*Item, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Ingredients != nil {
		r.Ingredients = *req.Ingredients
	}
	if req.Instructions != nil {
		r.Instructions = *req.Instructions
	}
	if req.FoodType != nil {
		ft := FoodType(*req.FoodType)
		if !ft.IsValid() {
			return nil, ErrInvalidFoodType
		}
		r.FoodType = ft
	}

	updated, err := s.repo.Update(ctx, r)
	if err != nil {
		return nil, err
	}
	metrics.RecordRecipeWrite("update")

	it := s.item(*updated)
	return &it, nil
}

func (s *service) Delete(ctx context.Context, id int) (string, error) {
	name, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	metrics.RecordRecipeWrite("delete")
	return name, nil
}

func (s *service) CountByType(ctx context.Context) (Counts, error) {
	return s.repo.CountByType(ctx)
}
