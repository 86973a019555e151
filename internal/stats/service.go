package stats

import (
	"context"
	"fmt"

	"gympulse/internal/recipe"
)

type RecipeCounter interface {
	CountByType(ctx context.Context) (recipe.Counts, error)
}

type Service interface {
	Report(ctx context.Context) (*Report, error)
}

type service struct {
	repo    Repository
	recipes RecipeCounter
}

func NewService(repo Repository, recipes RecipeCounter) Service {
	return &service{repo: repo, recipes: recipes}
}

// Report gathers counts across all tables. GrandTotal sums rows, so
// accounts are counted once and not again per role.
func (s *service) Report(ctx context.Context) (*Report, error) {
	tables, err := s.repo.TableCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tables: %w", err)
	}
	recipes, err := s.recipes.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("count recipes: %w", err)
	}

	r := &Report{
		Accounts:     tables.AccountCounts,
		Profiles:     tables.ProfileCounts,
		Attendance:   tables.AttendanceCounts,
		DietPlans:    tables.DietPlans,
		FoodEntries:  tables.FoodEntries,
		Recipes:      recipes,
		Videos:       tables.Videos,
		Reviews:      tables.Reviews,
		ChatMessages: tables.ChatMessages,
	}
	r.GrandTotal = r.Accounts.Total +
		r.Profiles.Total() +
		r.Attendance.Total +
		r.DietPlans +
		r.FoodEntries +
		recipes.Total() +
		r.Videos +
		r.Reviews +
		r.ChatMessages
	return r, nil
}
