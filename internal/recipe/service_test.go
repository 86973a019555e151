package recipe

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gympulse/internal/account"
	"gympulse/internal/profile"
)

// memRepository keeps recipes in memory and stamps each insert one minute
// after the previous one.
type memRepository struct {
	rows   []Recipe
	nextID int
	clock  time.Time
	writes int
}

func newMemRepository() *memRepository {
	return &memRepository{nextID: 1, clock: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (m *memRepository) Create(_ context.Context, r *Recipe) (*Recipe, error) {
	m.writes++
	out := *r
	out.ID = m.nextID
	out.CreatedAt = m.clock
	m.nextID++
	m.clock = m.clock.Add(time.Minute)
	m.rows = append(m.rows, out)
	return &out, nil
}

func (m *memRepository) FindByID(_ context.Context, id int) (*Recipe, error) {
	for _, r := range m.rows {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, ErrRecipeNotFound
}

func (m *memRepository) List(_ context.Context, foodType FoodType) ([]Recipe, error) {
	out := []Recipe{}
	for _, r := range m.rows {
		if foodType == "" || r.FoodType == foodType {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memRepository) Update(_ context.Context, r *Recipe) (*Recipe, error) {
	for i := range m.rows {
		if m.rows[i].ID == r.ID {
			m.writes++
			m.rows[i] = *r
			out := *r
			return &out, nil
		}
	}
	return nil, ErrRecipeNotFound
}

func (m *memRepository) Delete(_ context.Context, id int) (string, error) {
	for i, r := range m.rows {
		if r.ID == id {
			m.writes++
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return r.Name, nil
		}
	}
	return "", ErrRecipeNotFound
}

func (m *memRepository) CountByType(_ context.Context) (Counts, error) {
	var c Counts
	for _, r := range m.rows {
		switch r.FoodType {
		case FoodVeg:
			c.Veg++
		case FoodNonVeg:
			c.NonVeg++
		case FoodVegan:
			c.Vegan++
		case FoodOther:
			c.Other++
		}
	}
	return c, nil
}

type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) FindByID(ctx context.Context, id int) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) FindByAccountID(ctx context.Context, accountID int) (*profile.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func addRecipe(t *testing.T, svc Service, name string, ft FoodType) *Created {
	t.Helper()
	c, err := svc.Add(context.Background(), AddRecipeRequest{
		Name: name, Ingredients: "stuff", Instructions: "cook", FoodType: string(ft),
	})
	require.NoError(t, err)
	return c
}

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestService_AddThenListAll(t *testing.T) {
	for _, ft := range FoodTypes {
		t.Run(string(ft), func(t *testing.T) {
			svc := NewService(newMemRepository(), new(MockAccounts), new(MockProfiles), time.UTC)

			created := addRecipe(t, svc, "dish-"+string(ft), ft)
			assert.Equal(t, ft, created.FoodType)
			assert.Equal(t, "2025-05-01", created.CreatedAt)

			items, err := svc.ListAll(context.Background(), string(ft))
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, created.ID, items[0].ID)
		})
	}
}

func TestService_Add_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     AddRecipeRequest
		wantErr error
	}{
		{
			name:    "missing name",
			req:     AddRecipeRequest{Ingredients: "a", Instructions: "b", FoodType: "veg"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing food type",
			req:     AddRecipeRequest{Name: "x", Ingredients: "a", Instructions: "b"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "food type outside enumeration",
			req:     AddRecipeRequest{Name: "x", Ingredients: "a", Instructions: "b", FoodType: "keto"},
			wantErr: ErrInvalidFoodType,
		},
		{
			name:    "food type is case sensitive",
			req:     AddRecipeRequest{Name: "x", Ingredients: "a", Instructions: "b", FoodType: "VEG"},
			wantErr: ErrInvalidFoodType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepository()
			svc := NewService(repo, new(MockAccounts), new(MockProfiles), time.UTC)

			_, err := svc.Add(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, repo.writes)
		})
	}
}

func TestService_Add_CreatorIsBestEffort(t *testing.T) {
	repo := newMemRepository()
	accounts := new(MockAccounts)
	accounts.On("FindByID", mock.Anything, 7).Return(&account.Account{ID: 7}, nil)
	accounts.On("FindByID", mock.Anything, 404).Return(nil, account.ErrUserNotFound)
	accounts.On("FindByID", mock.Anything, 500).Return(nil, assert.AnError)
	svc := NewService(repo, accounts, new(MockProfiles), time.UTC)

	known, unknown, broken := 7, 404, 500
	base := AddRecipeRequest{Name: "Oats", Ingredients: "oats", Instructions: "soak", FoodType: "vegan"}

	req := base
	req.AdminID = &known
	_, err := svc.Add(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, repo.rows[0].CreatedBy)
	assert.Equal(t, 7, *repo.rows[0].CreatedBy)

	req.AdminID = &unknown
	_, err = svc.Add(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, repo.rows[1].CreatedBy)

	req.AdminID = &broken
	_, err = svc.Add(context.Background(), req)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Len(t, repo.rows, 2)
}

func TestService_Add_DateInConfiguredZone(t *testing.T) {
	repo := newMemRepository()
	repo.clock = time.Date(2025, 5, 1, 22, 30, 0, 0, time.UTC)
	loc := time.FixedZone("IST", 5*3600+1800)
	svc := NewService(repo, new(MockAccounts), new(MockProfiles), loc)

	c := addRecipe(t, svc, "Late dinner", FoodNonVeg)
	assert.Equal(t, "2025-05-02", c.CreatedAt)
}

func TestService_ListForUser(t *testing.T) {
	diet := func(d profile.DietPreference) *profile.DietPreference { return &d }

	tests := []struct {
		name      string
		pref      *profile.DietPreference
		wantNames []string
	}{
		{name: "vegetarian gets veg only", pref: diet(profile.DietVegetarian), wantNames: []string{"veg-2", "veg-1"}},
		{name: "non_veg", pref: diet(profile.DietNonVeg), wantNames: []string{"chicken"}},
		{name: "vegan", pref: diet(profile.DietVegan), wantNames: []string{"tofu"}},
		{name: "others", pref: diet(profile.DietOthers), wantNames: []string{"misc"}},
		{name: "unrecognised falls back to all", pref: diet("keto"), wantNames: []string{"misc", "veg-2", "tofu", "chicken", "veg-1"}},
		{name: "absent falls back to all", pref: nil, wantNames: []string{"misc", "veg-2", "tofu", "chicken", "veg-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := new(MockAccounts)
			profiles := new(MockProfiles)
			accounts.On("FindByID", mock.Anything, 1).Return(&account.Account{ID: 1}, nil)
			profiles.On("FindByAccountID", mock.Anything, 1).Return(&profile.Profile{AccountID: 1, DietPreference: tt.pref}, nil)

			svc := NewService(newMemRepository(), accounts, profiles, time.UTC)
			addRecipe(t, svc, "veg-1", FoodVeg)
			addRecipe(t, svc, "chicken", FoodNonVeg)
			addRecipe(t, svc, "tofu", FoodVegan)
			addRecipe(t, svc, "veg-2", FoodVeg)
			addRecipe(t, svc, "misc", FoodOther)

			res, err := svc.ListForUser(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, names(res.Recipes))
			if tt.pref == nil {
				assert.Nil(t, res.UserDiet)
			} else {
				require.NotNil(t, res.UserDiet)
				assert.Equal(t, string(*tt.pref), *res.UserDiet)
			}
		})
	}
}

func TestService_ListForUser_NotFound(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		accounts := new(MockAccounts)
		accounts.On("FindByID", mock.Anything, 2).Return(nil, account.ErrUserNotFound)
		svc := NewService(newMemRepository(), accounts, new(MockProfiles), time.UTC)

		_, err := svc.ListForUser(context.Background(), 2)
		assert.ErrorIs(t, err, account.ErrUserNotFound)
		assert.EqualError(t, err, "User not found")
	})

	t.Run("no profile", func(t *testing.T) {
		accounts := new(MockAccounts)
		profiles := new(MockProfiles)
		accounts.On("FindByID", mock.Anything, 3).Return(&account.Account{ID: 3}, nil)
		profiles.On("FindByAccountID", mock.Anything, 3).Return(nil, profile.ErrProfileNotFound)
		svc := NewService(newMemRepository(), accounts, profiles, time.UTC)

		_, err := svc.ListForUser(context.Background(), 3)
		assert.ErrorIs(t, err, ErrUserProfileNotFound)
		assert.EqualError(t, err, "User profile not found")
	})
}

func TestService_Update(t *testing.T) {
	ptr := func(s string) *string { return &s }

	t.Run("omitted fields are unchanged", func(t *testing.T) {
		svc := NewService(newMemRepository(), new(MockAccounts), new(MockProfiles), time.UTC)
		c := addRecipe(t, svc, "Dal", FoodVeg)

		it, err := svc.Update(context.Background(), c.ID, UpdateRecipeRequest{Instructions: ptr("simmer")})
		require.NoError(t, err)
		assert.Equal(t, "Dal", it.Name)
		assert.Equal(t, "stuff", it.Ingredients)
		assert.Equal(t, "simmer", it.Instructions)
		assert.Equal(t, FoodVeg, it.FoodType)
	})

	t.Run("invalid food type changes nothing", func(t *testing.T) {
		repo := newMemRepository()
		svc := NewService(repo, new(MockAccounts), new(MockProfiles), time.UTC)
		c := addRecipe(t, svc, "Dal", FoodVeg)
		before := repo.rows[0]
		writes := repo.writes

		_, err := svc.Update(context.Background(), c.ID, UpdateRecipeRequest{Name: ptr("Renamed"), FoodType: ptr("meat")})
		assert.ErrorIs(t, err, ErrInvalidFoodType)
		assert.Equal(t, before, repo.rows[0])
		assert.Equal(t, writes, repo.writes)
	})

	t.Run("missing recipe", func(t *testing.T) {
		svc := NewService(newMemRepository(), new(MockAccounts), new(MockProfiles), time.UTC)
		_, err := svc.Update(context.Background(), 42, UpdateRecipeRequest{FoodType: ptr("meat")})
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newMemRepository(), new(MockAccounts), new(MockProfiles), time.UTC)
	c := addRecipe(t, svc, "Paneer Tikka", FoodVeg)

	name, err := svc.Delete(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paneer Tikka", name)

	_, err = svc.Delete(context.Background(), c.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestService_CountByType(t *testing.T) {
	svc := NewService(newMemRepository(), new(MockAccounts), new(MockProfiles), time.UTC)

	empty, err := svc.CountByType(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Counts{}, empty)
	assert.Equal(t, 0, empty.Total())

	addRecipe(t, svc, "a", FoodVeg)
	addRecipe(t, svc, "b", FoodVeg)
	addRecipe(t, svc, "c", FoodOther)

	counts, err := svc.CountByType(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Counts{Veg: 2, Other: 1}, counts)

	all, err := svc.ListAll(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, len(all), counts.Total())
}

func TestDietFilter(t *testing.T) {
	assert.Equal(t, FoodVeg, DietFilter(profile.DietVegetarian))
	assert.Equal(t, FoodNonVeg, DietFilter(profile.DietNonVeg))
	assert.Equal(t, FoodVegan, DietFilter(profile.DietVegan))
	assert.Equal(t, FoodOther, DietFilter(profile.DietOthers))
	assert.Equal(t, FoodType(""), DietFilter("veg"))
	assert.Equal(t, FoodType(""), DietFilter(""))
}
