package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDietPreference_IsValid(t *testing.T) {
	for _, d := range []DietPreference{DietVegetarian, DietNonVeg, DietVegan, DietOthers} {
		assert.True(t, d.IsValid(), d)
	}
	assert.False(t, DietPreference("keto").IsValid())
	assert.False(t, DietPreference("").IsValid())
}

func TestProfile_DerivedState(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	tests := []struct {
		name          string
		end           *time.Time
		wantActive    bool
		wantExpired   bool
		wantRemaining int
	}{
		{name: "no end date", end: nil, wantActive: false, wantExpired: false, wantRemaining: 0},
		{name: "five days left", end: at(5 * 24 * time.Hour), wantActive: true, wantRemaining: 5},
		{name: "partial day floors", end: at(36 * time.Hour), wantActive: true, wantRemaining: 1},
		{name: "less than a day", end: at(time.Hour), wantActive: true, wantRemaining: 0},
		{name: "ends exactly now", end: at(0), wantActive: false, wantExpired: false, wantRemaining: 0},
		{name: "expired", end: at(-48 * time.Hour), wantActive: false, wantExpired: true, wantRemaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Profile{SubscriptionEndDate: tt.end}
			assert.Equal(t, tt.wantActive, p.IsSubscriptionActive(now))
			assert.Equal(t, tt.wantExpired, p.IsExpired(now))
			assert.Equal(t, tt.wantRemaining, p.RemainingDays(now))
		})
	}
}

func TestProfile_Diet(t *testing.T) {
	assert.Equal(t, DietPreference(""), (&Profile{}).Diet())

	vegan := DietVegan
	assert.Equal(t, DietVegan, (&Profile{DietPreference: &vegan}).Diet())
}
