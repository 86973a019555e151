package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	want := map[int]int64{1: 399, 2: 499, 3: 699, 6: 1199, 8: 1599, 12: 2199}
	for _, m := range TariffMonths() {
		amount, ok := Price(m)
		require.True(t, ok, m)
		assert.Equal(t, want[m], amount, m)
	}
	assert.Len(t, TariffMonths(), len(want))

	for _, m := range []int{0, -1, 4, 5, 7, 9, 24} {
		amount, ok := Price(m)
		assert.False(t, ok, m)
		assert.Zero(t, amount, m)
	}
}

func TestExtend(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	ptr := func(t time.Time) *time.Time { return &t }

	t.Run("active stacks on remaining time", func(t *testing.T) {
		t0 := now.Add(-10 * day)
		start := t0
		end := t0.Add(30 * day)

		for _, m := range TariffMonths() {
			gotStart, gotEnd := Extend(&start, &end, m, now)
			assert.Equal(t, &start, gotStart)
			assert.True(t, gotEnd.Equal(t0.Add(30*day).Add(time.Duration(30*m)*day)), m)
		}
	})

	t.Run("expired restarts at now", func(t *testing.T) {
		oldStart := now.Add(-60 * day)
		end := now.Add(-day)

		gotStart, gotEnd := Extend(&oldStart, &end, 2, now)
		require.NotNil(t, gotStart)
		assert.True(t, gotStart.Equal(now))
		assert.True(t, gotEnd.Equal(now.Add(60*day)))
	})

	t.Run("absent end restarts at now", func(t *testing.T) {
		gotStart, gotEnd := Extend(nil, nil, 3, now)
		require.NotNil(t, gotStart)
		assert.True(t, gotStart.Equal(now))
		assert.True(t, gotEnd.Equal(now.Add(90*day)))
	})

	t.Run("end exactly now is not active", func(t *testing.T) {
		gotStart, gotEnd := Extend(ptr(now.Add(-30*day)), ptr(now), 1, now)
		assert.True(t, gotStart.Equal(now))
		assert.True(t, gotEnd.Equal(now.Add(30*day)))
	})
}
