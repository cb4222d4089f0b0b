package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom_Ranges(t *testing.T) {
	r := NewRandom(42)

	for range 500 {
		f := r.Uniform(0.7, 0.95)
		assert.GreaterOrEqual(t, f, 0.7)
		assert.Less(t, f, 0.95)

		i := r.IntRange(5, 10)
		assert.GreaterOrEqual(t, i, 5)
		assert.LessOrEqual(t, i, 10)
	}

	assert.Equal(t, 3, r.IntRange(3, 3))
}

func TestRandom_Deterministic(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for range 20 {
		assert.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
	}
}

func TestRandom_Sample(t *testing.T) {
	r := NewRandom(1)
	items := []string{"a", "b", "c", "d", "e"}

	got := r.Sample(items, 3)
	assert.Len(t, got, 3)

	seen := map[string]bool{}
	for _, s := range got {
		assert.Contains(t, items, s)
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
	}

	assert.Len(t, r.Sample(items, 10), 5)
	assert.Empty(t, r.Sample(items, 0))
}
