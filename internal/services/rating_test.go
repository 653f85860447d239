package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryRatingRange(t *testing.T) {
	for i := 0; i < 10000; i++ {
		rating := EntryRating("had a wonderful time with the family on the lake")
		assert.GreaterOrEqual(t, rating, 0)
		assert.LessOrEqual(t, rating, 10)
	}
}

func TestEntryRatingCoversFullRange(t *testing.T) {
	seen := make(map[int]int)
	for i := 0; i < 11000; i++ {
		seen[EntryRating("")]++
	}

	// Uniform over [0,10]: every value shows up, and no value dominates.
	// With 11000 draws each bucket expects ~1000; allow generous slack.
	for v := 0; v <= 10; v++ {
		count := seen[v]
		assert.Greater(t, count, 600, "rating %d drawn too rarely", v)
		assert.Less(t, count, 1400, "rating %d drawn too often", v)
	}
}

func TestEntryRatingIgnoresInput(t *testing.T) {
	// The placeholder must not key off the text; different inputs should
	// both produce spread-out ratings.
	for _, text := range []string{"", "great day", "terrible day"} {
		seen := make(map[int]bool)
		for i := 0; i < 500; i++ {
			seen[EntryRating(text)] = true
		}
		assert.Greater(t, len(seen), 5, "ratings for %q barely vary", text)
	}
}
