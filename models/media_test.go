// file: models/media_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMostViewed(t *testing.T) {
	videos := []Video{
		{ID: 1, Title: "Opening Act", Views: 12},
		{ID: 2, Title: "Grand Finale", Views: 99},
		{ID: 3, Title: "Interlude", Views: 50},
	}

	best, ok := MostViewed(videos)
	assert.True(t, ok)
	assert.Equal(t, "Grand Finale", best.Title)

	// The input order is never touched.
	assert.Equal(t, 1, videos[0].ID)
}

func TestMostViewed_Empty(t *testing.T) {
	_, ok := MostViewed(nil)
	assert.False(t, ok)
}

// Ties keep the earliest entry, matching stored order.
func TestMostViewed_TieKeepsFirst(t *testing.T) {
	best, ok := MostViewed([]Video{
		{ID: 1, Title: "First", Views: 10},
		{ID: 2, Title: "Second", Views: 10},
	})
	assert.True(t, ok)
	assert.Equal(t, "First", best.Title)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("Poetry"))
	assert.True(t, ValidCategory("Use of African Proverbs in Spoken Word"))
	assert.False(t, ValidCategory("Stand-up Comedy"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("poetry"), "categories are case sensitive")
}
