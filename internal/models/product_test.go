package models_test

import (
	"testing"

	"butik/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for _, key := range []string{"shirt", "pants", "shoes", "leggings", "hat", "accessories"} {
		category, ok := models.ParseCategory(key)
		assert.True(t, ok, "expected %s to parse", key)
		assert.Equal(t, key, string(category))
		assert.NotEmpty(t, models.CategoryLabels[category])
	}

	for _, key := range []string{"", "jacket", "SHIRT", "shoes "} {
		_, ok := models.ParseCategory(key)
		assert.False(t, ok, "expected %q to be rejected", key)
	}
}

func TestParseGender(t *testing.T) {
	for _, key := range []string{"men", "women", "kids"} {
		gender, ok := models.ParseGender(key)
		assert.True(t, ok, "expected %s to parse", key)
		assert.Equal(t, key, string(gender))
		assert.NotEmpty(t, models.GenderLabels[gender])
	}

	for _, key := range []string{"", "unisex", "Men"} {
		_, ok := models.ParseGender(key)
		assert.False(t, ok, "expected %q to be rejected", key)
	}
}
