package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarString(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		stars := StarString(rating)
		assert.Equal(t, rating, strings.Count(stars, "★"), "rating %d", rating)
		assert.Equal(t, strings.Repeat("★", rating), stars)
	}

	assert.Equal(t, "", StarString(0))
	assert.Equal(t, "", StarString(-1))
}

func TestDeriveStars(t *testing.T) {
	f := Feedback{ContentQuality: 5, InstructorQuality: 2}
	f.DeriveStars()

	assert.Equal(t, "★★★★★", f.ContentStars)
	assert.Equal(t, "★★", f.InstructorStars)
}

func TestValidRecommendation(t *testing.T) {
	assert.True(t, ValidRecommendation("Sim"))
	assert.True(t, ValidRecommendation("Não"))
	assert.True(t, ValidRecommendation("Talvez"))

	assert.False(t, ValidRecommendation(""))
	assert.False(t, ValidRecommendation("sim"))
	assert.False(t, ValidRecommendation("Yes"))
}
