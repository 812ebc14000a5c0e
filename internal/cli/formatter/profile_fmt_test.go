package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatProfile_WithBirthData(t *testing.T) {
	u := &domain.User{
		Username: "olena",
		BirthData: &domain.BirthData{
			Name:         "Olena",
			DateOfBirth:  time.Date(1993, time.August, 2, 0, 0, 0, 0, time.UTC),
			TimeOfBirth:  "07:45",
			PlaceOfBirth: "Kyiv",
		},
	}
	sign := &domain.ZodiacSign{Name: "Leo", Symbol: "♌"}

	out := FormatProfile(u, sign)

	assert.Contains(t, out, "olena")
	assert.Contains(t, out, "Olena")
	assert.Contains(t, out, "August 2, 1993")
	assert.Contains(t, out, "Kyiv")
	assert.Contains(t, out, "Leo")
	assert.Contains(t, out, "♌")
}

func TestFormatProfile_NoBirthData(t *testing.T) {
	out := FormatProfile(&domain.User{Username: "olena"}, nil)

	assert.Contains(t, out, "No birth data yet.")
	assert.Contains(t, out, "profile set")
}

func TestFormatZodiac(t *testing.T) {
	out := FormatZodiac(domain.ZodiacSign{Name: "Aries", Symbol: "♈"})
	assert.Contains(t, out, "Aries")
	assert.Contains(t, out, "♈")
}

func TestFormatHoroscope_FallbackNote(t *testing.T) {
	out := FormatHoroscope("A golden day.", "fallback")
	assert.Contains(t, out, "A golden day.")
	assert.Contains(t, out, "offline reading")

	out = FormatHoroscope("A golden day.", "llm")
	assert.NotContains(t, out, "offline reading")
}
