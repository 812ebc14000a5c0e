package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveSign_RangeBoundaries(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		sign string
	}{
		{"aries start", date(2000, time.March, 21), "Aries"},
		{"aries end", date(2000, time.April, 19), "Aries"},
		{"taurus start", date(2000, time.April, 20), "Taurus"},
		{"gemini mid", date(2000, time.June, 1), "Gemini"},
		{"cancer start", date(2000, time.June, 21), "Cancer"},
		{"leo mid", date(2000, time.August, 1), "Leo"},
		{"virgo end", date(2000, time.September, 22), "Virgo"},
		{"libra start", date(2000, time.September, 23), "Libra"},
		{"scorpio end", date(2000, time.November, 21), "Scorpio"},
		{"sagittarius start", date(2000, time.November, 22), "Sagittarius"},
		{"capricorn before new year", date(2000, time.December, 22), "Capricorn"},
		{"capricorn after new year", date(2000, time.January, 19), "Capricorn"},
		{"aquarius start", date(2000, time.January, 20), "Aquarius"},
		{"aquarius end", date(2000, time.February, 18), "Aquarius"},
		{"pisces start", date(2000, time.February, 19), "Pisces"},
		{"pisces end", date(2000, time.March, 20), "Pisces"},
		{"leap day", date(2000, time.February, 29), "Pisces"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.sign, ResolveSign(tc.date).Name)
		})
	}
}

// Every day of a leap year maps to exactly one of the twelve signs, so the
// ranges partition the calendar with no gaps.
func TestResolveSign_TotalOverLeapYear(t *testing.T) {
	valid := map[string]bool{
		"Aries": true, "Taurus": true, "Gemini": true, "Cancer": true,
		"Leo": true, "Virgo": true, "Libra": true, "Scorpio": true,
		"Sagittarius": true, "Capricorn": true, "Aquarius": true, "Pisces": true,
	}

	seen := make(map[string]bool)
	d := date(2024, time.January, 1)
	for d.Year() == 2024 {
		sign := ResolveSign(d)
		require.True(t, valid[sign.Name], "day %s produced unknown sign %q", d.Format("2006-01-02"), sign.Name)
		require.NotEmpty(t, sign.Symbol)
		seen[sign.Name] = true
		d = d.AddDate(0, 0, 1)
	}

	assert.Len(t, seen, 12, "all twelve signs should occur across a year")
}
