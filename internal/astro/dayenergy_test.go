package astro

import (
	"testing"
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Deterministic(t *testing.T) {
	d := date(2025, time.October, 3)
	first := Classify(d)
	second := Classify(d)
	assert.Equal(t, first, second)
}

func TestClassify_WeekdayBaseline(t *testing.T) {
	// 2025-06-12 is a Thursday in the 8..21 day band with only the summer
	// month modifier on top, so the Jupiter baseline is easy to see.
	rec := Classify(date(2025, time.June, 12))

	assert.Contains(t, rec.Favorable, domain.CategoryWork)
	assert.Contains(t, rec.Favorable, domain.CategoryFinance)
	assert.Contains(t, rec.Favorable, domain.CategoryRelationships)
	assert.Contains(t, rec.Favorable, domain.CategoryHealth) // June
	assert.Empty(t, rec.Avoid)
	// 4 favorable vs 0 avoid clears the +2 margin.
	assert.Equal(t, domain.EnergyFavorable, rec.Energy)
}

func TestClassify_MidMonthAddsRelationships(t *testing.T) {
	// The 15th pushes relationships regardless of weekday.
	for _, d := range []time.Time{
		date(2025, time.June, 15),     // Sunday
		date(2025, time.September, 15), // Monday
		date(2025, time.July, 15),     // Tuesday
		date(2025, time.October, 15),  // Wednesday
		date(2026, time.January, 15),  // Thursday
		date(2025, time.August, 15),   // Friday
		date(2025, time.November, 15), // Saturday
	} {
		rec := Classify(d)
		assert.Contains(t, rec.Favorable, domain.CategoryRelationships, "%s", d.Format("2006-01-02"))
	}
}

func TestClassify_MidMonthFavorableEnergy(t *testing.T) {
	// Sunday the 15th: favorable list dominates the single avoid entry.
	rec := Classify(date(2025, time.June, 15))
	assert.Equal(t, domain.EnergyFavorable, rec.Energy)

	// The count recompute can still demote a forced-favorable day when the
	// avoid list is long enough; Saturday the 15th is the known case.
	sat := Classify(date(2025, time.November, 15))
	assert.Contains(t, sat.Favorable, domain.CategoryRelationships)
	assert.NotEqual(t, domain.EnergyFavorable, sat.Energy)
}

func TestClassify_FirstWeekAddsPersonal(t *testing.T) {
	rec := Classify(date(2025, time.June, 3)) // Tuesday the 3rd
	assert.Contains(t, rec.Favorable, domain.CategoryPersonal)
}

func TestClassify_MonthEndModifiers(t *testing.T) {
	rec := Classify(date(2025, time.February, 28)) // Friday the 28th
	assert.Contains(t, rec.Favorable, domain.CategoryWork)
	assert.Contains(t, rec.Avoid, domain.CategoryCreativity)

	// 24th adds work favorable but not the creativity avoid.
	rec = Classify(date(2025, time.June, 24))
	assert.Contains(t, rec.Favorable, domain.CategoryWork)
	assert.NotContains(t, rec.Avoid, domain.CategoryCreativity)
}

func TestClassify_DivisibilityRules(t *testing.T) {
	// 16 is divisible by 8: finance joins the favorable list.
	rec := Classify(date(2025, time.June, 16))
	assert.Contains(t, rec.Favorable, domain.CategoryFinance)

	// 21 is divisible by 7: work joins the avoid list.
	rec = Classify(date(2025, time.June, 21))
	assert.Contains(t, rec.Avoid, domain.CategoryWork)
}

func TestClassify_NoDuplicates(t *testing.T) {
	// Sweep two months covering every modifier combination.
	d := date(2025, time.December, 1)
	end := date(2026, time.February, 1)
	for d.Before(end) {
		rec := Classify(d)
		assertNoDuplicates(t, rec.Favorable, d)
		assertNoDuplicates(t, rec.Avoid, d)
		d = d.AddDate(0, 0, 1)
	}
}

func assertNoDuplicates(t *testing.T, cats []domain.Category, d time.Time) {
	t.Helper()
	seen := make(map[domain.Category]bool, len(cats))
	for _, c := range cats {
		require.False(t, seen[c], "duplicate %q on %s", c, d.Format("2006-01-02"))
		seen[c] = true
	}
}

func TestClassify_EnergyAlwaysValid(t *testing.T) {
	d := date(2025, time.January, 1)
	for d.Year() == 2025 {
		rec := Classify(d)
		assert.Contains(t,
			[]domain.Energy{domain.EnergyFavorable, domain.EnergyChallenging, domain.EnergyNeutral},
			rec.Energy, "%s", d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 1)
	}
}
