package astro

import (
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
)

// weekdayRule seeds the whole-day classification from the ruling planet.
type weekdayRule struct {
	favorable []domain.Category
	avoid     []domain.Category
	energy    domain.Energy
}

var weekdayRules = map[time.Weekday]weekdayRule{
	time.Sunday: { // Sun
		favorable: []domain.Category{domain.CategoryCreativity, domain.CategoryHealth, domain.CategoryPersonal},
		avoid:     []domain.Category{domain.CategoryWork},
		energy:    domain.EnergyFavorable,
	},
	time.Monday: { // Moon
		favorable: []domain.Category{domain.CategoryPersonal, domain.CategoryHealth},
		avoid:     []domain.Category{domain.CategoryCreativity, domain.CategoryFinance},
		energy:    domain.EnergyNeutral,
	},
	time.Tuesday: { // Mars
		favorable: []domain.Category{domain.CategoryWork, domain.CategoryFinance},
		avoid:     []domain.Category{domain.CategoryRelationships},
		energy:    domain.EnergyChallenging,
	},
	time.Wednesday: { // Mercury
		favorable: []domain.Category{domain.CategoryWork, domain.CategoryPersonal, domain.CategoryHealth},
		energy:    domain.EnergyFavorable,
	},
	time.Thursday: { // Jupiter
		favorable: []domain.Category{domain.CategoryWork, domain.CategoryFinance, domain.CategoryRelationships},
		energy:    domain.EnergyFavorable,
	},
	time.Friday: { // Venus
		favorable: []domain.Category{domain.CategoryCreativity, domain.CategoryRelationships, domain.CategoryPersonal},
		avoid:     []domain.Category{domain.CategoryWork},
		energy:    domain.EnergyFavorable,
	},
	time.Saturday: { // Saturn
		favorable: []domain.Category{domain.CategoryHealth, domain.CategoryPersonal},
		avoid:     []domain.Category{domain.CategoryWork, domain.CategoryFinance, domain.CategoryCreativity},
		energy:    domain.EnergyChallenging,
	},
}

// Classify computes the whole-day recommendation for a calendar date.
//
// The rules apply in a fixed order: the weekday table seeds the lists and a
// baseline energy, then day-of-month and month modifiers extend them. The
// final energy is always recomputed from the favorable/avoid counts, so a
// modifier that forces "favorable" (day 1-7, day 15) can still end up
// neutral or challenging. That override is intentional and matched by the
// calendar behavior users already know.
func Classify(date time.Time) domain.DayRecommendation {
	dayOfMonth := date.Day()
	month := date.Month()

	rule := weekdayRules[date.Weekday()]
	rec := domain.DayRecommendation{
		Favorable: append([]domain.Category(nil), rule.favorable...),
		Avoid:     append([]domain.Category(nil), rule.avoid...),
		Energy:    rule.energy,
	}

	// First week: new beginnings. Last week: closing out work.
	if dayOfMonth <= 7 {
		if rec.Energy != domain.EnergyChallenging {
			rec.Energy = domain.EnergyFavorable
		}
		rec.Favorable = append(rec.Favorable, domain.CategoryPersonal)
	} else if dayOfMonth >= 22 {
		rec.Favorable = append(rec.Favorable, domain.CategoryWork)
		if dayOfMonth >= 28 {
			rec.Avoid = append(rec.Avoid, domain.CategoryCreativity)
		}
	}

	if dayOfMonth%8 == 0 {
		rec.Favorable = append(rec.Favorable, domain.CategoryFinance)
	}
	if dayOfMonth%7 == 0 {
		rec.Avoid = append(rec.Avoid, domain.CategoryWork)
	}
	if dayOfMonth == 15 {
		// Middle of the month: balance day.
		rec.Energy = domain.EnergyFavorable
		rec.Favorable = append(rec.Favorable, domain.CategoryRelationships)
	}

	switch {
	case month == time.December || month == time.January:
		rec.Favorable = append(rec.Favorable, domain.CategoryPersonal)
	case month >= time.March && month <= time.May:
		rec.Favorable = append(rec.Favorable, domain.CategoryCreativity)
	case month >= time.June && month <= time.August:
		rec.Favorable = append(rec.Favorable, domain.CategoryHealth)
	case month >= time.September && month <= time.November:
		rec.Favorable = append(rec.Favorable, domain.CategoryWork)
	}

	rec.Favorable = dedupe(rec.Favorable)
	rec.Avoid = dedupe(rec.Avoid)

	// Final energy from list sizes; this wins over every earlier value.
	favorableCount := len(rec.Favorable)
	avoidCount := len(rec.Avoid)
	switch {
	case favorableCount > avoidCount+2:
		rec.Energy = domain.EnergyFavorable
	case avoidCount > favorableCount+1:
		rec.Energy = domain.EnergyChallenging
	default:
		rec.Energy = domain.EnergyNeutral
	}

	return rec
}

// dedupe removes repeated categories, keeping first-seen order.
func dedupe(cats []domain.Category) []domain.Category {
	seen := make(map[domain.Category]bool, len(cats))
	out := cats[:0]
	for _, c := range cats {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
