package astro

import (
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
)

// LookaheadDays is the length of the per-category recommendation window.
const LookaheadDays = 14

// ClassifyForCategory evaluates a single date against the fixed rule table
// for one category. Days matched by no rule are neutral with no reason.
func ClassifyForCategory(date time.Time, category domain.Category) domain.CategoryDay {
	day := domain.CategoryDay{Date: date, Energy: domain.EnergyNeutral}
	weekday := date.Weekday()
	dayOfMonth := date.Day()

	switch category {
	case domain.CategoryWork:
		switch weekday {
		case time.Tuesday, time.Thursday: // Mars and Jupiter days
			day.Energy = domain.EnergyFavorable
			day.Reason = "Mars gives energy for work"
		case time.Saturday:
			day.Energy = domain.EnergyChallenging
			day.Reason = "Rest day, not for work"
		}

	case domain.CategoryCreativity:
		switch weekday {
		case time.Friday, time.Sunday: // Venus and Sun days
			day.Energy = domain.EnergyFavorable
			day.Reason = "Venus inspires creativity"
		case time.Monday:
			day.Energy = domain.EnergyChallenging
			day.Reason = "Monday - not for creativity"
		}

	case domain.CategoryRelationships:
		switch weekday {
		case time.Friday, time.Sunday:
			day.Energy = domain.EnergyFavorable
			day.Reason = "Venus favors relationships"
		case time.Tuesday:
			day.Energy = domain.EnergyChallenging
			day.Reason = "Mars can cause conflicts"
		}

	case domain.CategoryHealth:
		switch weekday {
		case time.Wednesday, time.Sunday:
			day.Energy = domain.EnergyFavorable
			day.Reason = "Mercury and Sun give life force"
		}

	case domain.CategoryFinance:
		if weekday == time.Thursday || dayOfMonth%8 == 0 { // Jupiter's day
			day.Energy = domain.EnergyFavorable
			day.Reason = "Jupiter brings luck in finances"
		} else if weekday == time.Saturday {
			day.Energy = domain.EnergyChallenging
			day.Reason = "Saturn may limit finances"
		}

	case domain.CategoryPersonal:
		switch weekday {
		case time.Monday, time.Wednesday:
			day.Energy = domain.EnergyFavorable
			day.Reason = "Good time for personal matters"
		}
	}

	return day
}

// Lookahead classifies the 14 days starting at the most recent Monday on or
// before today for the given category. Each day is independent; there is no
// cross-day aggregation.
func Lookahead(today time.Time, category domain.Category) []domain.CategoryDay {
	start := weekStart(today)
	days := make([]domain.CategoryDay, 0, LookaheadDays)
	for i := 0; i < LookaheadDays; i++ {
		days = append(days, ClassifyForCategory(start.AddDate(0, 0, i), category))
	}
	return days
}

// BestDays reduces a lookahead window to the at most three favorable and two
// challenging days shown against a task.
func BestDays(today time.Time, category domain.Category) domain.TaskDays {
	var out domain.TaskDays
	for _, d := range Lookahead(today, category) {
		switch d.Energy {
		case domain.EnergyFavorable:
			if len(out.Favorable) < 3 {
				out.Favorable = append(out.Favorable, d)
			}
		case domain.EnergyChallenging:
			if len(out.Challenging) < 2 {
				out.Challenging = append(out.Challenging, d)
			}
		}
	}
	return out
}

// weekStart returns the most recent Monday on or before t, at t's clock time.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset)
}
