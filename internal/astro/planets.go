package astro

import "time"

// rulingPlanets maps each weekday to its traditional ruling planet.
var rulingPlanets = map[time.Weekday]string{
	time.Sunday:    "Sun",
	time.Monday:    "Moon",
	time.Tuesday:   "Mars",
	time.Wednesday: "Mercury",
	time.Thursday:  "Jupiter",
	time.Friday:    "Venus",
	time.Saturday:  "Saturn",
}

// RulingPlanet returns the planet governing the given date's weekday.
func RulingPlanet(date time.Time) string {
	return rulingPlanets[date.Weekday()]
}
