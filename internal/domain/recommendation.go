package domain

import "time"

// ZodiacSign is one of the twelve fixed signs with its Unicode symbol.
type ZodiacSign struct {
	Name   string
	Symbol string
}

// DayRecommendation is the derived whole-day classification for a calendar
// date. It carries no identity and is recomputed on every query.
type DayRecommendation struct {
	Favorable []Category
	Avoid     []Category
	Energy    Energy
}

// CategoryDay is one day of the category-scoped 14-day lookahead.
type CategoryDay struct {
	Date   time.Time
	Energy Energy
	Reason string
}

// CategoryPrediction is the predictor's suggestion for free task text.
// Confidence is an integer percentage in [15, 95].
type CategoryPrediction struct {
	Category   Category
	Confidence int
}

// TaskDays summarizes the best and worst upcoming days for a task's
// category: at most three favorable and two challenging days.
type TaskDays struct {
	Favorable   []CategoryDay
	Challenging []CategoryDay
}
