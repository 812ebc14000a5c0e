package domain

import "time"

// Task is a single to-do item belonging to exactly one user.
type Task struct {
	ID        string
	UserID    string
	Text      string
	Date      string // ISO date "2006-01-02"; empty means unscheduled
	Completed bool
	Category  Category
	Priority  Priority
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduledOn reports whether the task is scheduled for the given date.
func (t *Task) ScheduledOn(date time.Time) bool {
	return t.Date != "" && t.Date == date.Format("2006-01-02")
}
