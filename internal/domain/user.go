package domain

import "time"

// User is an account identified by a unique, case-sensitive username.
// Users are created on first login and never deleted.
type User struct {
	ID        string
	Username  string
	BirthData *BirthData // nil until the birth data form has been completed
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBirthData reports whether the task and calendar screens are reachable.
func (u *User) HasBirthData() bool {
	return u != nil && u.BirthData != nil
}

// BirthData holds the birth details a user's zodiac sign is derived from.
// It is replaced as a whole on profile edit, never mutated field by field.
// Time and place are free text; no timezone or geolocation semantics.
type BirthData struct {
	Name         string
	DateOfBirth  time.Time
	TimeOfBirth  string // "HH:MM" as entered
	PlaceOfBirth string
}
