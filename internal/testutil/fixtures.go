package testutil

import (
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/google/uuid"
)

// User options
type UserOption func(*domain.User)

func WithBirthData(name string, dob time.Time) UserOption {
	return func(u *domain.User) {
		u.BirthData = &domain.BirthData{
			Name:         name,
			DateOfBirth:  dob,
			TimeOfBirth:  "08:30",
			PlaceOfBirth: "Lisbon",
		}
	}
}

func NewTestUser(username string, opts ...UserOption) *domain.User {
	now := time.Now().UTC()
	u := &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Task options
type TaskOption func(*domain.Task)

func WithCategory(c domain.Category) TaskOption {
	return func(t *domain.Task) { t.Category = c }
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) { t.Priority = p }
}

func WithDate(date string) TaskOption {
	return func(t *domain.Task) { t.Date = date }
}

func Completed() TaskOption {
	return func(t *domain.Task) { t.Completed = true }
}

func NewTestTask(userID, text string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      text,
		Category:  domain.CategoryPersonal,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}
