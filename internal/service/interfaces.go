package service

import (
	"context"
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
)

type UserService interface {
	// Login finds the user with the given username, creating the account on
	// first login, and marks it as the current user.
	Login(ctx context.Context, username string) (*domain.User, error)
	Logout(ctx context.Context) error
	// Current returns the logged-in user, or repository.ErrNotFound when
	// nobody is logged in.
	Current(ctx context.Context) (*domain.User, error)
	// SetBirthData replaces the user's birth data as a whole.
	SetBirthData(ctx context.Context, userID string, data domain.BirthData) (*domain.User, error)
}

// TaskUpdate carries the editable task fields. Nil fields are left unchanged.
type TaskUpdate struct {
	Text     *string
	Date     *string
	Category *domain.Category
	Priority *domain.Priority
}

type TaskService interface {
	Add(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	ListOpen(ctx context.Context, userID string) ([]*domain.Task, error)
	ListCompleted(ctx context.Context, userID string) ([]*domain.Task, error)
	ListForDate(ctx context.Context, userID string, date time.Time) ([]*domain.Task, error)
	Toggle(ctx context.Context, id string) (*domain.Task, error)
	Edit(ctx context.Context, id string, upd TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	// Suggest runs the category predictor over free task text.
	Suggest(text string) domain.CategoryPrediction
}

// CategoryRecommendation groups the lookahead summary for one category of a
// user's open tasks.
type CategoryRecommendation struct {
	Category    domain.Category
	TaskCount   int
	Favorable   []domain.CategoryDay
	Challenging []domain.CategoryDay
}

// DayDetail is everything the calendar's day view shows for one date.
type DayDetail struct {
	Date           time.Time
	Recommendation domain.DayRecommendation
	RulingPlanet   string
	Tasks          []*domain.Task
}

type RecommendService interface {
	// Day classifies a single date and names its ruling planet.
	Day(date time.Time) DayDetail
	// DayWithTasks additionally loads the user's tasks scheduled on date.
	DayWithTasks(ctx context.Context, userID string, date time.Time) (*DayDetail, error)
	// Month classifies every day of the given month.
	Month(year int, month time.Month) []DayDetail
	// TaskDays returns the best and worst upcoming days for a category.
	TaskDays(today time.Time, category domain.Category) domain.TaskDays
	// ForOpenTasks builds one grouped recommendation per distinct category
	// of the user's incomplete tasks, in canonical category order.
	ForOpenTasks(ctx context.Context, userID string, today time.Time) ([]CategoryRecommendation, error)
}
