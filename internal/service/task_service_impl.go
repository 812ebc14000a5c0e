package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/alexanderramin/astroplan/internal/idgen"
	"github.com/alexanderramin/astroplan/internal/repository"
)

const dateLayout = "2006-01-02"

type taskService struct {
	tasks repository.TaskRepo
	users repository.UserRepo
	ids   idgen.Generator
}

func NewTaskService(tasks repository.TaskRepo, users repository.UserRepo, ids idgen.Generator) TaskService {
	return &taskService{tasks: tasks, users: users, ids: ids}
}

func (s *taskService) Add(ctx context.Context, t *domain.Task) error {
	t.Text = strings.TrimSpace(t.Text)
	if t.Text == "" {
		return fmt.Errorf("task text is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("task owner is required")
	}
	if _, err := s.users.GetByID(ctx, t.UserID); err != nil {
		return err
	}
	if t.Category == "" {
		t.Category = domain.CategoryPersonal
	}
	if !domain.ValidCategories[string(t.Category)] {
		return fmt.Errorf("invalid category %q", t.Category)
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if !domain.ValidPriorities[string(t.Priority)] {
		return fmt.Errorf("invalid priority %q", t.Priority)
	}
	if err := validateDate(t.Date); err != nil {
		return err
	}

	if t.ID == "" {
		t.ID = s.ids.NewID()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) ListOpen(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.listByCompletion(ctx, userID, false)
}

func (s *taskService) ListCompleted(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.listByCompletion(ctx, userID, true)
}

func (s *taskService) listByCompletion(ctx context.Context, userID string, completed bool) ([]*domain.Task, error) {
	all, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Task, 0, len(all))
	for _, t := range all {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *taskService) ListForDate(ctx context.Context, userID string, date time.Time) ([]*domain.Task, error) {
	return s.tasks.ListByUserAndDate(ctx, userID, date.Format(dateLayout))
}

func (s *taskService) Toggle(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Completed = !t.Completed
	t.UpdatedAt = time.Now().UTC()
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Edit(ctx context.Context, id string, upd TaskUpdate) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Text != nil {
		text := strings.TrimSpace(*upd.Text)
		if text == "" {
			return nil, fmt.Errorf("task text is required")
		}
		t.Text = text
	}
	if upd.Date != nil {
		if err := validateDate(*upd.Date); err != nil {
			return nil, err
		}
		t.Date = *upd.Date
	}
	if upd.Category != nil {
		if !domain.ValidCategories[string(*upd.Category)] {
			return nil, fmt.Errorf("invalid category %q", *upd.Category)
		}
		t.Category = *upd.Category
	}
	if upd.Priority != nil {
		if !domain.ValidPriorities[string(*upd.Priority)] {
			return nil, fmt.Errorf("invalid priority %q", *upd.Priority)
		}
		t.Priority = *upd.Priority
	}

	t.UpdatedAt = time.Now().UTC()
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) Suggest(text string) domain.CategoryPrediction {
	return astro.Predict(text)
}

// validateDate accepts an empty string (unscheduled) or a YYYY-MM-DD date.
func validateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return nil
}
