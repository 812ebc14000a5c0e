package service

import (
	"context"
	"time"

	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/alexanderramin/astroplan/internal/repository"
)

type recommendService struct {
	tasks repository.TaskRepo
}

func NewRecommendService(tasks repository.TaskRepo) RecommendService {
	return &recommendService{tasks: tasks}
}

func (s *recommendService) Day(date time.Time) DayDetail {
	return DayDetail{
		Date:           date,
		Recommendation: astro.Classify(date),
		RulingPlanet:   astro.RulingPlanet(date),
	}
}

func (s *recommendService) DayWithTasks(ctx context.Context, userID string, date time.Time) (*DayDetail, error) {
	detail := s.Day(date)
	tasks, err := s.tasks.ListByUserAndDate(ctx, userID, date.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	detail.Tasks = tasks
	return &detail, nil
}

func (s *recommendService) Month(year int, month time.Month) []DayDetail {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]DayDetail, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, s.Day(d))
	}
	return days
}

func (s *recommendService) TaskDays(today time.Time, category domain.Category) domain.TaskDays {
	return astro.BestDays(today, category)
}

func (s *recommendService) ForOpenTasks(ctx context.Context, userID string, today time.Time) ([]CategoryRecommendation, error) {
	all, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Category]int)
	for _, t := range all {
		if !t.Completed {
			counts[t.Category]++
		}
	}

	// Canonical category order keeps the output stable across runs.
	var recs []CategoryRecommendation
	for _, category := range domain.Categories {
		n, ok := counts[category]
		if !ok {
			continue
		}
		best := astro.BestDays(today, category)
		recs = append(recs, CategoryRecommendation{
			Category:    category,
			TaskCount:   n,
			Favorable:   best.Favorable,
			Challenging: best.Challenging,
		})
	}
	return recs, nil
}
