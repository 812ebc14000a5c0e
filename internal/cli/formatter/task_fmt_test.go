package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatTaskList_ShowsTextCategoryAndID(t *testing.T) {
	tasks := []*domain.Task{
		{
			ID:       "9f8e7d6c-5b4a-3210-fedc-ba9876543210",
			Text:     "Quarterly report",
			Category: domain.CategoryWork,
			Priority: domain.PriorityHigh,
			Date:     "2025-06-12",
		},
		{
			ID:       "11112222-3333-4444-5555-666677778888",
			Text:     "Morning run",
			Category: domain.CategoryHealth,
			Priority: domain.PriorityLow,
		},
	}

	out := FormatTaskList(tasks)

	assert.Contains(t, out, "Quarterly report")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "Morning run")
	assert.Contains(t, out, "anytime")
	assert.Contains(t, out, "9f8e7d6c")
	assert.NotContains(t, out, "9f8e7d6c-5b4a")
}

func TestFormatTaskList_CompletedCheckbox(t *testing.T) {
	out := FormatTaskList([]*domain.Task{
		{ID: "a", Text: "done thing", Category: domain.CategoryPersonal, Priority: domain.PriorityMedium, Completed: true},
	})

	assert.Contains(t, out, "[✔]")
	assert.NotContains(t, out, "[ ]")
}

func TestFormatTaskDays_ListsBothDirections(t *testing.T) {
	task := &domain.Task{Text: "Pitch deck", Category: domain.CategoryWork}
	days := domain.TaskDays{
		Favorable: []domain.CategoryDay{
			{Date: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), Energy: domain.EnergyFavorable, Reason: "Mars gives energy for work"},
		},
		Challenging: []domain.CategoryDay{
			{Date: time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), Energy: domain.EnergyChallenging, Reason: "Rest day, not for work"},
		},
	}

	out := FormatTaskDays(task, days)

	assert.Contains(t, out, "Pitch deck")
	assert.Contains(t, out, "Best days")
	assert.Contains(t, out, "Mars gives energy for work")
	assert.Contains(t, out, "Days to avoid")
	assert.Contains(t, out, "Rest day, not for work")
}

func TestFormatTaskDays_EmptyWindows(t *testing.T) {
	task := &domain.Task{Text: "Journal", Category: domain.CategoryPersonal}

	out := FormatTaskDays(task, domain.TaskDays{})

	assert.Contains(t, out, "none in the next two weeks")
}

func TestFormatPrediction(t *testing.T) {
	out := FormatPrediction(domain.CategoryPrediction{Category: domain.CategoryWork, Confidence: 85}, false)
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "85% confidence")
	assert.NotContains(t, out, "applied")

	out = FormatPrediction(domain.CategoryPrediction{Category: domain.CategoryHealth, Confidence: 45}, true)
	assert.Contains(t, out, "applied")
}
