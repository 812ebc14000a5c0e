package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/alexanderramin/astroplan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskService(t *testing.T) (TaskService, string) {
	t.Helper()
	users, tasks, state := setupRepos(t)
	ctx := context.Background()

	u, err := NewUserService(users, state, newIDs("user")).Login(ctx, "stella")
	require.NoError(t, err)

	return NewTaskService(tasks, users, newIDs("task")), u.ID
}

func TestTaskService_Add_Defaults(t *testing.T) {
	svc, userID := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{UserID: userID, Text: "  water the plants  "}
	require.NoError(t, svc.Add(ctx, task))

	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, "water the plants", task.Text)
	assert.Equal(t, domain.CategoryPersonal, task.Category)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Empty(t, task.Date)
	assert.False(t, task.Completed)
}

func TestTaskService_Add_Validation(t *testing.T) {
	svc, userID := setupTaskService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		task domain.Task
	}{
		{"empty text", domain.Task{UserID: userID, Text: "   "}},
		{"missing owner", domain.Task{Text: "x"}},
		{"unknown owner", domain.Task{UserID: "ghost", Text: "x"}},
		{"bad category", domain.Task{UserID: userID, Text: "x", Category: "chores"}},
		{"bad priority", domain.Task{UserID: userID, Text: "x", Priority: "urgent"}},
		{"bad date", domain.Task{UserID: userID, Text: "x", Date: "12/06/2025"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := tc.task
			assert.Error(t, svc.Add(ctx, &task))
		})
	}
}

func TestTaskService_ToggleFlipsCompletion(t *testing.T) {
	svc, userID := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{UserID: userID, Text: "morning yoga", Category: domain.CategoryHealth}
	require.NoError(t, svc.Add(ctx, task))

	toggled, err := svc.Toggle(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = svc.Toggle(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestTaskService_OpenAndCompletedListings(t *testing.T) {
	svc, userID := setupTaskService(t)
	ctx := context.Background()

	open := &domain.Task{UserID: userID, Text: "draft report", Category: domain.CategoryWork}
	done := &domain.Task{UserID: userID, Text: "send invoice", Category: domain.CategoryFinance}
	require.NoError(t, svc.Add(ctx, open))
	require.NoError(t, svc.Add(ctx, done))
	_, err := svc.Toggle(ctx, done.ID)
	require.NoError(t, err)

	openTasks, err := svc.ListOpen(ctx, userID)
	require.NoError(t, err)
	require.Len(t, openTasks, 1)
	assert.Equal(t, "draft report", openTasks[0].Text)

	completed, err := svc.ListCompleted(ctx, userID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "send invoice", completed[0].Text)
}

func TestTaskService_Edit_PartialUpdate(t *testing.T) {
	svc, userID := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{UserID: userID, Text: "sketch ideas", Category: domain.CategoryCreativity}
	require.NoError(t, svc.Add(ctx, task))

	newDate := "2025-06-13"
	high := domain.PriorityHigh
	edited, err := svc.Edit(ctx, task.ID, TaskUpdate{Date: &newDate, Priority: &high})
	require.NoError(t, err)

	assert.Equal(t, "sketch ideas", edited.Text, "unset fields stay unchanged")
	assert.Equal(t, domain.CategoryCreativity, edited.Category)
	assert.Equal(t, "2025-06-13", edited.Date)
	assert.Equal(t, domain.PriorityHigh, edited.Priority)
}

func TestTaskService_Edit_RejectsInvalidValues(t *testing.T) {
	svc, userID := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{UserID: userID, Text: "x"}
	require.NoError(t, svc.Add(ctx, task))

	empty := "  "
	_, err := svc.Edit(ctx, task.ID, TaskUpdate{Text: &empty})
	assert.Error(t, err)

	bad := domain.Category("chores")
	_, err = svc.Edit(ctx, task.ID, TaskUpdate{Category: &bad})
	assert.Error(t, err)
}

func TestTaskService_Delete(t *testing.T) {
	svc, userID := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{UserID: userID, Text: "x"}
	require.NoError(t, svc.Add(ctx, task))
	require.NoError(t, svc.Delete(ctx, task.ID))

	_, err := svc.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_ListForDate(t *testing.T) {
	svc, userID := setupTaskService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, &domain.Task{UserID: userID, Text: "dentist", Date: "2025-06-12", Category: domain.CategoryHealth}))
	require.NoError(t, svc.Add(ctx, &domain.Task{UserID: userID, Text: "someday"}))

	tasks, err := svc.ListForDate(ctx, userID, time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "dentist", tasks[0].Text)
}

func TestTaskService_SuggestMatchesPredictor(t *testing.T) {
	svc, _ := setupTaskService(t)

	got := svc.Suggest("meeting with client about project deadline")
	assert.Equal(t, domain.CategoryWork, got.Category)
	assert.Greater(t, got.Confidence, 30)
}
