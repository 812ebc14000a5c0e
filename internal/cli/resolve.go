package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/alexanderramin/astroplan/internal/repository"
)

// currentUser loads the logged-in user or tells the caller to log in first.
func currentUser(ctx context.Context, app *App) (*domain.User, error) {
	u, err := app.Users.Current(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("not logged in; run `astroplan login USERNAME` first")
	}
	return u, err
}

// resolveTaskID matches input against the user's tasks by exact ID or
// unambiguous ID prefix.
func resolveTaskID(ctx context.Context, app *App, userID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx, userID)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDateArg parses an optional YYYY-MM-DD positional argument, defaulting
// to today.
func parseDateArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	parsed, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
	}
	return parsed, nil
}
