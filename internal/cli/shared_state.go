package cli

import (
	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Logged-in user, nil on the login screen.
	User *domain.User

	// Terminal dimensions
	Width  int
	Height int
}

// SetUser replaces the logged-in user context.
func (s *SharedState) SetUser(u *domain.User) {
	s.User = u
}

// Sign returns the user's zodiac sign, or nil before birth data is set.
func (s *SharedState) Sign() *domain.ZodiacSign {
	if s.User == nil || !s.User.HasBirthData() {
		return nil
	}
	sign := astro.ResolveSign(s.User.BirthData.DateOfBirth)
	return &sign
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
