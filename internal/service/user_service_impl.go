package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/alexanderramin/astroplan/internal/idgen"
	"github.com/alexanderramin/astroplan/internal/repository"
)

type userService struct {
	users repository.UserRepo
	state repository.AppStateRepo
	ids   idgen.Generator
}

func NewUserService(users repository.UserRepo, state repository.AppStateRepo, ids idgen.Generator) UserService {
	return &userService{users: users, state: state, ids: ids}
}

func (s *userService) Login(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		// First login registers the account.
		now := time.Now().UTC()
		u = &domain.User{
			ID:        s.ids.NewID(),
			Username:  username,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("registering user %q: %w", username, err)
		}
	} else if err != nil {
		return nil, err
	}

	if err := s.state.SetCurrentUserID(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Logout(ctx context.Context) error {
	return s.state.ClearCurrentUser(ctx)
}

func (s *userService) Current(ctx context.Context) (*domain.User, error) {
	id, err := s.state.GetCurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		// Stale pointer; treat as logged out rather than corrupting state.
		_ = s.state.ClearCurrentUser(ctx)
		return nil, err
	}
	return u, err
}

func (s *userService) SetBirthData(ctx context.Context, userID string, data domain.BirthData) (*domain.User, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if data.DateOfBirth.IsZero() {
		return nil, fmt.Errorf("date of birth is required")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.BirthData = &data
	u.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
