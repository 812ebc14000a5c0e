package repository

import (
	"context"

	"github.com/alexanderramin/astroplan/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	ListByUserAndDate(ctx context.Context, userID, date string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

// AppStateRepo persists the single current-user pointer. Get returns
// ErrNotFound when nobody is logged in or the stored reference dangles.
type AppStateRepo interface {
	GetCurrentUserID(ctx context.Context) (string, error)
	SetCurrentUserID(ctx context.Context, userID string) error
	ClearCurrentUser(ctx context.Context) error
}
