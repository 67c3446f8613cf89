package repository

import (
	"context"

	"github.com/mithaighar/sweetshop/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user and fills in ID and CreatedAt.
	// Returns ErrDuplicateUsername or ErrDuplicateEmail on a uniqueness
	// violation without mutating state.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// CountAdmins reports how many admin accounts exist; used by seeding.
	CountAdmins(ctx context.Context) (int, error)
}
