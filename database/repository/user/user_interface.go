package userRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

// ErrUserNotFound is returned when no user matches the requested email.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail retrieves a user by its email address, or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpsertProfile creates or updates the user keyed by email.
	UpsertProfile(ctx context.Context, email string, profile models.UserProfile) (models.WriteResult, error)
	// SetRole sets the role of an existing user. Unknown emails match nothing.
	SetRole(ctx context.Context, email, role string) (models.WriteResult, error)
}
