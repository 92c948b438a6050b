package user

import (
	"context"
	"errors"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
)

// ErrForbidden is returned when the requester lacks the admin role.
var ErrForbidden = errors.New("requester is not an admin")

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpsertUser writes the profile keyed by email and returns a fresh access token for it.
	UpsertUser(ctx context.Context, email string, profile models.UserProfile) (models.WriteResult, string, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, requesterEmail, targetEmail string) (models.WriteResult, error)
}

// TokenIssuer signs access tokens for an email.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenIssuer
}

var _ UserService = (*DefaultUserService)(nil)
