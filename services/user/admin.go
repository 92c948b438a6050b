package user

import (
	"context"
	"errors"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
)

// IsAdmin reports whether email belongs to a stored admin. An unknown email is not an admin.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role to targetEmail. The requester's role is
// read from the store on every call; a non-admin requester gets ErrForbidden
// and nothing is written.
func (s *DefaultUserService) PromoteToAdmin(ctx context.Context, requesterEmail, targetEmail string) (models.WriteResult, error) {
	admin, err := s.IsAdmin(ctx, requesterEmail)
	if err != nil {
		return models.WriteResult{}, err
	}
	if !admin {
		return models.WriteResult{}, ErrForbidden
	}
	return s.Repo.SetRole(ctx, targetEmail, models.RoleAdmin)
}
