package user

import (
	"context"
	"fmt"

	"doctorsportal/models"
)

// ListUsers returns every stored user.
func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpsertUser creates or updates the user keyed by email and issues a token for it.
func (s *DefaultUserService) UpsertUser(ctx context.Context, email string, profile models.UserProfile) (models.WriteResult, string, error) {
	result, err := s.Repo.UpsertProfile(ctx, email, profile)
	if err != nil {
		return models.WriteResult{}, "", fmt.Errorf("failed to upsert user %s: %w", email, err)
	}
	token, err := s.Tokens.Issue(email)
	if err != nil {
		return models.WriteResult{}, "", fmt.Errorf("failed to issue token for %s: %w", email, err)
	}
	return result, token, nil
}
