package serviceRepo

import (
	"context"

	"doctorsportal/models"
)

// ServiceRepository defines read access to the clinic's treatments.
type ServiceRepository interface {
	// GetAll retrieves every service with its full slot list.
	GetAll(ctx context.Context) ([]models.Service, error)
}
