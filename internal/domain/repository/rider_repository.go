package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// ErrRiderNotFound is returned when a rider is not found.
var ErrRiderNotFound = errors.New("rider not found")

// RiderRepository defines the interface for rider-related database operations.
type RiderRepository interface {
	// FindRiderByID retrieves a rider by their unique ID, with operating areas populated.
	FindRiderByID(ctx context.Context, id uuid.UUID) (*entity.Rider, error)

	// FindAvailableRiders retrieves all riders that are active, verified and have
	// a known position. Callers apply further filtering, such as proximity.
	FindAvailableRiders(ctx context.Context) ([]*entity.Rider, error)

	// FindRidersByOperatingArea retrieves all riders registered to serve the
	// given normalized landmark.
	FindRidersByOperatingArea(ctx context.Context, landmark string) ([]*entity.Rider, error)

	// UpdateRiderLocation records the rider's last reported position.
	UpdateRiderLocation(ctx context.Context, id uuid.UUID, position entity.Coordinate) error

	// UpdateRiderStatus switches the rider between active and inactive.
	UpdateRiderStatus(ctx context.Context, id uuid.UUID, status entity.RiderStatus) error

	// SetRiderVerified flips the verification flag on a rider account.
	SetRiderVerified(ctx context.Context, id uuid.UUID, verified bool) error

	// ReplaceOperatingAreas replaces the rider's full set of operating areas
	// with the given normalized landmarks.
	ReplaceOperatingAreas(ctx context.Context, id uuid.UUID, landmarks []string) error
}
