package usecase

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateRiderLocationInput carries a rider position ping.
type UpdateRiderLocationInput struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// RiderUsecase defines the interface for rider management use cases
type RiderUsecase interface {
	// UpdateLocation records the rider's last reported position.
	UpdateLocation(ctx context.Context, riderID uuid.UUID, input *UpdateRiderLocationInput) error

	// UpdateStatus switches the rider between active and inactive.
	UpdateStatus(ctx context.Context, riderID uuid.UUID, status entity.RiderStatus) error

	// VerifyRider marks a rider account as verified. Admin only.
	VerifyRider(ctx context.Context, actor entity.Actor, riderID uuid.UUID) error

	// SetOperatingAreas replaces the rider's operating areas with the given
	// landmarks, normalized to lowercase.
	SetOperatingAreas(ctx context.Context, riderID uuid.UUID, landmarks []string) error

	// ListOpenDeliveries retrieves unassigned deliveries around a landmark the
	// rider serves.
	ListOpenDeliveries(ctx context.Context, landmark string) ([]*entity.Delivery, error)
}
