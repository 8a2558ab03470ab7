package usecase

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchUsecase defines the interface for rider selection
type DispatchUsecase interface {
	// FindNearestRider selects the closest available rider to the pickup
	// coordinate. Riders listed in excludeRiderIDs are skipped, so a rider
	// who just rejected a delivery is never offered it again in the same pass.
	FindNearestRider(ctx context.Context, pickup entity.Coordinate, excludeRiderIDs []uuid.UUID) (*entity.Rider, error)
}
