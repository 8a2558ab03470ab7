// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/geo"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	riderRepo repository.RiderRepository
	logger    *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(
	riderRepo repository.RiderRepository,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		riderRepo: riderRepo,
		logger:    logger,
	}
}

// FindNearestRider selects the closest available rider to the pickup coordinate.
// The candidate pool is riders that are active, verified and have a reported
// position, minus any excluded IDs. Ties on distance keep the earlier candidate.
func (srv *dispatchService) FindNearestRider(
	ctx context.Context,
	pickup entity.Coordinate,
	excludeRiderIDs []uuid.UUID,
) (*entity.Rider, error) {
	riders, err := srv.riderRepo.FindAvailableRiders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available riders")
	}

	excluded := make(map[uuid.UUID]struct{}, len(excludeRiderIDs))
	for _, id := range excludeRiderIDs {
		excluded[id] = struct{}{}
	}

	var (
		nearest  *entity.Rider
		bestDist float64
	)

	for _, rider := range riders {
		if _, skip := excluded[rider.ID]; skip {
			continue
		}
		if !rider.Eligible() {
			continue
		}

		dist := geo.Distance(pickup, *rider.Position)
		if nearest == nil || dist < bestDist {
			nearest = rider
			bestDist = dist
		}
	}

	if nearest == nil {
		return nil, errors.Wrap(domainerrors.ErrNoRiderAvailable, "no eligible rider near pickup")
	}

	srv.logger.Debug("Nearest rider selected",
		"riderID", nearest.ID,
		"distanceKm", bestDist,
	)

	return nearest, nil
}
