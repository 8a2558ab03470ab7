package impl

import (
	"context"
	"log/slog"
	"strings"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// riderService implements the RiderUsecase interface.
type riderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRiderService is the constructor for riderService.
func NewRiderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.RiderUsecase {
	return &riderService{
		txManager: txManager,
		logger:    logger,
	}
}

// UpdateLocation records the rider's last reported position.
func (srv *riderService) UpdateLocation(ctx context.Context, riderID uuid.UUID, input *usecase.UpdateRiderLocationInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "missing payload")
	}

	position := entity.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !position.Valid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "coordinate out of range")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRiderRepository().UpdateRiderLocation(ctx, riderID, position); err != nil {
			if errors.Is(err, repository.ErrRiderNotFound) {
				return errors.Wrap(domainerrors.ErrRiderNotFound, "rider not found")
			}

			return errors.Wrap(err, "failed to update rider location")
		}

		return nil
	})
}

// UpdateStatus switches the rider between active and inactive.
func (srv *riderService) UpdateStatus(ctx context.Context, riderID uuid.UUID, status entity.RiderStatus) error {
	if !status.Valid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown rider status")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRiderRepository().UpdateRiderStatus(ctx, riderID, status); err != nil {
			if errors.Is(err, repository.ErrRiderNotFound) {
				return errors.Wrap(domainerrors.ErrRiderNotFound, "rider not found")
			}

			return errors.Wrap(err, "failed to update rider status")
		}

		return nil
	})
}

// VerifyRider marks a rider account as verified. Admin only.
func (srv *riderService) VerifyRider(ctx context.Context, actor entity.Actor, riderID uuid.UUID) error {
	if !actor.Is(entity.RoleAdmin) {
		return errors.Wrap(domainerrors.ErrUnauthorized, "only admins can verify riders")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRiderRepository().SetRiderVerified(ctx, riderID, true); err != nil {
			if errors.Is(err, repository.ErrRiderNotFound) {
				return errors.Wrap(domainerrors.ErrRiderNotFound, "rider not found")
			}

			return errors.Wrap(err, "failed to verify rider")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Rider verified", "riderID", riderID, "adminID", actor.ID)

	return nil
}

// SetOperatingAreas replaces the rider's operating areas. Landmarks are
// normalized to lowercase so matching against delivery landmarks is exact.
func (srv *riderService) SetOperatingAreas(ctx context.Context, riderID uuid.UUID, landmarks []string) error {
	normalized := make([]string, 0, len(landmarks))
	seen := make(map[string]struct{}, len(landmarks))

	for _, landmark := range landmarks {
		area := strings.ToLower(strings.TrimSpace(landmark))
		if area == "" {
			continue
		}
		if _, dup := seen[area]; dup {
			continue
		}
		seen[area] = struct{}{}
		normalized = append(normalized, area)
	}

	if len(normalized) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "at least one operating area is required")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRiderRepository().ReplaceOperatingAreas(ctx, riderID, normalized); err != nil {
			if errors.Is(err, repository.ErrRiderNotFound) {
				return errors.Wrap(domainerrors.ErrRiderNotFound, "rider not found")
			}

			return errors.Wrap(err, "failed to replace operating areas")
		}

		return nil
	})
}

// ListOpenDeliveries retrieves unassigned deliveries around a landmark.
func (srv *riderService) ListOpenDeliveries(ctx context.Context, landmark string) ([]*entity.Delivery, error) {
	area := strings.ToLower(strings.TrimSpace(landmark))
	if area == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "landmark is required")
	}

	var deliveries []*entity.Delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewDeliveryRepository().FindOpenDeliveriesByLandmark(ctx, area)
		if err != nil {
			return errors.Wrap(err, "failed to list open deliveries")
		}
		deliveries = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deliveries, nil
}
