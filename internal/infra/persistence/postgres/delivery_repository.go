package postgres

import (
	"context"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// CreateDelivery persists a new delivery.
func (repo *deliveryRepository) CreateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Omit("User", "Rider").Create(deliveryM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDeliveryCode
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	// Update the entity with generated values
	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// FindDeliveryByID retrieves a delivery by its unique ID, preloading the owner
// and rider projections.
func (repo *deliveryRepository) FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Rider").
		Preload("Rider.OperatingAreas").
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// FindDeliveryByCode retrieves the most recent delivery carrying the given code.
func (repo *deliveryRepository) FindDeliveryByCode(ctx context.Context, code int) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Rider").
		Where("code = ?", code).
		Order("created_at DESC").
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by code")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// FindDeliveriesByUser retrieves all deliveries owned by a user, newest first.
func (repo *deliveryRepository) FindDeliveriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Delivery, error) {
	var deliveryMs []model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Rider").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deliveryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by user")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryMs))
	for i := range deliveryMs {
		deliveries = append(deliveries, toDeliveryDomain(&deliveryMs[i]))
	}

	return deliveries, nil
}

// FindOpenDeliveriesByLandmark retrieves unassigned deliveries tagged with the
// given landmark, newest first.
func (repo *deliveryRepository) FindOpenDeliveriesByLandmark(ctx context.Context, landmark string) ([]*entity.Delivery, error) {
	var deliveryMs []model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("landmark = ? AND rider_id IS NULL AND is_delivered = false", landmark).
		Order("created_at DESC").
		Find(&deliveryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open deliveries by landmark")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryMs))
	for i := range deliveryMs {
		deliveries = append(deliveries, toDeliveryDomain(&deliveryMs[i]))
	}

	return deliveries, nil
}

// AssignRider sets the rider on a delivery, guarded by rider_id IS NULL so only
// the first accepting rider wins. Delivered deliveries never accept a rider.
func (repo *deliveryRepository) AssignRider(ctx context.Context, id, riderID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ? AND rider_id IS NULL AND is_delivered = false", id).
		Update("rider_id", riderID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to assign rider")
	}

	if result.RowsAffected == 0 {
		return repo.resolveGuardFailure(ctx, id, repository.ErrRiderAlreadyAssigned)
	}

	return nil
}

// MarkPickedUp flags the package as collected, guarded by the assigned rider.
func (repo *deliveryRepository) MarkPickedUp(ctx context.Context, id, riderID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ? AND rider_id = ? AND is_pickedup = false AND is_delivered = false", id, riderID).
		Updates(map[string]interface{}{
			"is_pickedup": true,
			"status":      entity.DeliveryStatusPending.String(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark delivery picked up")
	}

	if result.RowsAffected == 0 {
		return repo.resolveGuardFailure(ctx, id, repository.ErrDeliveryNotAssigned)
	}

	return nil
}

// MarkDelivered flags the delivery as completed, guarded against re-delivery.
func (repo *deliveryRepository) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ? AND is_delivered = false", id).
		Updates(map[string]interface{}{
			"is_delivered": true,
			"status":       entity.DeliveryStatusDelivered.String(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark delivery delivered")
	}

	if result.RowsAffected == 0 {
		return repo.resolveGuardFailure(ctx, id, repository.ErrDeliveryAlreadyDelivered)
	}

	return nil
}

// DeleteDelivery soft-deletes a delivery by its ID.
func (repo *deliveryRepository) DeleteDelivery(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeliveryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete delivery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// resolveGuardFailure distinguishes a missing delivery and a terminal delivery
// from a failed state guard after a conditional update touched zero rows.
func (repo *deliveryRepository) resolveGuardFailure(ctx context.Context, id uuid.UUID, guardErr error) error {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Select("is_delivered").
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrDeliveryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to check delivery state")
	}

	if deliveryM.IsDelivered {
		return repository.ErrDeliveryAlreadyDelivered
	}

	return guardErr
}

// toDeliveryDomain maps a persistence model to a pure domain entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	delivery := &entity.Delivery{
		ID:               data.ID,
		Code:             data.Code,
		UserID:           data.UserID,
		RiderID:          data.RiderID,
		PackageName:      data.PackageName,
		Phone:            data.Phone,
		PickupLocation:   data.PickupLocation,
		DeliveryLocation: data.DeliveryLocation,
		Pickup:           toCoordinate(data.PickupLatitude, data.PickupLongitude),
		Dropoff:          toCoordinate(data.DropoffLatitude, data.DropoffLongitude),
		EstimatedPrice:   data.EstimatedPrice,
		ImageURL:         data.ImageURL,
		Landmark:         data.Landmark,
		IsPickedUp:       data.IsPickedUp,
		IsDelivered:      data.IsDelivered,
		Status:           entity.DeliveryStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.User != nil {
		delivery.User = toUserDomain(data.User)
	}
	if data.Rider != nil {
		delivery.Rider = toRiderDomain(data.Rider)
	}

	return delivery
}

// fromDeliveryDomain maps a pure domain entity to a persistence model.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	deliveryM := &model.DeliveryModel{
		ID:               data.ID,
		Code:             data.Code,
		UserID:           data.UserID,
		RiderID:          data.RiderID,
		PackageName:      data.PackageName,
		Phone:            data.Phone,
		PickupLocation:   data.PickupLocation,
		DeliveryLocation: data.DeliveryLocation,
		EstimatedPrice:   data.EstimatedPrice,
		ImageURL:         data.ImageURL,
		Landmark:         data.Landmark,
		IsPickedUp:       data.IsPickedUp,
		IsDelivered:      data.IsDelivered,
		Status:           data.Status.String(),
	}

	if data.Pickup != nil {
		deliveryM.PickupLatitude = &data.Pickup.Latitude
		deliveryM.PickupLongitude = &data.Pickup.Longitude
	}
	if data.Dropoff != nil {
		deliveryM.DropoffLatitude = &data.Dropoff.Latitude
		deliveryM.DropoffLongitude = &data.Dropoff.Longitude
	}

	return deliveryM
}

func toCoordinate(lat, lon *float64) *entity.Coordinate {
	if lat == nil || lon == nil {
		return nil
	}

	return &entity.Coordinate{Latitude: *lat, Longitude: *lon}
}
