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

// riderRepository implements the repository.RiderRepository interface.
type riderRepository struct {
	db *gorm.DB
}

// NewRiderRepository is the constructor for riderRepository.
func NewRiderRepository(db *gorm.DB) repository.RiderRepository {
	return &riderRepository{
		db: db,
	}
}

// FindRiderByID retrieves a rider by their unique ID, preloading operating areas.
func (repo *riderRepository) FindRiderByID(ctx context.Context, id uuid.UUID) (*entity.Rider, error) {
	var riderM model.RiderModel

	if err := repo.db.WithContext(ctx).
		Preload("OperatingAreas").
		Where("id = ?", id).
		First(&riderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRiderNotFound
		}

		return nil, errors.Wrap(err, "failed to find rider by ID")
	}

	return toRiderDomain(&riderM), nil
}

// FindAvailableRiders retrieves riders eligible for dispatch: active, verified,
// with a reported position.
func (repo *riderRepository) FindAvailableRiders(ctx context.Context) ([]*entity.Rider, error) {
	var riderMs []model.RiderModel

	if err := repo.db.WithContext(ctx).
		Preload("OperatingAreas").
		Where("status = ? AND is_verified = true AND latitude IS NOT NULL AND longitude IS NOT NULL",
			entity.RiderStatusActive.String()).
		Find(&riderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available riders")
	}

	return toRiderDomains(riderMs), nil
}

// FindRidersByOperatingArea retrieves riders registered to serve the given landmark.
func (repo *riderRepository) FindRidersByOperatingArea(ctx context.Context, landmark string) ([]*entity.Rider, error) {
	var riderMs []model.RiderModel

	if err := repo.db.WithContext(ctx).
		Preload("OperatingAreas").
		Joins("JOIN rider_operating_areas ON rider_operating_areas.rider_id = riders.id").
		Where("rider_operating_areas.landmark = ?", landmark).
		Find(&riderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find riders by operating area")
	}

	return toRiderDomains(riderMs), nil
}

// UpdateRiderLocation records the rider's last reported position.
func (repo *riderRepository) UpdateRiderLocation(ctx context.Context, id uuid.UUID, position entity.Coordinate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RiderModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"latitude":  position.Latitude,
			"longitude": position.Longitude,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rider location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRiderNotFound
	}

	return nil
}

// UpdateRiderStatus switches the rider between active and inactive.
func (repo *riderRepository) UpdateRiderStatus(ctx context.Context, id uuid.UUID, status entity.RiderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RiderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rider status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRiderNotFound
	}

	return nil
}

// SetRiderVerified flips the verification flag on a rider account.
func (repo *riderRepository) SetRiderVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RiderModel{}).
		Where("id = ?", id).
		Update("is_verified", verified)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rider verification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRiderNotFound
	}

	return nil
}

// ReplaceOperatingAreas replaces the rider's full set of operating areas.
func (repo *riderRepository) ReplaceOperatingAreas(ctx context.Context, id uuid.UUID, landmarks []string) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RiderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check rider existence")
	}
	if count == 0 {
		return repository.ErrRiderNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("rider_id = ?", id).
		Delete(&model.RiderOperatingAreaModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear operating areas")
	}

	areaMs := make([]model.RiderOperatingAreaModel, 0, len(landmarks))
	for _, landmark := range landmarks {
		areaMs = append(areaMs, model.RiderOperatingAreaModel{
			RiderID:  id,
			Landmark: landmark,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&areaMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store operating areas")
	}

	return nil
}

// toRiderDomain maps a persistence model to a pure domain entity.
func toRiderDomain(data *model.RiderModel) *entity.Rider {
	rider := &entity.Rider{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		Position:    toCoordinate(data.Latitude, data.Longitude),
		Status:      entity.RiderStatus(data.Status),
		IsVerified:  data.IsVerified,
		DeviceToken: data.DeviceToken,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, area := range data.OperatingAreas {
		rider.OperatingAreas = append(rider.OperatingAreas, area.Landmark)
	}

	return rider
}

func toRiderDomains(data []model.RiderModel) []*entity.Rider {
	riders := make([]*entity.Rider, 0, len(data))
	for i := range data {
		riders = append(riders, toRiderDomain(&data[i]))
	}

	return riders
}
