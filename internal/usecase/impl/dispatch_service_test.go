package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	mockRepo "dispatch/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeRider(id uuid.UUID, lat, lon float64) *entity.Rider {
	return &entity.Rider{
		ID:         id,
		Status:     entity.RiderStatusActive,
		IsVerified: true,
		Position:   &entity.Coordinate{Latitude: lat, Longitude: lon},
	}
}

func TestDispatchService_FindNearestRider_PicksClosest(t *testing.T) {
	riderRepo := mockRepo.NewMockRiderRepository(t)
	service := NewDispatchService(riderRepo, newDiscardLogger())

	ctx := context.Background()
	pickup := entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792}

	far := activeRider(uuid.New(), 7.3775, 3.9470)
	near := activeRider(uuid.New(), 6.5300, 3.3800)

	riderRepo.EXPECT().FindAvailableRiders(ctx).Return([]*entity.Rider{far, near}, nil)

	rider, err := service.FindNearestRider(ctx, pickup, nil)

	require.NoError(t, err)
	assert.Equal(t, near.ID, rider.ID)
}

func TestDispatchService_FindNearestRider_FirstWinsOnTie(t *testing.T) {
	riderRepo := mockRepo.NewMockRiderRepository(t)
	service := NewDispatchService(riderRepo, newDiscardLogger())

	ctx := context.Background()
	pickup := entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792}

	first := activeRider(uuid.New(), 6.6000, 3.4000)
	second := activeRider(uuid.New(), 6.6000, 3.4000)

	riderRepo.EXPECT().FindAvailableRiders(ctx).Return([]*entity.Rider{first, second}, nil)

	rider, err := service.FindNearestRider(ctx, pickup, nil)

	require.NoError(t, err)
	assert.Equal(t, first.ID, rider.ID)
}

func TestDispatchService_FindNearestRider_SkipsExcluded(t *testing.T) {
	riderRepo := mockRepo.NewMockRiderRepository(t)
	service := NewDispatchService(riderRepo, newDiscardLogger())

	ctx := context.Background()
	pickup := entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792}

	rejecter := activeRider(uuid.New(), 6.5250, 3.3795)
	fallback := activeRider(uuid.New(), 6.7000, 3.5000)

	riderRepo.EXPECT().FindAvailableRiders(ctx).Return([]*entity.Rider{rejecter, fallback}, nil)

	rider, err := service.FindNearestRider(ctx, pickup, []uuid.UUID{rejecter.ID})

	require.NoError(t, err)
	assert.Equal(t, fallback.ID, rider.ID)
}

func TestDispatchService_FindNearestRider_SkipsIneligible(t *testing.T) {
	riderRepo := mockRepo.NewMockRiderRepository(t)
	service := NewDispatchService(riderRepo, newDiscardLogger())

	ctx := context.Background()
	pickup := entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792}

	inactive := activeRider(uuid.New(), 6.5250, 3.3795)
	inactive.Status = entity.RiderStatusInactive

	unverified := activeRider(uuid.New(), 6.5250, 3.3795)
	unverified.IsVerified = false

	noPosition := activeRider(uuid.New(), 0, 0)
	noPosition.Position = nil

	eligible := activeRider(uuid.New(), 6.9000, 3.9000)

	riderRepo.EXPECT().
		FindAvailableRiders(ctx).
		Return([]*entity.Rider{inactive, unverified, noPosition, eligible}, nil)

	rider, err := service.FindNearestRider(ctx, pickup, nil)

	require.NoError(t, err)
	assert.Equal(t, eligible.ID, rider.ID)
}

func TestDispatchService_FindNearestRider_NoneAvailable(t *testing.T) {
	riderRepo := mockRepo.NewMockRiderRepository(t)
	service := NewDispatchService(riderRepo, newDiscardLogger())

	ctx := context.Background()
	pickup := entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792}

	riderRepo.EXPECT().FindAvailableRiders(ctx).Return([]*entity.Rider{}, nil)

	rider, err := service.FindNearestRider(ctx, pickup, nil)

	assert.Nil(t, rider)
	assert.True(t, errors.Is(err, domainerrors.ErrNoRiderAvailable))
}

func TestDispatchService_FindNearestRider_RepoError(t *testing.T) {
	riderRepo := mockRepo.NewMockRiderRepository(t)
	service := NewDispatchService(riderRepo, newDiscardLogger())

	ctx := context.Background()
	pickup := entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792}

	riderRepo.EXPECT().FindAvailableRiders(ctx).Return(nil, errors.New("db error"))

	rider, err := service.FindNearestRider(ctx, pickup, nil)

	assert.Nil(t, rider)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list available riders")
}
