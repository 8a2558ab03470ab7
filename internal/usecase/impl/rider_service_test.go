package impl

import (
	"context"
	"math"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	mockRepo "dispatch/internal/mocks/repository"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// riderServiceFixtures holds all test dependencies for rider service tests.
type riderServiceFixtures struct {
	t         *testing.T
	service   usecase.RiderUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestRiderService(t *testing.T) riderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewRiderService(txManager, newDiscardLogger())

	return riderServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (fx riderServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func TestRiderService_UpdateLocation_Success(t *testing.T) {
	fx := createTestRiderService(t)

	ctx := context.Background()
	riderID := uuid.New()
	input := &usecase.UpdateRiderLocationInput{Latitude: 6.4550, Longitude: 3.3841}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		riderRepo := mockRepo.NewMockRiderRepository(t)
		factory.EXPECT().NewRiderRepository().Return(riderRepo)
		riderRepo.EXPECT().
			UpdateRiderLocation(ctx, riderID, entity.Coordinate{Latitude: 6.4550, Longitude: 3.3841}).
			Return(nil)
	})

	err := fx.service.UpdateLocation(ctx, riderID, input)

	require.NoError(t, err)
}

func TestRiderService_UpdateLocation_OutOfRange(t *testing.T) {
	fx := createTestRiderService(t)

	ctx := context.Background()

	inputs := map[string]*usecase.UpdateRiderLocationInput{
		"latitude too high":  {Latitude: 91, Longitude: 0},
		"longitude too low":  {Latitude: 0, Longitude: -181},
		"NaN latitude":       {Latitude: math.NaN(), Longitude: 0},
		"infinite longitude": {Latitude: 0, Longitude: math.Inf(1)},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			err := fx.service.UpdateLocation(ctx, uuid.New(), input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestRiderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestRiderService(t)

	err := fx.service.UpdateStatus(context.Background(), uuid.New(), entity.RiderStatus("sleeping"))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRiderService_VerifyRider_AdminOnly(t *testing.T) {
	fx := createTestRiderService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleRider}

	err := fx.service.VerifyRider(ctx, actor, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestRiderService_VerifyRider_Success(t *testing.T) {
	fx := createTestRiderService(t)

	ctx := context.Background()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	riderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		riderRepo := mockRepo.NewMockRiderRepository(t)
		factory.EXPECT().NewRiderRepository().Return(riderRepo)
		riderRepo.EXPECT().SetRiderVerified(ctx, riderID, true).Return(nil)
	})

	err := fx.service.VerifyRider(ctx, admin, riderID)

	require.NoError(t, err)
}

func TestRiderService_SetOperatingAreas_Normalizes(t *testing.T) {
	fx := createTestRiderService(t)

	ctx := context.Background()
	riderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		riderRepo := mockRepo.NewMockRiderRepository(t)
		factory.EXPECT().NewRiderRepository().Return(riderRepo)
		riderRepo.EXPECT().
			ReplaceOperatingAreas(ctx, riderID, []string{"lekki", "yaba"}).
			Return(nil)
	})

	err := fx.service.SetOperatingAreas(ctx, riderID, []string{" Lekki ", "YABA", "lekki", ""})

	require.NoError(t, err)
}

func TestRiderService_SetOperatingAreas_Empty(t *testing.T) {
	fx := createTestRiderService(t)

	err := fx.service.SetOperatingAreas(context.Background(), uuid.New(), []string{"", "  "})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRiderService_ListOpenDeliveries_Success(t *testing.T) {
	fx := createTestRiderService(t)

	ctx := context.Background()
	open := []*entity.Delivery{{ID: uuid.New(), Landmark: "lekki"}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().FindOpenDeliveriesByLandmark(ctx, "lekki").Return(open, nil)
	})

	deliveries, err := fx.service.ListOpenDeliveries(ctx, "Lekki")

	require.NoError(t, err)
	assert.Equal(t, open, deliveries)
}

func TestRiderService_UpdateLocation_RiderNotFound(t *testing.T) {
	fx := createTestRiderService(t)

	ctx := context.Background()
	riderID := uuid.New()
	input := &usecase.UpdateRiderLocationInput{Latitude: 6.4550, Longitude: 3.3841}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		riderRepo := mockRepo.NewMockRiderRepository(t)
		factory.EXPECT().NewRiderRepository().Return(riderRepo)
		riderRepo.EXPECT().
			UpdateRiderLocation(ctx, riderID, mock.AnythingOfType("entity.Coordinate")).
			Return(repository.ErrRiderNotFound)
	})

	err := fx.service.UpdateLocation(ctx, riderID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrRiderNotFound))
}
