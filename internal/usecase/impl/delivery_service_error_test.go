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

func TestDeliveryService_CreateDelivery_NotAUser(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleRider}

	_, err := fx.service.CreateDelivery(ctx, actor, validCreateInput())

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestDeliveryService_CreateDelivery_MissingFields(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleUser}

	mutations := map[string]func(*usecase.CreateDeliveryInput){
		"package name": func(in *usecase.CreateDeliveryInput) { in.PackageName = "" },
		"phone":        func(in *usecase.CreateDeliveryInput) { in.Phone = "  " },
		"pickup":       func(in *usecase.CreateDeliveryInput) { in.PickupLocation = "" },
		"destination":  func(in *usecase.CreateDeliveryInput) { in.DeliveryLocation = "" },
		"price":        func(in *usecase.CreateDeliveryInput) { in.EstimatedPrice = 0 },
		"landmark":     func(in *usecase.CreateDeliveryInput) { in.Landmark = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			input := validCreateInput()
			mutate(input)

			_, err := fx.service.CreateDelivery(ctx, actor, input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDeliveryService_CreateDelivery_CoordinateOutOfRange(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleUser}

	mutations := map[string]func(*usecase.CreateDeliveryInput){
		"pickup latitude out of range": func(in *usecase.CreateDeliveryInput) {
			in.Pickup = &entity.Coordinate{Latitude: 500, Longitude: 999}
		},
		"pickup latitude NaN": func(in *usecase.CreateDeliveryInput) {
			in.Pickup = &entity.Coordinate{Latitude: math.NaN(), Longitude: 3.38}
		},
		"dropoff longitude out of range": func(in *usecase.CreateDeliveryInput) {
			in.Dropoff = &entity.Coordinate{Latitude: 6.45, Longitude: 181}
		},
		"dropoff longitude infinite": func(in *usecase.CreateDeliveryInput) {
			in.Dropoff = &entity.Coordinate{Latitude: 6.45, Longitude: math.Inf(1)}
		},
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			input := validCreateInput()
			mutate(input)

			_, err := fx.service.CreateDelivery(ctx, actor, input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDeliveryService_CreateDelivery_MissingImage(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleUser}
	input := validCreateInput()
	input.ImageURL = ""

	_, err := fx.service.CreateDelivery(ctx, actor, input)

	assert.True(t, errors.Is(err, domainerrors.ErrImageRequired))
}

func TestDeliveryService_CreateDelivery_CodeSpaceExhausted(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	actor := entity.Actor{ID: uuid.New(), Role: entity.RoleUser}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)

		userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(&entity.User{ID: actor.ID}, nil)
		deliveryRepo.EXPECT().
			CreateDelivery(ctx, mock.AnythingOfType("*entity.Delivery")).
			Return(repository.ErrDuplicateDeliveryCode).
			Times(5)
	})

	_, err := fx.service.CreateDelivery(ctx, actor, validCreateInput())

	assert.True(t, errors.Is(err, domainerrors.ErrRequestFailed))
}

func TestDeliveryService_AcceptDelivery_AlreadyAssigned(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	riderID := uuid.New()
	deliveryID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		riderRepo := mockRepo.NewMockRiderRepository(t)

		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		factory.EXPECT().NewRiderRepository().Return(riderRepo)

		riderRepo.EXPECT().FindRiderByID(ctx, riderID).Return(&entity.Rider{ID: riderID}, nil)
		deliveryRepo.EXPECT().
			AssignRider(ctx, deliveryID, riderID).
			Return(repository.ErrRiderAlreadyAssigned)
	})

	_, err := fx.service.AcceptDelivery(ctx, riderID, deliveryID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyAssigned))
}

func TestDeliveryService_AcceptDelivery_AlreadyDelivered(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	riderID := uuid.New()
	deliveryID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		riderRepo := mockRepo.NewMockRiderRepository(t)

		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		factory.EXPECT().NewRiderRepository().Return(riderRepo)

		riderRepo.EXPECT().FindRiderByID(ctx, riderID).Return(&entity.Rider{ID: riderID}, nil)
		deliveryRepo.EXPECT().
			AssignRider(ctx, deliveryID, riderID).
			Return(repository.ErrDeliveryAlreadyDelivered)
	})

	// No publish expectation: a terminal delivery must not announce an acceptance.
	_, err := fx.service.AcceptDelivery(ctx, riderID, deliveryID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyDelivered))
}

func TestDeliveryService_MarkPickedUp_AlreadyDelivered(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	riderID := uuid.New()
	deliveryID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().
			MarkPickedUp(ctx, deliveryID, riderID).
			Return(repository.ErrDeliveryAlreadyDelivered)
	})

	_, err := fx.service.MarkPickedUp(ctx, riderID, deliveryID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyDelivered))
}

func TestDeliveryService_AcceptDelivery_NotFound(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	riderID := uuid.New()
	deliveryID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		riderRepo := mockRepo.NewMockRiderRepository(t)

		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		factory.EXPECT().NewRiderRepository().Return(riderRepo)

		riderRepo.EXPECT().FindRiderByID(ctx, riderID).Return(&entity.Rider{ID: riderID}, nil)
		deliveryRepo.EXPECT().
			AssignRider(ctx, deliveryID, riderID).
			Return(repository.ErrDeliveryNotFound)
	})

	_, err := fx.service.AcceptDelivery(ctx, riderID, deliveryID)

	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryNotFound))
}

func TestDeliveryService_RejectDelivery_MissingPickupCoordinate(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	rejecterID := uuid.New()
	deliveryID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{ID: deliveryID, UserID: uuid.New()}, nil)
	})

	_, err := fx.service.RejectDelivery(ctx, rejecterID, deliveryID)

	assert.True(t, errors.Is(err, domainerrors.ErrMissingPickupCoordinate))
}

func TestDeliveryService_RejectDelivery_NoRiderAvailable(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	rejecterID := uuid.New()
	deliveryID := uuid.New()
	pickup := entity.Coordinate{Latitude: 6.45, Longitude: 3.38}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{ID: deliveryID, UserID: uuid.New(), Pickup: &pickup}, nil)
	})
	fx.dispatch.EXPECT().
		FindNearestRider(ctx, pickup, []uuid.UUID{rejecterID}).
		Return(nil, errors.Wrap(domainerrors.ErrNoRiderAvailable, "no eligible rider near pickup"))

	_, err := fx.service.RejectDelivery(ctx, rejecterID, deliveryID)

	assert.True(t, errors.Is(err, domainerrors.ErrNoRiderAvailable))
}

func TestDeliveryService_MarkPickedUp_NotAssigned(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	riderID := uuid.New()
	deliveryID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().
			MarkPickedUp(ctx, deliveryID, riderID).
			Return(repository.ErrDeliveryNotAssigned)
	})

	_, err := fx.service.MarkPickedUp(ctx, riderID, deliveryID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotAssigned))
}

func TestDeliveryService_ConfirmDelivery_OwnershipMismatch(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	riderID := uuid.New()
	deliveryID := uuid.New()
	input := &usecase.ConfirmDeliveryInput{DeliveryID: deliveryID, RiderID: riderID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{ID: deliveryID, UserID: uuid.New(), RiderID: &riderID}, nil)
	})

	_, err := fx.service.ConfirmDelivery(ctx, uuid.New(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrOwnershipMismatch))
}

func TestDeliveryService_ConfirmDelivery_RiderMismatch(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	userID := uuid.New()
	assignedRider := uuid.New()
	deliveryID := uuid.New()
	input := &usecase.ConfirmDeliveryInput{DeliveryID: deliveryID, RiderID: uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{ID: deliveryID, UserID: userID, RiderID: &assignedRider}, nil)
	})

	_, err := fx.service.ConfirmDelivery(ctx, userID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrRiderMismatch))
}

func TestDeliveryService_ConfirmDeliveryByCode_AlreadyDelivered(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	riderID := uuid.New()
	delivered := &entity.Delivery{
		ID:          uuid.New(),
		Code:        654321,
		UserID:      uuid.New(),
		RiderID:     &riderID,
		IsPickedUp:  true,
		IsDelivered: true,
		Status:      entity.DeliveryStatusDelivered,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().FindDeliveryByCode(ctx, 654321).Return(delivered, nil)
	})

	// No publish expectation: confirming twice must not re-notify.
	_, err := fx.service.ConfirmDeliveryByCode(ctx, 654321)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyDelivered))
}

func TestDeliveryService_ConfirmDeliveryByCode_UnknownCode(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().FindDeliveryByCode(ctx, 999999).Return(nil, repository.ErrDeliveryNotFound)
	})

	_, err := fx.service.ConfirmDeliveryByCode(ctx, 999999)

	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryNotFound))
}

func TestDeliveryService_DeleteDelivery_AfterPickup(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	userID := uuid.New()
	deliveryID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{ID: deliveryID, UserID: userID, IsPickedUp: true}, nil)
	})

	err := fx.service.DeleteDelivery(ctx, userID, deliveryID)

	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryNotDeletable))
}

func TestDeliveryService_DeleteDelivery_NotOwner(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{ID: deliveryID, UserID: uuid.New()}, nil)
	})

	err := fx.service.DeleteDelivery(ctx, uuid.New(), deliveryID)

	assert.True(t, errors.Is(err, domainerrors.ErrOwnershipMismatch))
}

func TestDeliveryService_DeliveryCodeQR_NotOwner(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)
		deliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{ID: deliveryID, UserID: uuid.New(), Code: 135790}, nil)
	})

	image, err := fx.service.DeliveryCodeQR(ctx, uuid.New(), deliveryID)

	require.Nil(t, image)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnershipMismatch))
}
