package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"path"
	"strings"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Delivery codes are drawn uniformly from [100000, 999999].
const (
	deliveryCodeMin  = 100000
	deliveryCodeSpan = 900000
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	txManager    repository.TransactionManager
	dispatch     usecase.DispatchUsecase
	publisher    service.EventPublisher
	qrcodeSvc    service.QRCodeService
	imageStore   service.ImageStore
	codeAttempts int
	logger       *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(
	txManager repository.TransactionManager,
	dispatch usecase.DispatchUsecase,
	publisher service.EventPublisher,
	qrcodeSvc service.QRCodeService,
	imageStore service.ImageStore,
	codeAttempts int,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:    txManager,
		dispatch:     dispatch,
		publisher:    publisher,
		qrcodeSvc:    qrcodeSvc,
		imageStore:   imageStore,
		codeAttempts: codeAttempts,
		logger:       logger,
	}
}

// CreateDelivery places a new delivery for the acting user.
func (srv *deliveryService) CreateDelivery(
	ctx context.Context,
	actor entity.Actor,
	input *usecase.CreateDeliveryInput,
) (*entity.Delivery, error) {
	if !actor.Is(entity.RoleUser) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "only users can place deliveries")
	}
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	delivery := &entity.Delivery{
		ID:               uuid.New(),
		UserID:           actor.ID,
		PackageName:      input.PackageName,
		Phone:            input.Phone,
		PickupLocation:   input.PickupLocation,
		DeliveryLocation: input.DeliveryLocation,
		Pickup:           input.Pickup,
		Dropoff:          input.Dropoff,
		EstimatedPrice:   input.EstimatedPrice,
		ImageURL:         input.ImageURL,
		Landmark:         strings.ToLower(strings.TrimSpace(input.Landmark)),
		Status:           entity.DeliveryStatusPlaced,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.NewDeliveryRepository()
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindUserByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "requesting user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		delivery.User = user

		// Codes are unique among active deliveries; retry on collision.
		for attempt := 0; attempt < srv.codeAttempts; attempt++ {
			code, err := generateDeliveryCode()
			if err != nil {
				return errors.Wrap(err, "failed to generate delivery code")
			}
			delivery.Code = code

			err = deliveryRepo.CreateDelivery(ctx, delivery)
			if err == nil {
				return nil
			}
			if !errors.Is(err, repository.ErrDuplicateDeliveryCode) {
				return errors.Wrap(err, "failed to create delivery")
			}
		}

		return errors.Wrap(domainerrors.ErrRequestFailed, "could not allocate a unique delivery code")
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.DeliveryEvent{
		Type:         service.EventDeliveryCreated,
		DeliveryID:   delivery.ID.String(),
		UserID:       delivery.UserID.String(),
		PackageName:  delivery.PackageName,
		Landmark:     delivery.Landmark,
		PickupPlace:  delivery.PickupLocation,
		DropoffPlace: delivery.DeliveryLocation,
		Price:        delivery.EstimatedPrice,
	})

	return delivery, nil
}

// GetDelivery retrieves a single delivery with its projections.
func (srv *deliveryService) GetDelivery(ctx context.Context, deliveryID uuid.UUID) (*entity.Delivery, error) {
	var delivery *entity.Delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewDeliveryRepository().FindDeliveryByID(ctx, deliveryID)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
			}

			return errors.Wrap(err, "failed to find delivery")
		}
		delivery = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return delivery, nil
}

// ListUserDeliveries retrieves the acting user's deliveries.
func (srv *deliveryService) ListUserDeliveries(ctx context.Context, userID uuid.UUID) ([]*entity.Delivery, error) {
	var deliveries []*entity.Delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewDeliveryRepository().FindDeliveriesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list deliveries")
		}
		deliveries = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deliveries, nil
}

// AcceptDelivery assigns the delivery to the accepting rider. The assignment is
// a conditional update guarded by rider_id IS NULL, so concurrent accepts on
// the same delivery resolve to a single winner.
func (srv *deliveryService) AcceptDelivery(ctx context.Context, riderID, deliveryID uuid.UUID) (*entity.Delivery, error) {
	var delivery *entity.Delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.NewDeliveryRepository()
		riderRepo := repoFactory.NewRiderRepository()

		if _, err := riderRepo.FindRiderByID(ctx, riderID); err != nil {
			if errors.Is(err, repository.ErrRiderNotFound) {
				return errors.Wrap(domainerrors.ErrRiderNotFound, "rider not found")
			}

			return errors.Wrap(err, "failed to find rider")
		}

		if err := deliveryRepo.AssignRider(ctx, deliveryID, riderID); err != nil {
			switch {
			case errors.Is(err, repository.ErrDeliveryNotFound):
				return errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
			case errors.Is(err, repository.ErrRiderAlreadyAssigned):
				return errors.Wrap(domainerrors.ErrAlreadyAssigned, "delivery already taken")
			case errors.Is(err, repository.ErrDeliveryAlreadyDelivered):
				return errors.Wrap(domainerrors.ErrAlreadyDelivered, "delivery already completed")
			default:
				return errors.Wrap(err, "failed to assign rider")
			}
		}

		found, err := deliveryRepo.FindDeliveryByID(ctx, deliveryID)
		if err != nil {
			return errors.Wrap(err, "failed to reload delivery")
		}
		delivery = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.DeliveryEvent{
		Type:        service.EventDeliveryAccepted,
		DeliveryID:  delivery.ID.String(),
		UserID:      delivery.UserID.String(),
		RiderID:     riderID.String(),
		PackageName: delivery.PackageName,
	})

	return delivery, nil
}

// RejectDelivery reroutes a delivery the rider turned down. The nearest other
// available rider is notified, but the delivery itself stays open: assignment
// only ever happens through AcceptDelivery.
func (srv *deliveryService) RejectDelivery(ctx context.Context, rejectingRiderID, deliveryID uuid.UUID) (*entity.Rider, error) {
	var delivery *entity.Delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewDeliveryRepository().FindDeliveryByID(ctx, deliveryID)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
			}

			return errors.Wrap(err, "failed to find delivery")
		}
		delivery = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if delivery.Pickup == nil {
		return nil, errors.Wrap(domainerrors.ErrMissingPickupCoordinate, "delivery has no pickup coordinate")
	}

	rider, err := srv.dispatch.FindNearestRider(ctx, *delivery.Pickup, []uuid.UUID{rejectingRiderID})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.DeliveryEvent{
		Type:         service.EventRiderMatched,
		DeliveryID:   delivery.ID.String(),
		UserID:       delivery.UserID.String(),
		RiderID:      rider.ID.String(),
		PackageName:  delivery.PackageName,
		Landmark:     delivery.Landmark,
		PickupPlace:  delivery.PickupLocation,
		DropoffPlace: delivery.DeliveryLocation,
		Price:        delivery.EstimatedPrice,
	})

	return rider, nil
}

// MarkPickedUp records that the assigned rider collected the package.
func (srv *deliveryService) MarkPickedUp(ctx context.Context, riderID, deliveryID uuid.UUID) (*entity.Delivery, error) {
	var delivery *entity.Delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.NewDeliveryRepository()

		if err := deliveryRepo.MarkPickedUp(ctx, deliveryID, riderID); err != nil {
			switch {
			case errors.Is(err, repository.ErrDeliveryNotFound):
				return errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
			case errors.Is(err, repository.ErrDeliveryNotAssigned):
				return errors.Wrap(domainerrors.ErrNotAssigned, "delivery not assigned to this rider")
			case errors.Is(err, repository.ErrDeliveryAlreadyDelivered):
				return errors.Wrap(domainerrors.ErrAlreadyDelivered, "delivery already completed")
			default:
				return errors.Wrap(err, "failed to mark delivery picked up")
			}
		}

		found, err := deliveryRepo.FindDeliveryByID(ctx, deliveryID)
		if err != nil {
			return errors.Wrap(err, "failed to reload delivery")
		}
		delivery = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.DeliveryEvent{
		Type:         service.EventDeliveryPickedUp,
		DeliveryID:   delivery.ID.String(),
		DeliveryCode: delivery.Code,
		UserID:       delivery.UserID.String(),
		RiderID:      riderID.String(),
		PackageName:  delivery.PackageName,
	})

	return delivery, nil
}

// ConfirmDelivery completes a delivery on behalf of its owner.
func (srv *deliveryService) ConfirmDelivery(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.ConfirmDeliveryInput,
) (*entity.Delivery, error) {
	var delivery *entity.Delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.NewDeliveryRepository()

		found, err := deliveryRepo.FindDeliveryByID(ctx, input.DeliveryID)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
			}

			return errors.Wrap(err, "failed to find delivery")
		}

		if found.UserID != userID {
			return errors.Wrap(domainerrors.ErrOwnershipMismatch, "delivery belongs to another user")
		}
		if found.RiderID == nil || *found.RiderID != input.RiderID {
			return errors.Wrap(domainerrors.ErrRiderMismatch, "delivery carried by another rider")
		}

		if err := srv.completeDelivery(ctx, deliveryRepo, found); err != nil {
			return err
		}
		delivery = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishConfirmed(ctx, delivery)

	return delivery, nil
}

// ConfirmDeliveryByCode completes a delivery identified by its 6-digit code.
func (srv *deliveryService) ConfirmDeliveryByCode(ctx context.Context, code int) (*entity.Delivery, error) {
	var delivery *entity.Delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.NewDeliveryRepository()

		found, err := deliveryRepo.FindDeliveryByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return errors.Wrap(domainerrors.ErrDeliveryNotFound, "no delivery with this code")
			}

			return errors.Wrap(err, "failed to find delivery by code")
		}

		if err := srv.completeDelivery(ctx, deliveryRepo, found); err != nil {
			return err
		}
		delivery = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishConfirmed(ctx, delivery)

	return delivery, nil
}

// completeDelivery applies the terminal transition. Confirming an already
// delivered package is rejected so no duplicate notification goes out.
func (srv *deliveryService) completeDelivery(
	ctx context.Context,
	deliveryRepo repository.DeliveryRepository,
	delivery *entity.Delivery,
) error {
	if delivery.IsDelivered {
		return errors.Wrap(domainerrors.ErrAlreadyDelivered, "delivery already confirmed")
	}

	if err := deliveryRepo.MarkDelivered(ctx, delivery.ID); err != nil {
		if errors.Is(err, repository.ErrDeliveryAlreadyDelivered) {
			return errors.Wrap(domainerrors.ErrAlreadyDelivered, "delivery already confirmed")
		}

		return errors.Wrap(err, "failed to mark delivery delivered")
	}

	delivery.IsDelivered = true
	delivery.Status = entity.DeliveryStatusDelivered

	return nil
}

func (srv *deliveryService) publishConfirmed(ctx context.Context, delivery *entity.Delivery) {
	event := &service.DeliveryEvent{
		Type:        service.EventDeliveryConfirmed,
		DeliveryID:  delivery.ID.String(),
		UserID:      delivery.UserID.String(),
		PackageName: delivery.PackageName,
	}
	if delivery.RiderID != nil {
		event.RiderID = delivery.RiderID.String()
	}

	srv.publishEvent(ctx, event)
}

// DeleteDelivery removes a delivery before pickup. Owner only.
func (srv *deliveryService) DeleteDelivery(ctx context.Context, userID, deliveryID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.NewDeliveryRepository()

		delivery, err := deliveryRepo.FindDeliveryByID(ctx, deliveryID)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
			}

			return errors.Wrap(err, "failed to find delivery")
		}

		if delivery.UserID != userID {
			return errors.Wrap(domainerrors.ErrOwnershipMismatch, "delivery belongs to another user")
		}
		if delivery.IsPickedUp {
			return errors.Wrap(domainerrors.ErrDeliveryNotDeletable, "delivery already picked up")
		}

		if err := deliveryRepo.DeleteDelivery(ctx, deliveryID); err != nil {
			return errors.Wrap(err, "failed to delete delivery")
		}

		return nil
	})
}

// AttachPackageImage stores the package image and returns its public URL.
func (srv *deliveryService) AttachPackageImage(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.AttachImageInput,
) (string, error) {
	if input == nil || input.Body == nil {
		return "", errors.Wrap(domainerrors.ErrImageRequired, "no image supplied")
	}

	key := fmt.Sprintf("packages/%s/%s%s", userID, uuid.New(), path.Ext(input.FileName))

	url, err := srv.imageStore.SaveImage(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to store package image")
	}

	return url, nil
}

// DeliveryCodeQR renders the delivery code of an owned delivery as a QR image.
func (srv *deliveryService) DeliveryCodeQR(ctx context.Context, userID, deliveryID uuid.UUID) ([]byte, error) {
	delivery, err := srv.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if delivery.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOwnershipMismatch, "delivery belongs to another user")
	}

	png, err := srv.qrcodeSvc.GenerateDeliveryCodeQR(delivery.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render delivery code")
	}

	return png, nil
}

// publishEvent publishes a lifecycle event fire-and-forget. A publish failure
// is logged and never fails the state transition that produced it.
func (srv *deliveryService) publishEvent(ctx context.Context, event *service.DeliveryEvent) {
	if err := srv.publisher.PublishDeliveryEvent(ctx, event); err != nil {
		srv.logger.Error("Failed to publish delivery event",
			"type", event.Type,
			"deliveryID", event.DeliveryID,
			"error", err,
		)
	}
}

func validateCreateInput(input *usecase.CreateDeliveryInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "missing payload")
	}

	switch {
	case strings.TrimSpace(input.PackageName) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "package name is required")
	case strings.TrimSpace(input.Phone) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "phone is required")
	case strings.TrimSpace(input.PickupLocation) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "pickup location is required")
	case strings.TrimSpace(input.DeliveryLocation) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "delivery location is required")
	case input.EstimatedPrice <= 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "estimated price is required")
	case strings.TrimSpace(input.Landmark) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "landmark is required")
	}

	if input.Pickup != nil && !input.Pickup.Valid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "pickup coordinate out of range")
	}
	if input.Dropoff != nil && !input.Dropoff.Valid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "dropoff coordinate out of range")
	}

	if strings.TrimSpace(input.ImageURL) == "" {
		return errors.Wrap(domainerrors.ErrImageRequired, "package image is required")
	}

	return nil
}

// generateDeliveryCode draws a uniform random 6-digit code.
func generateDeliveryCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(deliveryCodeSpan))
	if err != nil {
		return 0, err
	}

	return deliveryCodeMin + int(n.Int64()), nil
}
