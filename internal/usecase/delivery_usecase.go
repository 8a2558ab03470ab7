// Package usecase defines the application-specific business rules interfaces.
package usecase

import (
	"context"
	"io"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeliveryInput carries the fields required to place a new delivery.
type CreateDeliveryInput struct {
	PackageName      string             `json:"package_name" validate:"required"`
	Phone            string             `json:"phone" validate:"required"`
	PickupLocation   string             `json:"pickup_location" validate:"required"`
	DeliveryLocation string             `json:"delivery_location" validate:"required"`
	EstimatedPrice   float64            `json:"estimated_price" validate:"required,gt=0"`
	Landmark         string             `json:"landmark" validate:"required"`
	ImageURL         string             `json:"image_url"`
	Pickup           *entity.Coordinate `json:"pickup,omitempty"`
	Dropoff          *entity.Coordinate `json:"dropoff,omitempty"`
}

// ConfirmDeliveryInput identifies a delivery the owner wants to confirm,
// together with the rider they expect to have carried it.
type ConfirmDeliveryInput struct {
	DeliveryID uuid.UUID `json:"delivery_id" validate:"required"`
	RiderID    uuid.UUID `json:"rider_id" validate:"required"`
}

// AttachImageInput carries an uploaded package image.
type AttachImageInput struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// DeliveryUsecase defines the interface for delivery lifecycle use cases
type DeliveryUsecase interface {
	// CreateDelivery places a new delivery for the acting user and notifies
	// riders operating around its landmark.
	CreateDelivery(ctx context.Context, actor entity.Actor, input *CreateDeliveryInput) (*entity.Delivery, error)

	// GetDelivery retrieves a single delivery with its user and rider projections.
	GetDelivery(ctx context.Context, deliveryID uuid.UUID) (*entity.Delivery, error)

	// ListUserDeliveries retrieves the acting user's deliveries, newest first.
	ListUserDeliveries(ctx context.Context, userID uuid.UUID) ([]*entity.Delivery, error)

	// AcceptDelivery assigns the delivery to the accepting rider. Only the
	// first rider to accept wins.
	AcceptDelivery(ctx context.Context, riderID, deliveryID uuid.UUID) (*entity.Delivery, error)

	// RejectDelivery reroutes the delivery to the nearest available rider
	// other than the one rejecting it. The assignment itself stays open until
	// some rider accepts.
	RejectDelivery(ctx context.Context, rejectingRiderID, deliveryID uuid.UUID) (*entity.Rider, error)

	// MarkPickedUp records that the assigned rider has collected the package
	// and texts the delivery code to the requester.
	MarkPickedUp(ctx context.Context, riderID, deliveryID uuid.UUID) (*entity.Delivery, error)

	// ConfirmDelivery completes a delivery on behalf of its owner, checking
	// that the expected rider is the one assigned.
	ConfirmDelivery(ctx context.Context, userID uuid.UUID, input *ConfirmDeliveryInput) (*entity.Delivery, error)

	// ConfirmDeliveryByCode completes a delivery identified by its 6-digit
	// code, as presented to the rider at handoff.
	ConfirmDeliveryByCode(ctx context.Context, code int) (*entity.Delivery, error)

	// DeleteDelivery removes a delivery before pickup. Owner only.
	DeleteDelivery(ctx context.Context, userID, deliveryID uuid.UUID) error

	// AttachPackageImage stores the package image and returns its public URL.
	AttachPackageImage(ctx context.Context, userID uuid.UUID, input *AttachImageInput) (string, error)

	// DeliveryCodeQR renders the delivery code of an owned delivery as a QR
	// code image.
	DeliveryCodeQR(ctx context.Context, userID, deliveryID uuid.UUID) ([]byte, error)
}
