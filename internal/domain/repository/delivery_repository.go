// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for delivery persistence.
var (
	// ErrDeliveryNotFound is returned when a delivery is not found.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrDuplicateDeliveryCode is returned when the generated delivery code collides
	// with an active delivery.
	ErrDuplicateDeliveryCode = errors.New("delivery code already in use")
	// ErrRiderAlreadyAssigned is returned when a conditional assignment finds the
	// rider slot already taken.
	ErrRiderAlreadyAssigned = errors.New("delivery already has an assigned rider")
	// ErrDeliveryNotAssigned is returned when a rider-guarded update finds the
	// delivery assigned to a different rider, or to nobody.
	ErrDeliveryNotAssigned = errors.New("delivery not assigned to this rider")
	// ErrDeliveryAlreadyDelivered is returned when a terminal delivery is updated again.
	ErrDeliveryAlreadyDelivered = errors.New("delivery already delivered")
)

// DeliveryRepository defines the interface for delivery-related database operations.
// State-changing methods are conditional updates: they apply only when the
// delivery is in the expected state, and report a typed error otherwise, so
// concurrent operations on the same delivery cannot silently overwrite each other.
type DeliveryRepository interface {
	// CreateDelivery persists a new delivery. Reports ErrDuplicateDeliveryCode
	// when the code collides with an active delivery.
	CreateDelivery(ctx context.Context, delivery *entity.Delivery) error

	// FindDeliveryByID retrieves a delivery by its unique ID, with user and
	// rider projections populated.
	FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// FindDeliveryByCode retrieves the most recent delivery carrying the given
	// 6-digit code. Codes are only unique among non-delivered deliveries.
	FindDeliveryByCode(ctx context.Context, code int) (*entity.Delivery, error)

	// FindDeliveriesByUser retrieves all deliveries owned by a user, newest first.
	FindDeliveriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Delivery, error)

	// FindOpenDeliveriesByLandmark retrieves unassigned deliveries tagged with
	// the given landmark, newest first.
	FindOpenDeliveriesByLandmark(ctx context.Context, landmark string) ([]*entity.Delivery, error)

	// AssignRider sets rider_id, guarded by rider_id IS NULL AND
	// is_delivered = false. Reports ErrRiderAlreadyAssigned when the rider slot
	// is taken, ErrDeliveryAlreadyDelivered when the delivery is terminal, and
	// ErrDeliveryNotFound when the delivery is absent.
	AssignRider(ctx context.Context, id, riderID uuid.UUID) error

	// MarkPickedUp sets is_pickedup and the pending status, guarded by
	// rider_id = riderID AND is_pickedup = false AND is_delivered = false.
	// Reports ErrDeliveryNotAssigned when the rider guard fails and
	// ErrDeliveryAlreadyDelivered when the delivery is terminal.
	MarkPickedUp(ctx context.Context, id, riderID uuid.UUID) error

	// MarkDelivered sets is_delivered and the delivered status, guarded by
	// is_delivered = false. Reports ErrDeliveryAlreadyDelivered when the
	// delivery is already terminal.
	MarkDelivered(ctx context.Context, id uuid.UUID) error

	// DeleteDelivery removes a delivery by its ID (soft delete).
	DeleteDelivery(ctx context.Context, id uuid.UUID) error
}
