package service

import (
	"context"
)

// Delivery event types carried on the message queue. The notifier worker
// switches on these to decide who gets told what.
const (
	EventDeliveryCreated   = "delivery.created"
	EventRiderMatched      = "rider.matched"
	EventDeliveryAccepted  = "delivery.accepted"
	EventDeliveryPickedUp  = "delivery.pickedup"
	EventDeliveryConfirmed = "delivery.confirmed"
)

// DeliveryEvent represents a lifecycle event to be processed by the notifier worker
type DeliveryEvent struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	Type         string  `json:"type"`
	DeliveryID   string  `json:"delivery_id"`
	DeliveryCode int     `json:"delivery_code,omitempty"`
	UserID       string  `json:"user_id"`
	RiderID      string  `json:"rider_id,omitempty"`
	PackageName  string  `json:"package_name,omitempty"`
	Landmark     string  `json:"landmark,omitempty"`
	PickupPlace  string  `json:"pickup_place,omitempty"`
	DropoffPlace string  `json:"dropoff_place,omitempty"`
	Price        float64 `json:"price,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeliveryEvent publishes a delivery lifecycle event for async processing
	PublishDeliveryEvent(ctx context.Context, event *DeliveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
