// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the lifecycle status of a delivery.
type DeliveryStatus string

const (
	// DeliveryStatusPlaced indicates a freshly created delivery awaiting a rider.
	DeliveryStatusPlaced DeliveryStatus = "placed"
	// DeliveryStatusPending indicates the package has been picked up and is in transit.
	DeliveryStatusPending DeliveryStatus = "pending"
	// DeliveryStatusDelivered indicates the package reached its destination. Terminal.
	DeliveryStatusDelivered DeliveryStatus = "delivered"
)

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// Valid checks if the DeliveryStatus is a valid value.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPlaced, DeliveryStatusPending, DeliveryStatusDelivered:
		return true
	default:
		return false
	}
}

// Delivery represents one shipment request, tracked from creation to confirmed drop-off.
// It is the central aggregate of the dispatch core: owned by exactly one requesting
// user and assigned to at most one rider at a time.
type Delivery struct {
	ID               uuid.UUID      `json:"id"`                // The Global Unique Identifier (GUID) for the delivery.
	Code             int            `json:"delivery_code"`     // Random 6-digit confirmation token, unique across active deliveries.
	UserID           uuid.UUID      `json:"user_id"`           // The requesting user who owns this delivery. Immutable.
	RiderID          *uuid.UUID     `json:"rider_id"`          // The assigned rider. Nil until a rider accepts.
	PackageName      string         `json:"package_name"`      // Short descriptor of the package contents.
	Phone            string         `json:"phone"`             // Contact phone for this shipment.
	PickupLocation   string         `json:"pickup_location"`   // Free-text pickup address.
	DeliveryLocation string         `json:"delivery_location"` // Free-text destination address.
	Pickup           *Coordinate    `json:"pickup"`            // Pickup geocoordinate. Nil when the client supplied none.
	Dropoff          *Coordinate    `json:"dropoff"`           // Destination geocoordinate. Nil when the client supplied none.
	EstimatedPrice   float64        `json:"estimated_price"`   // Quoted price for the delivery.
	ImageURL         string         `json:"image_url"`         // Reference to the stored package image.
	Landmark         string         `json:"landmark"`          // Area tag used to match riders by operating area.
	IsPickedUp       bool           `json:"is_pickedup"`       // Set once by the assigned rider.
	IsDelivered      bool           `json:"is_delivered"`      // Set once on confirmation. Terminal.
	Status           DeliveryStatus `json:"status"`            // Coarse status mirror of the two flags.
	User             *User          `json:"user,omitempty"`    // Denormalized owner projection for responses.
	Rider            *Rider         `json:"rider,omitempty"`   // Denormalized rider projection for responses.
	CreatedAt        time.Time      `json:"created_at"`        // Timestamp of when this record was created.
	UpdatedAt        time.Time      `json:"updated_at"`        // Timestamp of the last modification.
}

// Coordinate is a geographic point in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid checks if the Coordinate is a real point on the globe: finite values
// with latitude in [-90, 90] and longitude in [-180, 180]. NaN and infinite
// components are rejected.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Assigned reports whether a rider currently holds this delivery.
func (d *Delivery) Assigned() bool {
	return d.RiderID != nil
}

// Terminal reports whether the delivery reached its final state.
func (d *Delivery) Terminal() bool {
	return d.IsDelivered
}
