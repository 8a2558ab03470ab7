package entity

import (
	"time"

	"github.com/google/uuid"
)

// RiderStatus represents a rider's availability for dispatch.
type RiderStatus string

const (
	// RiderStatusActive indicates the rider is on duty and dispatchable.
	RiderStatusActive RiderStatus = "active"
	// RiderStatusInactive indicates the rider is off duty.
	RiderStatusInactive RiderStatus = "inactive"
)

// String returns the string representation of the RiderStatus.
func (s RiderStatus) String() string {
	return string(s)
}

// Valid checks if the RiderStatus is a valid value.
func (s RiderStatus) Valid() bool {
	switch s {
	case RiderStatusActive, RiderStatusInactive:
		return true
	default:
		return false
	}
}

// Rider represents a delivery agent. The dispatch core treats position, status
// and device token as read-only; they are mutated by rider-facing flows
// (location ping, profile updates) outside the lifecycle manager.
type Rider struct {
	ID             uuid.UUID   `json:"id"`               // The Global Unique Identifier (GUID) for the rider.
	Name           string      `json:"name"`             // Display name.
	Email          string      `json:"email"`            // Contact email, target of job-offer mails.
	Phone          string      `json:"phone"`            // Contact phone, target of job-offer SMS.
	OperatingAreas []string    `json:"operating_areas"`  // Area tags the rider serves; matched against delivery landmarks.
	Position       *Coordinate `json:"current_position"` // Last reported location. Nil until the first ping.
	Status         RiderStatus `json:"status"`           // Active riders are dispatchable.
	IsVerified     bool        `json:"is_verified"`      // Set by an admin after document checks.
	DeviceToken    *string     `json:"device_token"`     // FCM token for push notifications. Nil when the app never registered one.
	CreatedAt      time.Time   `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt      time.Time   `json:"updated_at"`       // Timestamp of the last modification.
}

// Eligible reports whether the rider qualifies for nearest-match selection:
// active, verified, and with a known current position.
func (r *Rider) Eligible() bool {
	return r.Status == RiderStatusActive && r.IsVerified && r.Position != nil
}

// ServesArea reports whether the rider's operating areas contain the given landmark.
func (r *Rider) ServesArea(landmark string) bool {
	for _, area := range r.OperatingAreas {
		if area == landmark {
			return true
		}
	}

	return false
}
