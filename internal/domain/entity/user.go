package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the requesting party of a delivery. The dispatch core never mutates
// users; it reads denormalized projections for response payloads and
// notification targets only.
type User struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the user.
	Name        string    `json:"name"`         // Display name.
	Email       string    `json:"email"`        // Contact email.
	Phone       string    `json:"phone"`        // Contact phone, target of the delivery-code SMS.
	DeviceToken *string   `json:"device_token"` // FCM token for push notifications. Nil when the app never registered one.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this account was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}
