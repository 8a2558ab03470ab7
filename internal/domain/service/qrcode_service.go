package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateDeliveryCodeQR generates a QR code image encoding the 6-digit
	// delivery code, for the recipient to present at handoff.
	GenerateDeliveryCodeQR(code int) ([]byte, error)
}
