package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDeliveryQR generates a QR code carrying an order's pickup code
	GenerateDeliveryQR(orderID uuid.UUID, code string) ([]byte, error)

	// ParseDeliveryQR parses QR code data and returns the order ID and pickup code
	ParseDeliveryQR(qrData string) (uuid.UUID, string, error)
}
