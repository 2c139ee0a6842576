package qrcode

import (
	"encoding/json"

	"harvest/config"
	"harvest/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	deliveryQRType = "delivery"
	defaultQRSize  = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// DeliveryQRData is the payload encoded in a pickup QR code
type DeliveryQRData struct {
	OrderID string `json:"order_id"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultQRSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultQRSize
	}

	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDeliveryQR encodes the order ID and plaintext pickup code as a PNG
func (s *qrcodeService) GenerateDeliveryQR(orderID uuid.UUID, code string) ([]byte, error) {
	if code == "" {
		return nil, errors.New("pickup code is required")
	}

	jsonData, err := json.Marshal(DeliveryQRData{
		OrderID: orderID.String(),
		Code:    code,
		Type:    deliveryQRType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseDeliveryQR parses scanned QR text and returns the order ID and pickup code
func (s *qrcodeService) ParseDeliveryQR(qrData string) (uuid.UUID, string, error) {
	var data DeliveryQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != deliveryQRType {
		return uuid.Nil, "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.Code == "" {
		return uuid.Nil, "", errors.New("QR code carries no pickup code")
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, data.Code, nil
}
