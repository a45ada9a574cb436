package qrcode

import (
	"encoding/json"
	"strings"

	"solarjuice/config"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const shopPayloadType = "shop"

// ErrInvalidPayload is returned when scanned content is not a shop QR code.
var ErrInvalidPayload = errors.New("invalid shop QR payload")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ShopPayload is the JSON content encoded in a shop QR code
type ShopPayload struct {
	ShopID string `json:"shop_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates the QR code service from configuration
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return NewQRCodeServiceWith(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeServiceWith creates a QR code service with explicit settings.
// Recognised levels are L, M, Q, H or low, medium, high, highest. Anything else means medium.
func NewQRCodeServiceWith(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShopQR renders a PNG encoding the shop payload
func (s *qrcodeService) GenerateShopQR(shopID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(ShopPayload{
		ShopID: shopID.String(),
		Type:   shopPayloadType,
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

// ParseShopQR returns the shop id from scanned QR content
func (s *qrcodeService) ParseShopQR(qrData string) (uuid.UUID, error) {
	var data ShopPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	if data.Type != shopPayloadType {
		return uuid.Nil, errors.Wrapf(ErrInvalidPayload, "unexpected type %q", data.Type)
	}

	shopID, err := uuid.Parse(data.ShopID)
	if err != nil {
		return uuid.Nil, errors.Wrapf(ErrInvalidPayload, "shop id: %v", err)
	}

	return shopID, nil
}
