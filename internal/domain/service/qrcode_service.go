package service

import (
	"github.com/google/uuid"
)

// QRCodeService encodes shop ids into scannable codes.
type QRCodeService interface {
	// GenerateShopQR returns a PNG image pointing at the shop.
	GenerateShopQR(shopID uuid.UUID) ([]byte, error)

	// ParseShopQR extracts the shop id from scanned QR content.
	ParseShopQR(qrData string) (uuid.UUID, error)
}
