package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateShopQR(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		level string
	}{
		{"Small low", 128, "L"},
		{"Medium default", 256, "medium"},
		{"Large highest", 512, "highest"},
		{"Unknown level", 256, "bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeServiceWith(tt.size, tt.level)

			pngBytes, err := svc.GenerateShopQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_ParseShopQR(t *testing.T) {
	svc := NewQRCodeServiceWith(256, "M")
	shopID := uuid.New()

	payload, err := json.Marshal(ShopPayload{ShopID: shopID.String(), Type: "shop"})
	require.NoError(t, err)

	got, err := svc.ParseShopQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, shopID, got)
}

func TestQRCodeService_ParseShopQR_Invalid(t *testing.T) {
	svc := NewQRCodeServiceWith(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"Not JSON", "hello"},
		{"Wrong type", `{"shop_id":"` + uuid.NewString() + `","type":"subscription"}`},
		{"Bad id", `{"shop_id":"nope","type":"shop"}`},
		{"Empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.ParseShopQR(tt.data)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
