package qrcode

import (
	"encoding/json"
	"testing"

	"mutuals/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			require.NotNil(t, service)

			qrBytes, err := service.GenerateProfileQR(uuid.New(), "alice")
			require.NoError(t, err)
			assert.Equal(t, pngMagic, qrBytes[:4])
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
	}))
}

func TestQRCodeService_ParseProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	profileID := uuid.New()

	valid, err := json.Marshal(ProfileQRData{Type: "profile", ProfileID: profileID.String(), Username: "alice"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(ProfileQRData{Type: "subscription", ProfileID: profileID.String()})
	require.NoError(t, err)
	badID, err := json.Marshal(ProfileQRData{Type: "profile", ProfileID: "not-a-valid-uuid"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "valid", data: string(valid)},
		{name: "invalid json", data: "invalid json", wantErr: "failed to unmarshal QR code data"},
		{name: "invalid type", data: string(wrongType), wantErr: "invalid QR code type"},
		{name: "invalid uuid", data: string(badID), wantErr: "failed to parse profile ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := service.ParseProfileQR(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, profileID, parsed)
		})
	}
}
