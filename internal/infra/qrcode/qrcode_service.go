// Package qrcode renders and parses the QR codes people scan to open each other's profile.
package qrcode

import (
	"encoding/json"

	"mutuals/config"
	"mutuals/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	profileType = "profile"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ProfileQRData is the JSON payload encoded in a profile QR code
type ProfileQRData struct {
	Type      string `json:"type"`
	ProfileID string `json:"profile_id"`
	Username  string `json:"username,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateProfileQR renders a PNG QR code pointing at the profile
func (s *qrcodeService) GenerateProfileQR(profileID uuid.UUID, username string) ([]byte, error) {
	jsonData, err := json.Marshal(ProfileQRData{
		Type:      profileType,
		ProfileID: profileID.String(),
		Username:  username,
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

// ParseProfileQR extracts the profile ID from scanned QR code data
func (s *qrcodeService) ParseProfileQR(qrData string) (uuid.UUID, error) {
	var data ProfileQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != profileType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	profileID, err := uuid.Parse(data.ProfileID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse profile ID")
	}

	return profileID, nil
}
