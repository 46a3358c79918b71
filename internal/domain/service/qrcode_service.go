package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for profile share QR codes
type QRCodeService interface {
	// GenerateProfileQR generates a PNG QR code that identifies a profile
	GenerateProfileQR(profileID uuid.UUID, username string) ([]byte, error)

	// ParseProfileQR parses scanned QR code data and returns the profile ID
	ParseProfileQR(qrData string) (uuid.UUID, error)
}
