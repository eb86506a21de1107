package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePassQR renders a signed pass credential as a PNG QR code
	// suitable for scanning at the door.
	GeneratePassQR(passToken string) ([]byte, error)
}
