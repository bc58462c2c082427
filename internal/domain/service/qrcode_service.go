package service

// QRCodeService generates QR codes pointing at the public status page.
type QRCodeService interface {
	// GenerateStatusQR renders a PNG QR code for the given normalized document.
	GenerateStatusQR(document string) ([]byte, error)
}
