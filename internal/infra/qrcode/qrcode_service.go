// Package qrcode renders the status-page QR codes handed out at sign-up.
package qrcode

import (
	"fmt"
	"net/url"

	"empreende/config"
	"empreende/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}
	size := qrCfg.Size
	if size <= 0 {
		size = defaultQRSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch qrCfg.ErrorCorrectionLevel {
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
		baseURL:              qrCfg.BaseURL,
	}
}

// GenerateStatusQR renders a PNG QR code linking to the public status page
// pre-filled with the exhibitor's document.
func (s *qrcodeService) GenerateStatusQR(document string) ([]byte, error) {
	link := fmt.Sprintf("%s?documento=%s", s.baseURL, url.QueryEscape(document))

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
