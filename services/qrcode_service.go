// services/qrcode_service.go
package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode; injected so tests can stub the
// actual PNG generation.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// EventShareQR renders a PNG QR code pointing at an event's public
// detail page, for printed flyers and screens at the venue.
func EventShareQR(appURL string, eventID, size int, encode QRCodeEncoder) ([]byte, error) {
	if encode == nil {
		encode = qrcode.Encode
	}
	target := fmt.Sprintf("%s/events/%d", appURL, eventID)
	png, err := encode(target, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
