package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// GeneratePNG returns PNG bytes of a QR code for the given text.
func GeneratePNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	// validate png decode
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		return nil, fmt.Errorf("validate qr png: %w", err)
	}
	return pngBytes, nil
}

// GenerateImage returns an image.Image for further composition.
func GenerateImage(text string, size int) (image.Image, error) {
	b, err := GeneratePNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
