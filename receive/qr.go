package receive

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the PNG edge length in pixels
const DefaultQRSize = 256

var (
	qrDark  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	qrLight = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

func newQRCode(text string) (*qrcode.QRCode, error) {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	qr.ForegroundColor = qrDark
	qr.BackgroundColor = qrLight
	return qr, nil
}

// QRCodePNG renders text as a PNG QR code
func QRCodePNG(text string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}

	qr, err := newQRCode(text)
	if err != nil {
		return nil, err
	}

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

// GenerateQRCode generates QR code of text in base64
func GenerateQRCode(text string, size int) (string, error) {
	png, err := QRCodePNG(text, size)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// QRCodeTerminal renders text as a QR code made of half-block characters,
// two modules per character row
func QRCodeTerminal(text string) (string, error) {
	qr, err := newQRCode(text)
	if err != nil {
		return "", err
	}

	bitmap := qr.Bitmap()
	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bottom := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune(' ')
			case top:
				sb.WriteRune('▄')
			case bottom:
				sb.WriteRune('▀')
			default:
				sb.WriteRune('█')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
