package usecase

import (
	"fmt"
	"image/color"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"qrstudio/internal/domain/service"
	"qrstudio/pkg/errors"
)

const (
	defaultQRSize      = 256
	minSymbolSize      = 64
	maxSymbolSize      = 1024
	defaultBarcodeW    = 256
	defaultBarcodeH    = 96
	maxBarcodeWidth    = 1024
	maxBarcodeHeight   = 512
	defaultRecoveryLvl = "M"
)

type CodeUseCase struct {
	symbology *service.SymbologyService
}

func NewCodeUseCase(symbology *service.SymbologyService) *CodeUseCase {
	return &CodeUseCase{
		symbology: symbology,
	}
}

type QRInput struct {
	Text       string
	Size       int
	Level      string
	Foreground string
	Background string
}

// GenerateQR renders a styled QR symbol as PNG bytes.
func (uc *CodeUseCase) GenerateQR(input QRInput) ([]byte, error) {
	size := clampSize(input.Size, defaultQRSize, minSymbolSize, maxSymbolSize)

	level, err := parseRecoveryLevel(input.Level)
	if err != nil {
		return nil, err
	}

	foreground, err := parseHexColor(input.Foreground, color.RGBA{A: 0xff})
	if err != nil {
		return nil, err
	}
	background, err := parseHexColor(input.Background, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	if err != nil {
		return nil, err
	}

	return uc.symbology.EncodeQR(input.Text, size, level, foreground, background)
}

type BarcodeInput struct {
	Text   string
	Format string
	Width  int
	Height int
}

// GenerateBarcode renders a linear barcode in the requested symbology.
func (uc *CodeUseCase) GenerateBarcode(input BarcodeInput) ([]byte, error) {
	width := clampSize(input.Width, defaultBarcodeW, minSymbolSize, maxBarcodeWidth)
	height := clampSize(input.Height, defaultBarcodeH, 32, maxBarcodeHeight)

	switch strings.ToLower(input.Format) {
	case "code128":
		return uc.symbology.EncodeCode128(input.Text, width, height)
	case "ean13", "ean8":
		return uc.symbology.EncodeEAN(input.Text, width, height)
	default:
		return nil, errors.BadRequest(fmt.Sprintf("Unsupported barcode format %q", input.Format), nil)
	}
}

type MatrixInput struct {
	Text string
	Size int
}

func (uc *CodeUseCase) GenerateDataMatrix(input MatrixInput) ([]byte, error) {
	size := clampSize(input.Size, defaultQRSize, minSymbolSize, maxSymbolSize)
	return uc.symbology.EncodeDataMatrix(input.Text, size)
}

func (uc *CodeUseCase) GenerateAztec(input MatrixInput) ([]byte, error) {
	size := clampSize(input.Size, defaultQRSize, minSymbolSize, maxSymbolSize)
	return uc.symbology.EncodeAztec(input.Text, size)
}

func clampSize(size, fallback, min, max int) int {
	if size == 0 {
		return fallback
	}
	if size < min {
		return min
	}
	if size > max {
		return max
	}
	return size
}

func parseRecoveryLevel(level string) (qrcode.RecoveryLevel, error) {
	if level == "" {
		level = defaultRecoveryLvl
	}
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low, nil
	case "M":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	default:
		return 0, errors.BadRequest("Error correction level must be one of L, M, Q, H", nil)
	}
}

// parseHexColor accepts #RRGGBB; an empty value falls back to the default
// module color.
func parseHexColor(s string, fallback color.RGBA) (color.RGBA, error) {
	if s == "" {
		return fallback, nil
	}

	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, errors.BadRequest("Colors must be hex values like #1a2b3c", nil)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, errors.BadRequest("Colors must be hex values like #1a2b3c", nil)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
