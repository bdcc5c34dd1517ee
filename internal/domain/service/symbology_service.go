package service

import (
	"bytes"
	"image/color"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/aztec"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/boombuler/barcode/ean"
	qrcode "github.com/skip2/go-qrcode"

	"qrstudio/pkg/errors"
)

// SymbologyService renders text into rasterized symbols. All encoding is
// delegated to the barcode libraries; this service only maps inputs onto
// their APIs and produces PNG bytes.
type SymbologyService struct{}

func NewSymbologyService() *SymbologyService {
	return &SymbologyService{}
}

// EncodeQR renders a QR symbol with the given pixel size, recovery level
// and module colors.
func (s *SymbologyService) EncodeQR(text string, size int, level qrcode.RecoveryLevel, foreground, background color.Color) ([]byte, error) {
	q, err := qrcode.New(text, level)
	if err != nil {
		return nil, errors.BadRequest("Content cannot be encoded as a QR code", err)
	}
	q.ForegroundColor = foreground
	q.BackgroundColor = background

	data, err := q.PNG(size)
	if err != nil {
		return nil, errors.Internal("Failed to render QR code", err)
	}
	return data, nil
}

// EncodeCode128 renders a CODE128 linear barcode scaled to width x height.
func (s *SymbologyService) EncodeCode128(text string, width, height int) ([]byte, error) {
	bc, err := code128.Encode(text)
	if err != nil {
		return nil, errors.BadRequest("Content cannot be encoded as CODE128", err)
	}
	return s.scaleToPNG(bc, width, height)
}

// EncodeEAN renders an EAN-8 or EAN-13 barcode; the library picks the
// variant from the digit count and validates the checksum.
func (s *SymbologyService) EncodeEAN(text string, width, height int) ([]byte, error) {
	bc, err := ean.Encode(text)
	if err != nil {
		return nil, errors.BadRequest("Content is not a valid EAN number", err)
	}
	return s.scaleToPNG(bc, width, height)
}

// EncodeDataMatrix renders a square DataMatrix symbol.
func (s *SymbologyService) EncodeDataMatrix(text string, size int) ([]byte, error) {
	bc, err := datamatrix.Encode(text)
	if err != nil {
		return nil, errors.BadRequest("Content cannot be encoded as DataMatrix", err)
	}
	return s.scaleToPNG(bc, size, size)
}

// EncodeAztec renders a square Aztec symbol with the library's default
// error correction.
func (s *SymbologyService) EncodeAztec(text string, size int) ([]byte, error) {
	bc, err := aztec.Encode([]byte(text), aztec.DEFAULT_EC_PERCENT, aztec.DEFAULT_LAYERS)
	if err != nil {
		return nil, errors.BadRequest("Content cannot be encoded as Aztec", err)
	}
	return s.scaleToPNG(bc, size, size)
}

func (s *SymbologyService) scaleToPNG(bc barcode.Barcode, width, height int) ([]byte, error) {
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, errors.BadRequest("Requested dimensions are too small for this symbol", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, errors.Internal("Failed to render symbol", err)
	}
	return buf.Bytes(), nil
}
