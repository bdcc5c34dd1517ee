package service

import (
	"image/color"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrstudio/pkg/errors"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.Greater(t, len(data), 4)
	assert.Equal(t, pngMagic, data[:4])
}

func TestEncodeQR(t *testing.T) {
	svc := NewSymbologyService()

	data, err := svc.EncodeQR("https://example.com", 256, qrcode.Medium, color.Black, color.White)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestEncodeQRCustomColors(t *testing.T) {
	svc := NewSymbologyService()

	fg := color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}
	bg := color.RGBA{R: 0xff, G: 0xee, B: 0xdd, A: 0xff}
	data, err := svc.EncodeQR("colored", 128, qrcode.Highest, fg, bg)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestEncodeQREmptyContent(t *testing.T) {
	svc := NewSymbologyService()

	_, err := svc.EncodeQR("", 256, qrcode.Medium, color.Black, color.White)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestEncodeCode128(t *testing.T) {
	svc := NewSymbologyService()

	data, err := svc.EncodeCode128("QR-2026-0001", 256, 96)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestEncodeEAN(t *testing.T) {
	svc := NewSymbologyService()

	// 13 digits with a valid checksum.
	data, err := svc.EncodeEAN("4006381333931", 256, 96)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestEncodeEANRejectsBadChecksum(t *testing.T) {
	svc := NewSymbologyService()

	_, err := svc.EncodeEAN("4006381333939", 256, 96)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestEncodeEANRejectsNonNumeric(t *testing.T) {
	svc := NewSymbologyService()

	_, err := svc.EncodeEAN("not-a-number", 256, 96)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestEncodeDataMatrix(t *testing.T) {
	svc := NewSymbologyService()

	data, err := svc.EncodeDataMatrix("serial 0042", 256)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestEncodeAztec(t *testing.T) {
	svc := NewSymbologyService()

	data, err := svc.EncodeAztec("boarding pass", 256)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestScaleTooSmallForSymbol(t *testing.T) {
	svc := NewSymbologyService()

	_, err := svc.EncodeDataMatrix("a payload that will not fit into two pixels", 2)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
