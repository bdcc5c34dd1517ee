package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"qrstudio/internal/usecase"
	"qrstudio/pkg/errors"
	"qrstudio/pkg/response"
)

type CodeHandler struct {
	codeUseCase *usecase.CodeUseCase
}

func NewCodeHandler(codeUseCase *usecase.CodeUseCase) *CodeHandler {
	return &CodeHandler{
		codeUseCase: codeUseCase,
	}
}

type qrRequest struct {
	Text       string `json:"text" validate:"required"`
	Size       int    `json:"size" validate:"omitempty,min=64,max=1024"`
	Level      string `json:"level" validate:"omitempty,oneof=L M Q H"`
	Foreground string `json:"foreground" validate:"omitempty,hexcolor"`
	Background string `json:"background" validate:"omitempty,hexcolor"`
}

func (h *CodeHandler) GenerateQR(c echo.Context) error {
	var req qrRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	data, err := h.codeUseCase.GenerateQR(usecase.QRInput{
		Text:       req.Text,
		Size:       req.Size,
		Level:      req.Level,
		Foreground: req.Foreground,
		Background: req.Background,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", data)
}

type barcodeRequest struct {
	Text   string `json:"text" validate:"required"`
	Format string `json:"format" validate:"required,oneof=code128 ean13 ean8"`
	Width  int    `json:"width" validate:"omitempty,min=64,max=1024"`
	Height int    `json:"height" validate:"omitempty,min=32,max=512"`
}

func (h *CodeHandler) GenerateBarcode(c echo.Context) error {
	var req barcodeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	data, err := h.codeUseCase.GenerateBarcode(usecase.BarcodeInput{
		Text:   req.Text,
		Format: req.Format,
		Width:  req.Width,
		Height: req.Height,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", data)
}

type matrixRequest struct {
	Text string `json:"text" validate:"required"`
	Size int    `json:"size" validate:"omitempty,min=64,max=1024"`
}

func (h *CodeHandler) GenerateDataMatrix(c echo.Context) error {
	return h.generateMatrix(c, h.codeUseCase.GenerateDataMatrix)
}

func (h *CodeHandler) GenerateAztec(c echo.Context) error {
	return h.generateMatrix(c, h.codeUseCase.GenerateAztec)
}

func (h *CodeHandler) generateMatrix(c echo.Context, generate func(usecase.MatrixInput) ([]byte, error)) error {
	var req matrixRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	data, err := generate(usecase.MatrixInput{Text: req.Text, Size: req.Size})
	if err != nil {
		return response.Error(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", data)
}
