package handler

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/usecase"
	"qrstudio/pkg/errors"
	"qrstudio/pkg/response"
)

type TicketHandler struct {
	ticketUseCase *usecase.TicketUseCase
}

func NewTicketHandler(ticketUseCase *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{
		ticketUseCase: ticketUseCase,
	}
}

type createTicketRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Category    string `json:"category" validate:"required,oneof=bug feature question account other"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

func (h *TicketHandler) CreateTicket(c echo.Context) error {
	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.ticketUseCase.Create(c.Request().Context(), usecase.CreateTicketInput{
		Name:        req.Name,
		Email:       req.Email,
		Category:    req.Category,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, ticket)
}

// GetTicket lets a submitter check progress by the ticket id they were
// given on creation.
func (h *TicketHandler) GetTicket(c echo.Context) error {
	ticket, err := h.ticketUseCase.GetByID(c.Request().Context(), c.Param("ticketId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ticket)
}

func (h *TicketHandler) ListTickets(c echo.Context) error {
	tickets, err := h.ticketUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, tickets)
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress waiting_user resolved closed"`
}

func (h *TicketHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.ticketUseCase.SetStatus(c.Request().Context(), c.Param("ticketId"), entity.TicketStatus(req.Status))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ticket)
}

type addMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// AddUserMessage appends to the thread on behalf of the submitter.
func (h *TicketHandler) AddUserMessage(c echo.Context) error {
	return h.addMessage(c, entity.TicketAuthorUser)
}

// AddAdminMessage appends an operator reply; non-terminal tickets move to
// in_progress.
func (h *TicketHandler) AddAdminMessage(c echo.Context) error {
	return h.addMessage(c, entity.TicketAuthorAdmin)
}

func (h *TicketHandler) addMessage(c echo.Context, author string) error {
	var req addMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.ticketUseCase.AddMessage(c.Request().Context(), c.Param("ticketId"), author, req.Message)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ticket)
}

func (h *TicketHandler) DeleteTicket(c echo.Context) error {
	if err := h.ticketUseCase.Delete(c.Request().Context(), c.Param("ticketId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}
