package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/repository"
	"qrstudio/pkg/errors"
)

type TicketUseCase struct {
	ticketRepo repository.TicketRepository
}

func NewTicketUseCase(ticketRepo repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{
		ticketRepo: ticketRepo,
	}
}

type CreateTicketInput struct {
	Name        string
	Email       string
	Category    string
	Subject     string
	Description string
	Priority    string
}

// Create opens a new ticket in "new" status with an empty message thread.
func (uc *TicketUseCase) Create(ctx context.Context, input CreateTicketInput) (*entity.SupportTicket, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Category) == "" ||
		strings.TrimSpace(input.Subject) == "" ||
		strings.TrimSpace(input.Description) == "" {
		return nil, errors.BadRequest("All required fields must be filled in", nil)
	}

	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}

	now := time.Now()
	ticket := &entity.SupportTicket{
		ID:          generateTicketID(now),
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Category:    input.Category,
		Subject:     strings.TrimSpace(input.Subject),
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		Status:      entity.TicketStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
		Messages:    []entity.TicketMessage{},
	}

	if err := uc.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// generateTicketID builds the short human-readable identifier users quote
// in correspondence. It is derived from the timestamp and is not globally
// unique, which is acceptable for this volume.
func generateTicketID(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return "TK-" + ms[len(ms)-6:]
}

func (uc *TicketUseCase) GetByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	return uc.ticketRepo.GetByID(ctx, id)
}

// List returns all tickets, most recently updated first.
func (uc *TicketUseCase) List(ctx context.Context) ([]*entity.SupportTicket, error) {
	return uc.ticketRepo.List(ctx)
}

// SetStatus overwrites the ticket status. Any status is reachable from any
// other; there is deliberately no transition table.
func (uc *TicketUseCase) SetStatus(ctx context.Context, id string, status entity.TicketStatus) (*entity.SupportTicket, error) {
	switch status {
	case entity.TicketStatusNew, entity.TicketStatusInProgress, entity.TicketStatusWaitingUser,
		entity.TicketStatusResolved, entity.TicketStatusClosed:
	default:
		return nil, errors.BadRequest("Unknown ticket status", nil)
	}

	ticket, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket.Status = status
	ticket.UpdatedAt = time.Now()

	if err := uc.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// AddMessage appends a timestamped message to the thread. An admin message
// pulls a non-terminal ticket into in_progress; resolved and closed
// tickets keep their status.
func (uc *TicketUseCase) AddMessage(ctx context.Context, id, author, text string) (*entity.SupportTicket, error) {
	if author != entity.TicketAuthorUser && author != entity.TicketAuthorAdmin {
		return nil, errors.BadRequest("Unknown message author", nil)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.BadRequest("Message text is required", nil)
	}

	ticket, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket.Messages = append(ticket.Messages, entity.TicketMessage{
		ID:        uuid.New().String(),
		Author:    author,
		Message:   text,
		Timestamp: now,
	})

	if author == entity.TicketAuthorAdmin && !ticket.Status.Terminal() {
		ticket.Status = entity.TicketStatusInProgress
	}
	ticket.UpdatedAt = now

	if err := uc.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (uc *TicketUseCase) Delete(ctx context.Context, id string) error {
	return uc.ticketRepo.Delete(ctx, id)
}
