package repository

import (
	"context"

	"qrstudio/internal/domain/entity"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	GetByID(ctx context.Context, id string) (*entity.SupportTicket, error)
	List(ctx context.Context) ([]*entity.SupportTicket, error)
	Update(ctx context.Context, ticket *entity.SupportTicket) error
	Delete(ctx context.Context, id string) error
}
