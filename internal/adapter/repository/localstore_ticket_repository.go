package repository

import (
	"context"
	"sort"
	"sync"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/repository"
	"qrstudio/internal/infrastructure/localstore"
	"qrstudio/pkg/errors"
)

const ticketsKey = "support_tickets"

type localstoreTicketRepository struct {
	store *localstore.Store
	mu    sync.Mutex
}

func NewLocalstoreTicketRepository(store *localstore.Store) repository.TicketRepository {
	return &localstoreTicketRepository{
		store: store,
	}
}

func (r *localstoreTicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tickets, err := r.load()
	if err != nil {
		return err
	}

	tickets = append(tickets, *ticket)
	return r.save(tickets)
}

func (r *localstoreTicketRepository) GetByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tickets, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range tickets {
		if tickets[i].ID == id {
			ticket := tickets[i]
			return &ticket, nil
		}
	}
	return nil, errors.NotFound("Ticket", nil)
}

func (r *localstoreTicketRepository) List(ctx context.Context) ([]*entity.SupportTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tickets, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]*entity.SupportTicket, 0, len(tickets))
	for i := range tickets {
		ticket := tickets[i]
		result = append(result, &ticket)
	}

	// Most recently touched first
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (r *localstoreTicketRepository) Update(ctx context.Context, ticket *entity.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tickets, err := r.load()
	if err != nil {
		return err
	}

	for i := range tickets {
		if tickets[i].ID == ticket.ID {
			tickets[i] = *ticket
			return r.save(tickets)
		}
	}
	return errors.NotFound("Ticket", nil)
}

func (r *localstoreTicketRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tickets, err := r.load()
	if err != nil {
		return err
	}

	for i := range tickets {
		if tickets[i].ID == id {
			tickets = append(tickets[:i], tickets[i+1:]...)
			return r.save(tickets)
		}
	}
	return errors.NotFound("Ticket", nil)
}

func (r *localstoreTicketRepository) load() ([]entity.SupportTicket, error) {
	var tickets []entity.SupportTicket
	if err := r.store.Get(ticketsKey, &tickets); err != nil {
		return nil, errors.Internal("Failed to load tickets", err)
	}
	return tickets, nil
}

func (r *localstoreTicketRepository) save(tickets []entity.SupportTicket) error {
	if err := r.store.Put(ticketsKey, tickets); err != nil {
		return errors.Internal("Failed to save tickets", err)
	}
	return nil
}
