package entity

import (
	"time"
)

type TicketStatus string

const (
	TicketStatusNew         TicketStatus = "new"
	TicketStatusInProgress  TicketStatus = "in_progress"
	TicketStatusWaitingUser TicketStatus = "waiting_user"
	TicketStatusResolved    TicketStatus = "resolved"
	TicketStatusClosed      TicketStatus = "closed"
)

// Terminal reports whether a ticket in this status is finished;
// admin replies no longer move it back to in_progress.
func (s TicketStatus) Terminal() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

const (
	TicketAuthorUser  = "user"
	TicketAuthorAdmin = "admin"
)

type TicketMessage struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"` // "user" or "admin"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SupportTicket is a support request tracked through a status lifecycle
// with an embedded message thread.
type SupportTicket struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Category    string          `json:"category"` // bug, feature, question, account, other
	Subject     string          `json:"subject"`
	Description string          `json:"description"`
	Priority    string          `json:"priority"` // low, medium, high, urgent
	Status      TicketStatus    `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Messages    []TicketMessage `json:"messages"`
}
