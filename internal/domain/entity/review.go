package entity

import (
	"time"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Review is a user-submitted rating and comment that goes through
// moderation before it is shown publicly.
type Review struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Rating         int          `json:"rating"` // 1-5
	Comment        string       `json:"comment"`
	Email          string       `json:"email,omitempty"`
	Date           time.Time    `json:"date"`
	Status         ReviewStatus `json:"status"`
	AdminReply     string       `json:"adminReply,omitempty"`
	AdminReplyDate *time.Time   `json:"adminReplyDate,omitempty"`
}
