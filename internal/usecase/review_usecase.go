package usecase

import (
	"context"
	"strings"
	"time"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/repository"
	"qrstudio/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
	}
}

type SubmitReviewInput struct {
	Name    string
	Rating  int
	Comment string
	Email   string
}

// Submit creates a new review in pending status. Invalid input is refused
// outright; nothing is stored.
func (uc *ReviewUseCase) Submit(ctx context.Context, input SubmitReviewInput) (*entity.Review, error) {
	name := strings.TrimSpace(input.Name)
	comment := strings.TrimSpace(input.Comment)

	if name == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}
	if comment == "" {
		return nil, errors.BadRequest("Comment is required", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	review := &entity.Review{
		Name:    name,
		Rating:  input.Rating,
		Comment: comment,
		Email:   strings.TrimSpace(input.Email),
		Date:    time.Now(),
		Status:  entity.ReviewStatusPending,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListApproved returns the publicly visible reviews, newest first.
func (uc *ReviewUseCase) ListApproved(ctx context.Context) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByStatus(ctx, entity.ReviewStatusApproved)
}

// ListByStatus is the admin view over any of the three moderation states.
func (uc *ReviewUseCase) ListByStatus(ctx context.Context, status entity.ReviewStatus) ([]*entity.Review, error) {
	switch status {
	case entity.ReviewStatusPending, entity.ReviewStatusApproved, entity.ReviewStatusRejected:
		return uc.reviewRepo.ListByStatus(ctx, status)
	default:
		return nil, errors.BadRequest("Unknown review status", nil)
	}
}

// Approve moves a pending review to approved. Approving a review that is
// no longer pending is an idempotent no-op.
func (uc *ReviewUseCase) Approve(ctx context.Context, id string) (*entity.Review, error) {
	return uc.moderate(ctx, id, entity.ReviewStatusApproved)
}

// Reject moves a pending review to rejected. Same idempotency rule as
// Approve.
func (uc *ReviewUseCase) Reject(ctx context.Context, id string) (*entity.Review, error) {
	return uc.moderate(ctx, id, entity.ReviewStatusRejected)
}

func (uc *ReviewUseCase) moderate(ctx context.Context, id string, target entity.ReviewStatus) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.Status != entity.ReviewStatusPending {
		// Another admin view already moderated it; keep the current state.
		return review, nil
	}

	review.Status = target
	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// AddReply attaches an admin reply to an approved review. Blank reply text
// is refused and leaves the review untouched.
func (uc *ReviewUseCase) AddReply(ctx context.Context, id, text string) (*entity.Review, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.BadRequest("Reply text is required", nil)
	}

	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.Status != entity.ReviewStatusApproved {
		return nil, errors.BadRequest("Only approved reviews can be replied to", nil)
	}

	now := time.Now()
	review.AdminReply = text
	review.AdminReplyDate = &now

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// RemoveReply clears the admin reply and its timestamp.
func (uc *ReviewUseCase) RemoveReply(ctx context.Context, id string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	review.AdminReply = ""
	review.AdminReplyDate = nil

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review from whichever state it is in. Irreversible.
func (uc *ReviewUseCase) Delete(ctx context.Context, id string) error {
	return uc.reviewRepo.Delete(ctx, id)
}
