package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrstudio/internal/adapter/repository"
	"qrstudio/internal/domain/entity"
	"qrstudio/internal/infrastructure/localstore"
	"qrstudio/pkg/errors"
)

func newReviewUseCase(t *testing.T) *ReviewUseCase {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	return NewReviewUseCase(repository.NewLocalstoreReviewRepository(store))
}

func TestSubmitReview(t *testing.T) {
	uc := newReviewUseCase(t)
	ctx := context.Background()

	review, err := uc.Submit(ctx, SubmitReviewInput{
		Name:    "Ann",
		Rating:  5,
		Comment: "Great",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, review.ID)
	assert.Equal(t, entity.ReviewStatusPending, review.Status)
	assert.False(t, review.Date.IsZero())

	pending, err := uc.ListByStatus(ctx, entity.ReviewStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, review.ID, pending[0].ID)
}

func TestSubmitReviewRefusesInvalidInput(t *testing.T) {
	uc := newReviewUseCase(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input SubmitReviewInput
	}{
		{"blank name", SubmitReviewInput{Name: "   ", Rating: 4, Comment: "ok"}},
		{"blank comment", SubmitReviewInput{Name: "Ann", Rating: 4, Comment: " "}},
		{"rating too low", SubmitReviewInput{Name: "Ann", Rating: 0, Comment: "ok"}},
		{"rating too high", SubmitReviewInput{Name: "Ann", Rating: 6, Comment: "ok"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Submit(ctx, tc.input)
			assert.True(t, errors.Is(err, "BAD_REQUEST"))
		})
	}

	pending, err := uc.ListByStatus(ctx, entity.ReviewStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApproveMovesReviewOutOfPending(t *testing.T) {
	uc := newReviewUseCase(t)
	ctx := context.Background()

	review, err := uc.Submit(ctx, SubmitReviewInput{Name: "Ann", Rating: 5, Comment: "Great"})
	require.NoError(t, err)

	approved, err := uc.Approve(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusApproved, approved.Status)

	approvedList, err := uc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approvedList, 1)
	assert.Equal(t, review.ID, approvedList[0].ID)

	pending, err := uc.ListByStatus(ctx, entity.ReviewStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestModerationIsIdempotent(t *testing.T) {
	uc := newReviewUseCase(t)
	ctx := context.Background()

	review, err := uc.Submit(ctx, SubmitReviewInput{Name: "Ann", Rating: 5, Comment: "Great"})
	require.NoError(t, err)

	_, err = uc.Approve(ctx, review.ID)
	require.NoError(t, err)

	// A second moderation action from another stale admin view keeps the
	// current state.
	rejected, err := uc.Reject(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusApproved, rejected.Status)
}

func TestModerateUnknownReview(t *testing.T) {
	uc := newReviewUseCase(t)

	_, err := uc.Approve(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestAdminReplyLifecycle(t *testing.T) {
	uc := newReviewUseCase(t)
	ctx := context.Background()

	review, err := uc.Submit(ctx, SubmitReviewInput{Name: "Ann", Rating: 5, Comment: "Great"})
	require.NoError(t, err)

	// Replies are only allowed on approved reviews.
	_, err = uc.AddReply(ctx, review.ID, "Thanks!")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Approve(ctx, review.ID)
	require.NoError(t, err)

	// Blank reply text is refused and leaves the review untouched.
	_, err = uc.AddReply(ctx, review.ID, "   ")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	replied, err := uc.AddReply(ctx, review.ID, "Thanks!")
	require.NoError(t, err)
	assert.Equal(t, "Thanks!", replied.AdminReply)
	require.NotNil(t, replied.AdminReplyDate)
	assert.False(t, replied.AdminReplyDate.IsZero())

	cleared, err := uc.RemoveReply(ctx, review.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.AdminReply)
	assert.Nil(t, cleared.AdminReplyDate)
}

func TestDeleteReview(t *testing.T) {
	uc := newReviewUseCase(t)
	ctx := context.Background()

	review, err := uc.Submit(ctx, SubmitReviewInput{Name: "Ann", Rating: 5, Comment: "Great"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, review.ID))

	pending, err := uc.ListByStatus(ctx, entity.ReviewStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.True(t, errors.Is(uc.Delete(ctx, review.ID), "NOT_FOUND"))
}

func TestListNewestFirst(t *testing.T) {
	uc := newReviewUseCase(t)
	ctx := context.Background()

	first, err := uc.Submit(ctx, SubmitReviewInput{Name: "First", Rating: 4, Comment: "older"})
	require.NoError(t, err)
	second, err := uc.Submit(ctx, SubmitReviewInput{Name: "Second", Rating: 5, Comment: "newer"})
	require.NoError(t, err)

	pending, err := uc.ListByStatus(ctx, entity.ReviewStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, first.ID, pending[1].ID)
}
