package feedback

import (
	"Share-Recipe-Backend/domain"
	"Share-Recipe-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedbackRepo struct {
	feedback []*entities.Feedback
	nextID   uint

	lastLimit  int
	lastOffset int
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{nextID: 1}
}

func (f *fakeFeedbackRepo) CreateFeedback(_ context.Context, feedback *entities.Feedback) error {
	feedback.ID = f.nextID
	f.nextID++
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	stored := *feedback
	f.feedback = append(f.feedback, &stored)
	return nil
}

func (f *fakeFeedbackRepo) GetFeedback(_ context.Context, limit, offset int) ([]*entities.Feedback, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	if offset >= len(f.feedback) {
		return nil, nil
	}
	out := f.feedback[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestSubmitFeedback(t *testing.T) {
	repo := newFakeFeedbackRepo()
	service := NewFeedbackService(repo)

	res, err := service.SubmitFeedback(context.Background(), domain.FeedbackCreateRequest{
		Email:   "visitor@example.com",
		Message: "  love the ingredient search  ",
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, "visitor@example.com", res.Email)
	assert.Equal(t, "love the ingredient search", res.Message)
}

func TestSubmitFeedback_EmptyMessage(t *testing.T) {
	service := NewFeedbackService(newFakeFeedbackRepo())

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := service.SubmitFeedback(context.Background(), domain.FeedbackCreateRequest{
			Email:   "visitor@example.com",
			Message: message,
		})
		assert.ErrorIs(t, err, domain.ErrEmptyFeedbackMessage, "message %q", message)
	}
}

func TestListFeedback_ClampsLimitAndOffset(t *testing.T) {
	repo := newFakeFeedbackRepo()
	service := NewFeedbackService(repo)

	_, err := service.ListFeedback(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)

	_, err = service.ListFeedback(context.Background(), DefaultListLimit+1, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, repo.lastLimit)
}

func TestListFeedback_Pagination(t *testing.T) {
	repo := newFakeFeedbackRepo()
	service := NewFeedbackService(repo)

	for _, message := range []string{"first", "second", "third"} {
		_, err := service.SubmitFeedback(context.Background(), domain.FeedbackCreateRequest{
			Email:   "visitor@example.com",
			Message: message,
		})
		require.NoError(t, err)
	}

	res, err := service.ListFeedback(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "second", res[0].Message)
	assert.Equal(t, "third", res[1].Message)
}
