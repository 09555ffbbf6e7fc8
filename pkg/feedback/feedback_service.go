// Package feedback collects free-form messages from visitors. Submitting
// needs no account; reading the inbox does.
package feedback

import (
	"Share-Recipe-Backend/domain"
	"Share-Recipe-Backend/entities"
	"context"
	"strings"
)

const DefaultListLimit = 100

type (
	FeedbackService interface {
		SubmitFeedback(ctx context.Context, req domain.FeedbackCreateRequest) (domain.FeedbackResponse, error)
		ListFeedback(ctx context.Context, limit, offset int) ([]domain.FeedbackResponse, error)
	}

	feedbackService struct {
		feedbackRepository FeedbackRepository
	}
)

func NewFeedbackService(feedbackRepository FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepository: feedbackRepository}
}

func toFeedbackResponse(feedback *entities.Feedback) domain.FeedbackResponse {
	return domain.FeedbackResponse{
		ID:        feedback.ID,
		Email:     feedback.Email,
		Message:   feedback.Message,
		CreatedAt: feedback.CreatedAt,
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, req domain.FeedbackCreateRequest) (domain.FeedbackResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return domain.FeedbackResponse{}, domain.ErrEmptyFeedbackMessage
	}

	feedback := &entities.Feedback{
		Email:   req.Email,
		Message: message,
	}
	if err := s.feedbackRepository.CreateFeedback(ctx, feedback); err != nil {
		return domain.FeedbackResponse{}, err
	}
	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) ListFeedback(ctx context.Context, limit, offset int) ([]domain.FeedbackResponse, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	feedback, err := s.feedbackRepository.GetFeedback(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		result = append(result, toFeedbackResponse(f))
	}
	return result, nil
}
