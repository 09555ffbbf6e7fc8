package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitFeedback = "feedback submitted successfully"
	MessageSuccessGetFeedback    = "success get feedback"

	MessageFailedSubmitFeedback = "failed to submit feedback"
	MessageFailedGetFeedback    = "failed to get feedback"

	ErrEmptyFeedbackMessage = errors.New("feedback message is required")
)

type (
	FeedbackCreateRequest struct {
		Email   string `json:"email" validate:"required,email"`
		Message string `json:"message" validate:"required"`
	}

	FeedbackResponse struct {
		ID        uint      `json:"id"`
		Email     string    `json:"email"`
		Message   string    `json:"message"`
		CreatedAt time.Time `json:"created_at"`
	}
)
