package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetComments   = "success get comments"
	MessageSuccessCreateComment = "comment created successfully"

	MessageFailedGetComments   = "failed to get comments"
	MessageFailedCreateComment = "failed to create comment"

	ErrEmptyCommentContent  = errors.New("comment content is required")
	ErrParentCommentInvalid = errors.New("parent comment not found on this recipe")
)

type (
	CommentCreateRequest struct {
		Content  string `json:"content" validate:"required"`
		ParentID *uint  `json:"parent_id"`
	}

	CommentResponse struct {
		ID        uint      `json:"id"`
		RecipeID  uint      `json:"recipe_id"`
		UserID    uint      `json:"user_id"`
		ParentID  *uint     `json:"parent_id,omitempty"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
		Username  string    `json:"username,omitempty"`
	}
)
