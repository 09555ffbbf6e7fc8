// Package comment owns the threaded discussion under a recipe. Comments
// come back as one flat, chronologically ordered list; arranging replies
// into a tree is left to the client.
package comment

import (
	"Share-Recipe-Backend/domain"
	"Share-Recipe-Backend/entities"
	"Share-Recipe-Backend/pkg/recipe"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	CommentService interface {
		GetComments(ctx context.Context, recipeID uint) ([]domain.CommentResponse, error)
		AddComment(ctx context.Context, recipeID uint, req domain.CommentCreateRequest, userID uint) (domain.CommentResponse, error)
	}

	commentService struct {
		commentRepository CommentRepository
		recipeRepository  recipe.RecipeRepository
	}
)

func NewCommentService(commentRepository CommentRepository, recipeRepository recipe.RecipeRepository) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		recipeRepository:  recipeRepository,
	}
}

func toCommentResponse(comment *entities.Comment) domain.CommentResponse {
	res := domain.CommentResponse{
		ID:        comment.ID,
		RecipeID:  comment.RecipeID,
		UserID:    comment.UserID,
		ParentID:  comment.ParentID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	// Author username joins in at read time, never stored on the comment,
	// so a renamed user shows their current name everywhere.
	if comment.User != nil {
		res.Username = comment.User.Username
	}
	return res
}

func (s *commentService) GetComments(ctx context.Context, recipeID uint) ([]domain.CommentResponse, error) {
	comments, err := s.commentRepository.GetCommentsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentResponse(comment))
	}
	return result, nil
}

func (s *commentService) AddComment(ctx context.Context, recipeID uint, req domain.CommentCreateRequest, userID uint) (domain.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.CommentResponse{}, domain.ErrEmptyCommentContent
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CommentResponse{}, err
	}

	// A reply must point at an existing comment on the same recipe.
	if req.ParentID != nil {
		parent, err := s.commentRepository.GetCommentByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CommentResponse{}, domain.ErrParentCommentInvalid
			}
			return domain.CommentResponse{}, err
		}
		if parent.RecipeID != recipeID {
			return domain.CommentResponse{}, domain.ErrParentCommentInvalid
		}
	}

	comment := &entities.Comment{
		RecipeID: recipeID,
		UserID:   userID,
		ParentID: req.ParentID,
		Content:  content,
	}
	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	created, err := s.commentRepository.GetCommentByID(ctx, comment.ID)
	if err != nil {
		return toCommentResponse(comment), nil
	}
	return toCommentResponse(created), nil
}
