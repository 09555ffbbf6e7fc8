package comment

import (
	"Share-Recipe-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		GetCommentsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Comment, error)
		GetCommentByID(ctx context.Context, id uint) (*entities.Comment, error)
		CreateComment(ctx context.Context, comment *entities.Comment) error
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) GetCommentsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id uint) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
