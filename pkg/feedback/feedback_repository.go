package feedback

import (
	"Share-Recipe-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FeedbackRepository interface {
		CreateFeedback(ctx context.Context, feedback *entities.Feedback) error
		GetFeedback(ctx context.Context, limit, offset int) ([]*entities.Feedback, error)
	}

	feedbackRepository struct {
		db *gorm.DB
	}
)

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) GetFeedback(ctx context.Context, limit, offset int) ([]*entities.Feedback, error) {
	var feedback []*entities.Feedback
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
