package social

import (
	"Share-Recipe-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SocialRepository interface {
		CountLikes(ctx context.Context, recipeID uint) (int64, error)
		HasLiked(ctx context.Context, recipeID, userID uint) (bool, error)
		HasSaved(ctx context.Context, recipeID, userID uint) (bool, error)
		GetUsername(ctx context.Context, userID uint) (string, error)
		GetRecipeIngredients(ctx context.Context, recipeID uint) ([]*entities.Ingredient, error)
		// Snapshot runs fn against a repository view bound to one
		// transaction, so every read inside observes the same point in time.
		Snapshot(ctx context.Context, fn func(repo SocialRepository) error) error
	}

	socialRepository struct {
		db *gorm.DB
	}
)

func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) CountLikes(ctx context.Context, recipeID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *socialRepository) HasLiked(ctx context.Context, recipeID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *socialRepository) HasSaved(ctx context.Context, recipeID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.SavedRecipe{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *socialRepository) GetUsername(ctx context.Context, userID uint) (string, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Select("username").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		return "", err
	}
	return user.Username, nil
}

func (r *socialRepository) GetRecipeIngredients(ctx context.Context, recipeID uint) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("ingredients.name asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *socialRepository) Snapshot(ctx context.Context, fn func(repo SocialRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&socialRepository{db: tx})
	})
}
