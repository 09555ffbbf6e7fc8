package recipe

import (
	"Share-Recipe-Backend/entities"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// RecipeFilter narrows the public listing. ExcludeUserID implements the
	// "discover others' recipes" rule; IngredientIDs filters with match-ANY
	// semantics.
	RecipeFilter struct {
		Search        string
		ExcludeUserID *uint
		IngredientIDs []uint
	}

	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter RecipeFilter) ([]*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error)
		GetSavedRecipes(ctx context.Context, userID uint) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uint) error
		CountRecipesSince(ctx context.Context, userID uint, since time.Time) (int64, error)
		ReplaceIngredients(ctx context.Context, recipeID uint, ingredientIDs []uint) error
		AddLike(ctx context.Context, recipeID, userID uint) error
		RemoveLike(ctx context.Context, recipeID, userID uint) error
		CountLikes(ctx context.Context, recipeID uint) (int64, error)
		AddSave(ctx context.Context, recipeID, userID uint) error
		RemoveSave(ctx context.Context, recipeID, userID uint) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter RecipeFilter) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Order("recipes.created_at desc")

	if filter.Search != "" {
		query = query.Where("LOWER(recipes.title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.ExcludeUserID != nil {
		query = query.Where("recipes.user_id <> ?", *filter.ExcludeUserID)
	}
	if len(filter.IngredientIDs) > 0 {
		// Match-ANY over the link table; DISTINCT keeps a recipe tagged with
		// several selected ingredients from appearing more than once.
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", filter.IngredientIDs).
			Distinct("recipes.*")
	}

	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetSavedRecipes(ctx context.Context, userID uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN saved_recipes ON recipes.id = saved_recipes.recipe_id").
		Where("saved_recipes.user_id = ?", userID).
		Order("saved_recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipe removes the recipe row; likes, saves, comments and
// ingredient links go with it through the cascade constraints.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Recipe{}, id).Error
}

func (r *recipeRepository) CountRecipesSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReplaceIngredients swaps the recipe's ingredient links for the given set.
// Delete and insert run in one transaction so concurrent readers never see
// the recipe with its links half gone.
func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID uint, ingredientIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).
			Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(ingredientIDs) == 0 {
			return nil
		}
		links := make([]entities.RecipeIngredient, 0, len(ingredientIDs))
		for _, ingredientID := range ingredientIDs {
			links = append(links, entities.RecipeIngredient{
				RecipeID:     recipeID,
				IngredientID: ingredientID,
			})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
}

// AddLike is idempotent: the (recipe_id, user_id) unique index is the only
// concurrency control, and a conflicting insert is silently ignored.
func (r *recipeRepository) AddLike(ctx context.Context, recipeID, userID uint) error {
	like := entities.RecipeLike{RecipeID: recipeID, UserID: userID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
}

func (r *recipeRepository) RemoveLike(ctx context.Context, recipeID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.RecipeLike{}).Error
}

func (r *recipeRepository) CountLikes(ctx context.Context, recipeID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) AddSave(ctx context.Context, recipeID, userID uint) error {
	saved := entities.SavedRecipe{RecipeID: recipeID, UserID: userID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&saved).Error
}

func (r *recipeRepository) RemoveSave(ctx context.Context, recipeID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.SavedRecipe{}).Error
}
