// Package social computes viewer-relative and aggregate fields for recipes.
// The resolver only reads; derived fields live on the response value and are
// never written back to storage.
package social

import (
	"Share-Recipe-Backend/domain"
	"Share-Recipe-Backend/entities"
	"context"
)

type (
	SocialResolver interface {
		DecorateRecipe(ctx context.Context, recipe *entities.Recipe, viewerID *uint) (domain.RecipeResponse, error)
		DecorateRecipes(ctx context.Context, recipes []*entities.Recipe, viewerID *uint) ([]domain.RecipeResponse, error)
	}

	socialResolver struct {
		socialRepository SocialRepository
	}
)

func NewSocialResolver(socialRepository SocialRepository) SocialResolver {
	return &socialResolver{socialRepository: socialRepository}
}

// DecorateRecipe attaches likes count, author username, ingredients and,
// when a viewer is present, the liked/saved/can_delete flags. Without a
// viewer those three stay nil so callers can tell "no" from "unknown".
// All reads happen inside one snapshot to keep count and flags consistent.
func (s *socialResolver) DecorateRecipe(ctx context.Context, recipe *entities.Recipe, viewerID *uint) (domain.RecipeResponse, error) {
	res := domain.RecipeResponse{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Description:  recipe.Description,
		Instructions: recipe.Instructions,
		ImageURL:     recipe.ImageURL,
		IsPublished:  recipe.IsPublished,
		CreatedAt:    recipe.CreatedAt,
		Ingredients:  []domain.IngredientOut{},
	}

	err := s.socialRepository.Snapshot(ctx, func(repo SocialRepository) error {
		likes, err := repo.CountLikes(ctx, recipe.ID)
		if err != nil {
			return err
		}
		res.Likes = likes

		// Resolved fresh on every call so a username change shows up
		// immediately. Failure degrades to an empty author field.
		if username, err := repo.GetUsername(ctx, recipe.UserID); err == nil {
			res.AuthorUsername = username
		}

		if viewerID != nil {
			liked, err := repo.HasLiked(ctx, recipe.ID, *viewerID)
			if err != nil {
				return err
			}
			saved, err := repo.HasSaved(ctx, recipe.ID, *viewerID)
			if err != nil {
				return err
			}
			canDelete := recipe.UserID == *viewerID
			res.Liked = &liked
			res.Saved = &saved
			res.CanDelete = &canDelete
		}

		// Ingredients fail open to an empty list.
		if ingredients, err := repo.GetRecipeIngredients(ctx, recipe.ID); err == nil {
			for _, ingredient := range ingredients {
				res.Ingredients = append(res.Ingredients, domain.IngredientOut{
					ID:   ingredient.ID,
					Name: ingredient.Name,
				})
			}
		}
		return nil
	})
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return res, nil
}

func (s *socialResolver) DecorateRecipes(ctx context.Context, recipes []*entities.Recipe, viewerID *uint) ([]domain.RecipeResponse, error) {
	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		decorated, err := s.DecorateRecipe(ctx, recipe, viewerID)
		if err != nil {
			return nil, err
		}
		result = append(result, decorated)
	}
	return result, nil
}
