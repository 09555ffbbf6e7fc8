package recipe

import (
	"Share-Recipe-Backend/domain"
	"Share-Recipe-Backend/entities"
	"Share-Recipe-Backend/pkg/social"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

const DefaultPostsDailyLimit = 5

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeCreateRequest, userID uint) (domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID uint, viewerID *uint) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, req domain.RecipeListRequest, viewerID *uint) ([]domain.RecipeResponse, error)
		GetMyRecipes(ctx context.Context, userID uint) ([]domain.RecipeResponse, error)
		GetSavedRecipes(ctx context.Context, userID uint) ([]domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID uint, req domain.RecipeUpdateRequest, userID uint) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID uint, userID uint) error
		SetRecipeImage(ctx context.Context, recipeID uint, imageURL string, userID uint) (domain.RecipeResponse, error)
		LikeRecipe(ctx context.Context, recipeID, userID uint) (int64, error)
		UnlikeRecipe(ctx context.Context, recipeID, userID uint) (int64, error)
		SaveRecipe(ctx context.Context, recipeID, userID uint) error
		UnsaveRecipe(ctx context.Context, recipeID, userID uint) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		socialResolver   social.SocialResolver
		postsDailyLimit  int
	}
)

func NewRecipeService(recipeRepository RecipeRepository, socialResolver social.SocialResolver, postsDailyLimit int) RecipeService {
	if postsDailyLimit <= 0 {
		postsDailyLimit = DefaultPostsDailyLimit
	}
	return &recipeService{
		recipeRepository: recipeRepository,
		socialResolver:   socialResolver,
		postsDailyLimit:  postsDailyLimit,
	}
}

// startOfUTCDay returns midnight UTC of the current day, the lower bound of
// the daily post quota window.
func startOfUTCDay(now time.Time) time.Time {
	year, month, day := now.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// getOwnedRecipe loads a recipe and checks ownership. Missing rows and
// other users' rows both come back as ErrRecipeNotFound so the caller
// cannot tell the two apart.
func (s *recipeService) getOwnedRecipe(ctx context.Context, recipeID, userID uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *recipeService) getRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeCreateRequest, userID uint) (domain.RecipeResponse, error) {
	// Daily post quota. A failed count is treated permissively so a
	// transient read error never blocks a legitimate post.
	count, err := s.recipeRepository.CountRecipesSince(ctx, userID, startOfUTCDay(time.Now()))
	if err == nil && count >= int64(s.postsDailyLimit) {
		return domain.RecipeResponse{}, &domain.QuotaExceededError{Limit: s.postsDailyLimit}
	}

	recipe := &entities.Recipe{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
		IsPublished:  true,
	}
	if req.IsPublished != nil {
		recipe.IsPublished = *req.IsPublished
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	if len(req.Ingredients) > 0 {
		if err := s.recipeRepository.ReplaceIngredients(ctx, recipe.ID, dedupeIDs(req.Ingredients)); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	return s.socialResolver.DecorateRecipe(ctx, recipe, &userID)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID uint, viewerID *uint) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.socialResolver.DecorateRecipe(ctx, recipe, viewerID)
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.RecipeListRequest, viewerID *uint) ([]domain.RecipeResponse, error) {
	filter := RecipeFilter{
		Search:        req.Search,
		IngredientIDs: req.IngredientIDs,
	}
	// The public feed hides the viewer's own posts unless asked otherwise.
	if viewerID != nil && !req.IncludeSelf {
		filter.ExcludeUserID = viewerID
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.socialResolver.DecorateRecipes(ctx, recipes, viewerID)
}

func (s *recipeService) GetMyRecipes(ctx context.Context, userID uint) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.socialResolver.DecorateRecipes(ctx, recipes, &userID)
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, userID uint) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetSavedRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.socialResolver.DecorateRecipes(ctx, recipes, &userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID uint, req domain.RecipeUpdateRequest, userID uint) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.IsPublished != nil {
		recipe.IsPublished = *req.IsPublished
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	// Presence of the ingredients key replaces the links, even when the
	// list is empty; an absent key leaves them untouched.
	if req.Ingredients != nil {
		if err := s.recipeRepository.ReplaceIngredients(ctx, recipe.ID, dedupeIDs(*req.Ingredients)); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	return s.socialResolver.DecorateRecipe(ctx, recipe, &userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID uint, userID uint) error {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, recipe.ID)
}

func (s *recipeService) SetRecipeImage(ctx context.Context, recipeID uint, imageURL string, userID uint) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.ImageURL = imageURL
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.socialResolver.DecorateRecipe(ctx, recipe, &userID)
}

func (s *recipeService) LikeRecipe(ctx context.Context, recipeID, userID uint) (int64, error) {
	if _, err := s.getRecipe(ctx, recipeID); err != nil {
		return 0, err
	}
	if err := s.recipeRepository.AddLike(ctx, recipeID, userID); err != nil {
		return 0, err
	}
	return s.recipeRepository.CountLikes(ctx, recipeID)
}

func (s *recipeService) UnlikeRecipe(ctx context.Context, recipeID, userID uint) (int64, error) {
	if _, err := s.getRecipe(ctx, recipeID); err != nil {
		return 0, err
	}
	if err := s.recipeRepository.RemoveLike(ctx, recipeID, userID); err != nil {
		return 0, err
	}
	return s.recipeRepository.CountLikes(ctx, recipeID)
}

func (s *recipeService) SaveRecipe(ctx context.Context, recipeID, userID uint) error {
	if _, err := s.getRecipe(ctx, recipeID); err != nil {
		return err
	}
	return s.recipeRepository.AddSave(ctx, recipeID, userID)
}

func (s *recipeService) UnsaveRecipe(ctx context.Context, recipeID, userID uint) error {
	if _, err := s.getRecipe(ctx, recipeID); err != nil {
		return err
	}
	return s.recipeRepository.RemoveSave(ctx, recipeID, userID)
}
