package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"
	MessageSuccessLikeRecipe      = "recipe liked successfully"
	MessageSuccessUnlikeRecipe    = "recipe unliked successfully"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessUnsaveRecipe    = "recipe unsaved successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"
	MessageFailedLikeRecipe      = "failed to like recipe"
	MessageFailedSaveRecipe      = "failed to save recipe"

	// Not-found and forbidden deliberately collapse into one error so the
	// response never reveals whether someone else's recipe exists.
	ErrRecipeNotFound = errors.New("recipe not found or forbidden")
)

// QuotaExceededError is returned when the daily post cap is hit. It keeps
// the configured limit so handlers can build a user-facing message.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily post limit reached (%d)", e.Limit)
}

type (
	RecipeCreateRequest struct {
		Title        string `json:"title" validate:"required"`
		Description  string `json:"description"`
		Instructions string `json:"instructions"`
		ImageURL     string `json:"image_url"`
		IsPublished  *bool  `json:"is_published"`
		Ingredients  []uint `json:"ingredients"`
	}

	// RecipeUpdateRequest carries a partial patch. Pointer fields
	// distinguish "omitted" from "set"; a non-nil Ingredients slice
	// replaces the recipe's ingredient links even when empty.
	RecipeUpdateRequest struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		Instructions *string `json:"instructions"`
		IsPublished  *bool   `json:"is_published"`
		Ingredients  *[]uint `json:"ingredients"`
	}

	RecipeListRequest struct {
		Search        string
		IncludeSelf   bool
		IngredientIDs []uint
	}

	IngredientOut struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	RecipeResponse struct {
		ID           uint      `json:"id"`
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Instructions string    `json:"instructions"`
		ImageURL     string    `json:"image_url,omitempty"`
		IsPublished  bool      `json:"is_published"`
		CreatedAt    time.Time `json:"created_at"`

		Likes          int64  `json:"likes"`
		Liked          *bool  `json:"liked"`
		Saved          *bool  `json:"saved"`
		CanDelete      *bool  `json:"can_delete"`
		AuthorUsername string `json:"author_username,omitempty"`

		Ingredients []IngredientOut `json:"ingredients"`
	}

	LikeCountResponse struct {
		Likes int64 `json:"likes"`
	}
)
