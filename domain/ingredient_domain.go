package domain

import (
	"errors"
)

var (
	MessageSuccessSearchIngredients = "success search ingredients"
	MessageSuccessCreateIngredient  = "ingredient created successfully"

	MessageFailedCreateIngredient = "failed to create ingredient"

	ErrIngredientTooShort     = errors.New("ingredient must be at least 3 characters")
	ErrIngredientInvalidChars = errors.New("ingredient must contain only letters, spaces or hyphens")
)

type (
	IngredientCreateRequest struct {
		Name string `json:"name" validate:"required"`
	}

	IngredientResponse struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Existing bool   `json:"existing"`
	}
)
