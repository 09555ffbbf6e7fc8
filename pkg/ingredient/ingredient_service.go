// Package ingredient keeps the catalog of canonical, deduplicated
// ingredient names that recipe tagging and filtering build on.
package ingredient

import (
	"Share-Recipe-Backend/domain"
	"Share-Recipe-Backend/entities"
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

const DefaultSearchLimit = 20

// Letters (Latin or Cyrillic), spaces and hyphens only.
var nameRegex = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё\s-]{3,}$`)

type (
	IngredientService interface {
		SearchIngredients(ctx context.Context, query string) ([]domain.IngredientOut, error)
		CreateIngredient(ctx context.Context, req domain.IngredientCreateRequest) (domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

// Normalize trims, collapses internal whitespace and lowercases a display
// name. Two names normalizing to the same form are the same ingredient.
func Normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// SearchIngredients matches the normalized query as a substring of the
// normalized catalog names. A blank query matches nothing, and storage
// failures degrade to an empty result instead of erroring out.
func (s *ingredientService) SearchIngredients(ctx context.Context, query string) ([]domain.IngredientOut, error) {
	normalized := Normalize(query)
	if normalized == "" {
		return []domain.IngredientOut{}, nil
	}

	ingredients, err := s.ingredientRepository.SearchByNormalized(ctx, normalized, DefaultSearchLimit)
	if err != nil {
		return []domain.IngredientOut{}, nil
	}

	result := make([]domain.IngredientOut, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, domain.IngredientOut{
			ID:   ingredient.ID,
			Name: ingredient.Name,
		})
	}
	return result, nil
}

// CreateIngredient validates the display name and inserts it unless an
// ingredient with the same normalized form already exists, in which case
// the existing row is returned. A concurrent insert losing the race on the
// unique constraint is resolved the same way.
func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.IngredientCreateRequest) (domain.IngredientResponse, error) {
	raw := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(raw) < 3 {
		return domain.IngredientResponse{}, domain.ErrIngredientTooShort
	}
	if !nameRegex.MatchString(raw) {
		return domain.IngredientResponse{}, domain.ErrIngredientInvalidChars
	}

	normalized := Normalize(raw)

	existing, err := s.ingredientRepository.GetByNormalized(ctx, normalized)
	if err == nil {
		return domain.IngredientResponse{ID: existing.ID, Name: existing.Name, Existing: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.IngredientResponse{}, err
	}

	created := &entities.Ingredient{Name: raw, NameNorm: normalized}
	if err := s.ingredientRepository.CreateIngredient(ctx, created); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, lookupErr := s.ingredientRepository.GetByNormalized(ctx, normalized)
			if lookupErr != nil {
				return domain.IngredientResponse{}, lookupErr
			}
			return domain.IngredientResponse{ID: winner.ID, Name: winner.Name, Existing: true}, nil
		}
		return domain.IngredientResponse{}, err
	}

	return domain.IngredientResponse{ID: created.ID, Name: created.Name, Existing: false}, nil
}
