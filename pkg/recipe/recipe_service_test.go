package recipe

import (
	"Share-Recipe-Backend/domain"
	"Share-Recipe-Backend/entities"
	"Share-Recipe-Backend/pkg/social"
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pair struct{ recipeID, userID uint }

// memStore backs both the recipe repository and the social repository so
// service and resolver observe the same state, the way one database would.
type memStore struct {
	recipes         map[uint]*entities.Recipe
	nextID          uint
	links           map[uint][]uint
	likes           map[pair]bool
	saves           map[pair]bool
	usernames       map[uint]string
	ingredientNames map[uint]string
	countErr        error
}

func newMemStore() *memStore {
	return &memStore{
		recipes:         map[uint]*entities.Recipe{},
		nextID:          1,
		links:           map[uint][]uint{},
		likes:           map[pair]bool{},
		saves:           map[pair]bool{},
		usernames:       map[uint]string{},
		ingredientNames: map[uint]string{},
	}
}

func (s *memStore) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	recipe.ID = s.nextID
	s.nextID++
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC().Add(time.Duration(recipe.ID) * time.Millisecond)
	}
	stored := *recipe
	s.recipes[recipe.ID] = &stored
	return nil
}

func (s *memStore) GetRecipeByID(_ context.Context, id uint) (*entities.Recipe, error) {
	if r, ok := s.recipes[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memStore) GetRecipes(_ context.Context, filter RecipeFilter) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range s.recipes {
		if filter.Search != "" && !strings.Contains(strings.ToLower(r.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.ExcludeUserID != nil && r.UserID == *filter.ExcludeUserID {
			continue
		}
		if len(filter.IngredientIDs) > 0 && !s.hasAnyIngredient(r.ID, filter.IngredientIDs) {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) hasAnyIngredient(recipeID uint, ingredientIDs []uint) bool {
	for _, linked := range s.links[recipeID] {
		for _, want := range ingredientIDs {
			if linked == want {
				return true
			}
		}
	}
	return false
}

func (s *memStore) GetRecipesByUser(_ context.Context, userID uint) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range s.recipes {
		if r.UserID == userID {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) GetSavedRecipes(_ context.Context, userID uint) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for p := range s.saves {
		if p.userID != userID {
			continue
		}
		if r, ok := s.recipes[p.recipeID]; ok {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	if _, ok := s.recipes[recipe.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *recipe
	s.recipes[recipe.ID] = &stored
	return nil
}

func (s *memStore) DeleteRecipe(_ context.Context, id uint) error {
	delete(s.recipes, id)
	delete(s.links, id)
	for p := range s.likes {
		if p.recipeID == id {
			delete(s.likes, p)
		}
	}
	for p := range s.saves {
		if p.recipeID == id {
			delete(s.saves, p)
		}
	}
	return nil
}

func (s *memStore) CountRecipesSince(_ context.Context, userID uint, since time.Time) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	var count int64
	for _, r := range s.recipes {
		if r.UserID == userID && !r.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (s *memStore) ReplaceIngredients(_ context.Context, recipeID uint, ingredientIDs []uint) error {
	s.links[recipeID] = append([]uint(nil), ingredientIDs...)
	return nil
}

func (s *memStore) AddLike(_ context.Context, recipeID, userID uint) error {
	s.likes[pair{recipeID, userID}] = true
	return nil
}

func (s *memStore) RemoveLike(_ context.Context, recipeID, userID uint) error {
	delete(s.likes, pair{recipeID, userID})
	return nil
}

func (s *memStore) CountLikes(_ context.Context, recipeID uint) (int64, error) {
	var count int64
	for p := range s.likes {
		if p.recipeID == recipeID {
			count++
		}
	}
	return count, nil
}

func (s *memStore) AddSave(_ context.Context, recipeID, userID uint) error {
	s.saves[pair{recipeID, userID}] = true
	return nil
}

func (s *memStore) RemoveSave(_ context.Context, recipeID, userID uint) error {
	delete(s.saves, pair{recipeID, userID})
	return nil
}

func (s *memStore) HasLiked(_ context.Context, recipeID, userID uint) (bool, error) {
	return s.likes[pair{recipeID, userID}], nil
}

func (s *memStore) HasSaved(_ context.Context, recipeID, userID uint) (bool, error) {
	return s.saves[pair{recipeID, userID}], nil
}

func (s *memStore) GetUsername(_ context.Context, userID uint) (string, error) {
	if username, ok := s.usernames[userID]; ok {
		return username, nil
	}
	return "", gorm.ErrRecordNotFound
}

func (s *memStore) GetRecipeIngredients(_ context.Context, recipeID uint) ([]*entities.Ingredient, error) {
	var out []*entities.Ingredient
	for _, id := range s.links[recipeID] {
		out = append(out, &entities.Ingredient{ID: id, Name: s.ingredientNames[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) Snapshot(_ context.Context, fn func(repo social.SocialRepository) error) error {
	return fn(s)
}

func newTestService(store *memStore) RecipeService {
	return NewRecipeService(store, social.NewSocialResolver(store), DefaultPostsDailyLimit)
}

func seedRecipe(t *testing.T, store *memStore, userID uint, title string) uint {
	t.Helper()
	r := &entities.Recipe{UserID: userID, Title: title, IsPublished: true}
	require.NoError(t, store.CreateRecipe(context.Background(), r))
	return r.ID
}

func TestLikeRecipe_Idempotent(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	recipeID := seedRecipe(t, store, 7, "Pasta")

	likes, err := service.LikeRecipe(context.Background(), recipeID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	// A second like from the same user changes nothing.
	likes, err = service.LikeRecipe(context.Background(), recipeID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	likes, err = service.LikeRecipe(context.Background(), recipeID, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(2), likes)
}

func TestUnlikeRecipe_Idempotent(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	recipeID := seedRecipe(t, store, 7, "Pasta")

	_, err := service.LikeRecipe(context.Background(), recipeID, 10)
	require.NoError(t, err)

	likes, err := service.UnlikeRecipe(context.Background(), recipeID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)

	likes, err = service.UnlikeRecipe(context.Background(), recipeID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
}

func TestLikeRecipe_Missing(t *testing.T) {
	service := newTestService(newMemStore())

	_, err := service.LikeRecipe(context.Background(), 99, 10)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestSaveUnsaveRecipe(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	recipeID := seedRecipe(t, store, 7, "Pasta")

	require.NoError(t, service.SaveRecipe(context.Background(), recipeID, 10))
	require.NoError(t, service.SaveRecipe(context.Background(), recipeID, 10))

	saved, err := service.GetSavedRecipes(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, saved, 1)

	require.NoError(t, service.UnsaveRecipe(context.Background(), recipeID, 10))
	saved, err = service.GetSavedRecipes(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestDeleteRecipe_OwnershipHidden(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	recipeID := seedRecipe(t, store, 7, "Pasta")

	// Someone else's delete reads like the recipe does not exist at all.
	err := service.DeleteRecipe(context.Background(), recipeID, 10)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	_, ok := store.recipes[recipeID]
	assert.True(t, ok)

	require.NoError(t, service.DeleteRecipe(context.Background(), recipeID, 7))
	_, ok = store.recipes[recipeID]
	assert.False(t, ok)
}

func TestUpdateRecipe_NotOwner(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	recipeID := seedRecipe(t, store, 7, "Pasta")

	title := "Stolen"
	_, err := service.UpdateRecipe(context.Background(), recipeID, domain.RecipeUpdateRequest{Title: &title}, 10)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Equal(t, "Pasta", store.recipes[recipeID].Title)
}

func TestUpdateRecipe_PartialPatch(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	recipeID := seedRecipe(t, store, 7, "Pasta")
	store.recipes[recipeID].Description = "old"

	title := "Better Pasta"
	res, err := service.UpdateRecipe(context.Background(), recipeID, domain.RecipeUpdateRequest{Title: &title}, 7)
	require.NoError(t, err)
	assert.Equal(t, "Better Pasta", res.Title)
	// Fields omitted from the patch keep their value.
	assert.Equal(t, "old", store.recipes[recipeID].Description)
}

func TestUpdateRecipe_IngredientsKeySemantics(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	recipeID := seedRecipe(t, store, 7, "Pasta")
	store.links[recipeID] = []uint{1, 2}

	// Absent key leaves the links untouched.
	title := "Pasta v2"
	_, err := service.UpdateRecipe(context.Background(), recipeID, domain.RecipeUpdateRequest{Title: &title}, 7)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, store.links[recipeID])

	// A present list replaces them, duplicates collapsed.
	ingredients := []uint{3, 3, 4}
	_, err = service.UpdateRecipe(context.Background(), recipeID, domain.RecipeUpdateRequest{Ingredients: &ingredients}, 7)
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 4}, store.links[recipeID])

	// An empty list clears them.
	empty := []uint{}
	_, err = service.UpdateRecipe(context.Background(), recipeID, domain.RecipeUpdateRequest{Ingredients: &empty}, 7)
	require.NoError(t, err)
	assert.Empty(t, store.links[recipeID])
}

func TestGetRecipes_ExcludesViewerByDefault(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	seedRecipe(t, store, 7, "Mine")
	seedRecipe(t, store, 8, "Theirs")

	viewerID := uint(7)
	res, err := service.GetRecipes(context.Background(), domain.RecipeListRequest{}, &viewerID)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Theirs", res[0].Title)

	res, err = service.GetRecipes(context.Background(), domain.RecipeListRequest{IncludeSelf: true}, &viewerID)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	// Guests see everything.
	res, err = service.GetRecipes(context.Background(), domain.RecipeListRequest{}, nil)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestGetRecipes_IngredientFilterMatchAny(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)
	first := seedRecipe(t, store, 7, "Pasta")
	second := seedRecipe(t, store, 8, "Soup")
	seedRecipe(t, store, 9, "Toast")
	store.links[first] = []uint{1, 2}
	store.links[second] = []uint{2}

	res, err := service.GetRecipes(context.Background(), domain.RecipeListRequest{IngredientIDs: []uint{1, 2}}, nil)
	require.NoError(t, err)
	// Both tagged recipes match, and the one carrying both selected
	// ingredients still appears exactly once.
	require.Len(t, res, 2)
}

func TestCreateRecipe_DailyQuota(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)

	for i := 0; i < DefaultPostsDailyLimit; i++ {
		_, err := service.CreateRecipe(context.Background(), domain.RecipeCreateRequest{Title: "Dish"}, 7)
		require.NoError(t, err)
	}

	_, err := service.CreateRecipe(context.Background(), domain.RecipeCreateRequest{Title: "One too many"}, 7)
	var quotaErr *domain.QuotaExceededError
	require.True(t, errors.As(err, &quotaErr))
	assert.Equal(t, DefaultPostsDailyLimit, quotaErr.Limit)

	// Another user is unaffected.
	_, err = service.CreateRecipe(context.Background(), domain.RecipeCreateRequest{Title: "Fresh"}, 8)
	assert.NoError(t, err)
}

func TestCreateRecipe_QuotaIgnoresYesterday(t *testing.T) {
	store := newMemStore()
	service := newTestService(store)

	yesterday := time.Now().UTC().Add(-24 * time.Hour)
	for i := 0; i < DefaultPostsDailyLimit; i++ {
		r := &entities.Recipe{UserID: 7, Title: "Old", Timestamp: entities.Timestamp{CreatedAt: yesterday}}
		require.NoError(t, store.CreateRecipe(context.Background(), r))
	}

	_, err := service.CreateRecipe(context.Background(), domain.RecipeCreateRequest{Title: "Today"}, 7)
	assert.NoError(t, err)
}

func TestCreateRecipe_QuotaCheckFailsOpen(t *testing.T) {
	store := newMemStore()
	store.countErr = gorm.ErrInvalidDB
	service := newTestService(store)

	_, err := service.CreateRecipe(context.Background(), domain.RecipeCreateRequest{Title: "Dish"}, 7)
	assert.NoError(t, err)
}

func TestCreateRecipe_DecoratedForOwner(t *testing.T) {
	store := newMemStore()
	store.usernames[7] = "chef_anna"
	store.ingredientNames[1] = "Basil"
	service := newTestService(store)

	res, err := service.CreateRecipe(context.Background(), domain.RecipeCreateRequest{
		Title:       "Pasta",
		Ingredients: []uint{1, 1},
	}, 7)
	require.NoError(t, err)
	assert.Equal(t, "chef_anna", res.AuthorUsername)
	require.NotNil(t, res.CanDelete)
	assert.True(t, *res.CanDelete)
	require.Len(t, res.Ingredients, 1)
	assert.Equal(t, "Basil", res.Ingredients[0].Name)
	assert.True(t, res.IsPublished)
}

func TestGetRecipeDetail_Guest(t *testing.T) {
	store := newMemStore()
	store.usernames[7] = "chef_anna"
	service := newTestService(store)
	recipeID := seedRecipe(t, store, 7, "Pasta")

	res, err := service.GetRecipeDetail(context.Background(), recipeID, nil)
	require.NoError(t, err)
	assert.Nil(t, res.Liked)
	assert.Nil(t, res.Saved)
	assert.Nil(t, res.CanDelete)
	assert.Equal(t, "chef_anna", res.AuthorUsername)
}
