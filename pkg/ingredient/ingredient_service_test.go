package ingredient

import (
	"Share-Recipe-Backend/domain"
	"Share-Recipe-Backend/entities"
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeIngredientRepo struct {
	byNorm    map[string]*entities.Ingredient
	nextID    uint
	searchErr error
	createErr error
	// missFirstGet makes the first lookup miss, simulating a concurrent
	// insert that lands between the existence check and our insert.
	missFirstGet bool
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{byNorm: map[string]*entities.Ingredient{}, nextID: 1}
}

func (f *fakeIngredientRepo) SearchByNormalized(_ context.Context, normalized string, limit int) ([]*entities.Ingredient, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var out []*entities.Ingredient
	for norm, ing := range f.byNorm {
		if strings.Contains(norm, normalized) {
			out = append(out, ing)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeIngredientRepo) GetByNormalized(_ context.Context, normalized string) (*entities.Ingredient, error) {
	if f.missFirstGet {
		f.missFirstGet = false
		return nil, gorm.ErrRecordNotFound
	}
	if ing, ok := f.byNorm[normalized]; ok {
		return ing, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIngredientRepo) CreateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byNorm[ingredient.NameNorm]; ok {
		return gorm.ErrDuplicatedKey
	}
	ingredient.ID = f.nextID
	f.nextID++
	f.byNorm[ingredient.NameNorm] = ingredient
	return nil
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Green Onion":         "green onion",
		"  green   onion  ":   "green onion",
		"\tOlive\n Oil ":      "olive oil",
		"салат":               "салат",
		"":                    "",
		"   ":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in))
	}
}

func TestCreateIngredient_New(t *testing.T) {
	repo := newFakeIngredientRepo()
	service := NewIngredientService(repo)

	res, err := service.CreateIngredient(context.Background(), domain.IngredientCreateRequest{Name: "Green Onion"})
	require.NoError(t, err)
	assert.Equal(t, "Green Onion", res.Name)
	assert.False(t, res.Existing)
	assert.NotZero(t, res.ID)
}

func TestCreateIngredient_DuplicateNormalized(t *testing.T) {
	repo := newFakeIngredientRepo()
	service := NewIngredientService(repo)

	first, err := service.CreateIngredient(context.Background(), domain.IngredientCreateRequest{Name: "Green Onion"})
	require.NoError(t, err)

	// Same ingredient after trimming, collapsing and lowercasing.
	second, err := service.CreateIngredient(context.Background(), domain.IngredientCreateRequest{Name: "  green   ONION "})
	require.NoError(t, err)
	assert.True(t, second.Existing)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Green Onion", second.Name)
}

func TestCreateIngredient_TooShort(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepo())

	for _, name := range []string{"ab", " a ", ""} {
		_, err := service.CreateIngredient(context.Background(), domain.IngredientCreateRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrIngredientTooShort, "name %q", name)
	}
}

func TestCreateIngredient_InvalidChars(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepo())

	for _, name := range []string{"salt123", "salt!", "o'nion"} {
		_, err := service.CreateIngredient(context.Background(), domain.IngredientCreateRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrIngredientInvalidChars, "name %q", name)
	}
}

func TestCreateIngredient_HyphenAndCyrillicAllowed(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepo())

	for _, name := range []string{"self-raising flour", "Зелёный лук"} {
		_, err := service.CreateIngredient(context.Background(), domain.IngredientCreateRequest{Name: name})
		assert.NoError(t, err, "name %q", name)
	}
}

func TestCreateIngredient_LostInsertRace(t *testing.T) {
	repo := newFakeIngredientRepo()
	service := NewIngredientService(repo)

	// A concurrent writer gets the row in between the existence check and
	// the insert. The unique index rejects ours and we return the winner.
	repo.byNorm["basil"] = &entities.Ingredient{ID: 42, Name: "Basil", NameNorm: "basil"}
	repo.missFirstGet = true

	res, err := service.CreateIngredient(context.Background(), domain.IngredientCreateRequest{Name: "Basil"})
	require.NoError(t, err)
	assert.True(t, res.Existing)
	assert.Equal(t, uint(42), res.ID)
}

func TestSearchIngredients_BlankQuery(t *testing.T) {
	repo := newFakeIngredientRepo()
	repo.byNorm["salt"] = &entities.Ingredient{ID: 1, Name: "Salt", NameNorm: "salt"}
	service := NewIngredientService(repo)

	for _, query := range []string{"", "   ", "\t"} {
		res, err := service.SearchIngredients(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, res)
	}
}

func TestSearchIngredients_SubstringMatch(t *testing.T) {
	repo := newFakeIngredientRepo()
	repo.byNorm["green onion"] = &entities.Ingredient{ID: 1, Name: "Green Onion", NameNorm: "green onion"}
	repo.byNorm["onion powder"] = &entities.Ingredient{ID: 2, Name: "Onion Powder", NameNorm: "onion powder"}
	repo.byNorm["salt"] = &entities.Ingredient{ID: 3, Name: "Salt", NameNorm: "salt"}
	service := NewIngredientService(repo)

	res, err := service.SearchIngredients(context.Background(), "  ONION ")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Green Onion", res[0].Name)
	assert.Equal(t, "Onion Powder", res[1].Name)
}

func TestSearchIngredients_FailsOpen(t *testing.T) {
	repo := newFakeIngredientRepo()
	repo.searchErr = gorm.ErrInvalidDB
	service := NewIngredientService(repo)

	res, err := service.SearchIngredients(context.Background(), "onion")
	require.NoError(t, err)
	assert.Empty(t, res)
}
