package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diarioalimentar/backend/config"
)

const providerBody = `{
	"results": [{
		"title": "Carrot Puree",
		"analyzedInstructions": [{
			"steps": [
				{"number": 1, "step": "Peel the carrots."},
				{"number": 2, "step": "Steam until soft."}
			]
		}],
		"extendedIngredients": [
			{"name": "carrot", "measures": {"metric": {"amount": 300, "unitShort": "g"}}},
			{"name": "olive oil", "measures": {"metric": {"amount": 1, "unitShort": "Tbsp"}}}
		]
	}]
}`

func newRecipeService(providerURL string, translator Translator) *RecipeService {
	return NewRecipeService(&config.Config{
		RecipeAPIKey:   "provider-key",
		RecipeAPIURL:   providerURL,
		SourceLocale:   "pt",
		ProviderLocale: "en",
	}, translator)
}

func TestSearchRecipeSuccess(t *testing.T) {
	translation := echoTranslationServer(t, nil)

	var gotQuery map[string]string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"includeIngredients":    q.Get("includeIngredients"),
			"excludeIngredients":    q.Get("excludeIngredients"),
			"number":                q.Get("number"),
			"addRecipeInformation":  q.Get("addRecipeInformation"),
			"fillIngredients":       q.Get("fillIngredients"),
			"addRecipeInstructions": q.Get("addRecipeInstructions"),
			"apiKey":                q.Get("apiKey"),
		}
		fmt.Fprint(w, providerBody)
	}))
	defer provider.Close()

	svc := newRecipeService(provider.URL, newTranslationService(translation.URL))
	recipe, err := svc.SearchRecipe(context.Background(), "cenoura", "castanha")
	require.NoError(t, err)

	assert.Equal(t, "Carrot Puree", recipe.Title)
	assert.Equal(t, "Peel the carrots.\nSteam until soft.", recipe.Instructions)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "carrot", recipe.Ingredients[0].Name)
	assert.Equal(t, 300.0, recipe.Ingredients[0].Quantity)
	assert.Equal(t, "g", recipe.Ingredients[0].Unit)

	assert.Equal(t, "cenoura", gotQuery["includeIngredients"])
	assert.Equal(t, "castanha", gotQuery["excludeIngredients"])
	assert.Equal(t, "1", gotQuery["number"])
	assert.Equal(t, "true", gotQuery["addRecipeInformation"])
	assert.Equal(t, "true", gotQuery["fillIngredients"])
	assert.Equal(t, "true", gotQuery["addRecipeInstructions"])
	assert.Equal(t, "provider-key", gotQuery["apiKey"])
}

func TestSearchRecipeTranslationFailureShortCircuits(t *testing.T) {
	translation := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer translation.Close()

	providerHits := 0
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		providerHits++
		fmt.Fprint(w, providerBody)
	}))
	defer provider.Close()

	svc := newRecipeService(provider.URL, newTranslationService(translation.URL))
	_, err := svc.SearchRecipe(context.Background(), "cenoura", "")

	assert.ErrorIs(t, err, ErrTranslationFailed)
	assert.Zero(t, providerHits, "a failed translation must not reach the provider")
}

func TestSearchRecipeProviderError(t *testing.T) {
	translation := echoTranslationServer(t, nil)
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "payment required", http.StatusPaymentRequired)
	}))
	defer provider.Close()

	svc := newRecipeService(provider.URL, newTranslationService(translation.URL))
	_, err := svc.SearchRecipe(context.Background(), "cenoura", "")
	assert.ErrorIs(t, err, ErrProvider)
}

func TestSearchRecipeNoResults(t *testing.T) {
	translation := echoTranslationServer(t, nil)
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer provider.Close()

	svc := newRecipeService(provider.URL, newTranslationService(translation.URL))
	_, err := svc.SearchRecipe(context.Background(), "cenoura", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchRecipeEmptyIngredients(t *testing.T) {
	hits := 0
	translation := echoTranslationServer(t, &hits)

	svc := newRecipeService("http://unused.invalid", newTranslationService(translation.URL))
	_, err := svc.SearchRecipe(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, hits)
}

func TestSearchRecipeSkipsEmptyExclusion(t *testing.T) {
	hits := 0
	translation := echoTranslationServer(t, &hits)
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("excludeIngredients"))
		fmt.Fprint(w, providerBody)
	}))
	defer provider.Close()

	svc := newRecipeService(provider.URL, newTranslationService(translation.URL))
	_, err := svc.SearchRecipe(context.Background(), "cenoura", "")
	require.NoError(t, err)

	// include translation plus final result translation, no exclusion call
	assert.Equal(t, 2, hits)
}
