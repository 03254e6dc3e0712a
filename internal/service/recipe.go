package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diarioalimentar/backend/config"
	"github.com/diarioalimentar/backend/internal/types"
)

// resultCount fixes the provider search to a single best match.
const resultCount = 1

// instructionSep joins the provider's step-by-step instructions into one
// translatable block.
const instructionSep = "\n"

// RecipeService orchestrates recipe search: translate the ingredient lists to
// the provider's locale, query the recipe provider, reshape the first result
// and translate it back. The pipeline is strictly sequential and stops at the
// first failed step.
type RecipeService struct {
	apiKey         string
	apiURL         string
	translator     Translator
	client         *http.Client
	sourceLocale   string
	providerLocale string
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(cfg *config.Config, translator Translator) *RecipeService {
	return &RecipeService{
		apiKey:         cfg.RecipeAPIKey,
		apiURL:         cfg.RecipeAPIURL,
		translator:     translator,
		client:         &http.Client{Timeout: outboundTimeout},
		sourceLocale:   cfg.SourceLocale,
		providerLocale: cfg.ProviderLocale,
	}
}

// providerResult mirrors the fields of the provider's complexSearch response
// that feed the Recipe shape.
type providerResult struct {
	Title                string `json:"title"`
	AnalyzedInstructions []struct {
		Steps []struct {
			Number int    `json:"number"`
			Step   string `json:"step"`
		} `json:"steps"`
	} `json:"analyzedInstructions"`
	ExtendedIngredients []struct {
		Name     string `json:"name"`
		Measures struct {
			Metric struct {
				Amount    float64 `json:"amount"`
				UnitShort string  `json:"unitShort"`
			} `json:"metric"`
		} `json:"measures"`
	} `json:"extendedIngredients"`
}

// SearchRecipe finds the single best recipe for the given ingredient lists.
// includeIngredients is required; excludeIngredients may be empty, in which
// case no exclusion is sent to the provider.
func (s *RecipeService) SearchRecipe(ctx context.Context, includeIngredients, excludeIngredients string) (*types.Recipe, error) {
	if strings.TrimSpace(includeIngredients) == "" {
		return nil, fmt.Errorf("%w: ingredient list is required", ErrValidation)
	}

	log.Printf("searching recipe for ingredients %q excluding %q", includeIngredients, excludeIngredients)

	include, err := s.translator.Translate(ctx, includeIngredients, s.sourceLocale, s.providerLocale)
	if err != nil {
		return nil, err
	}

	var exclude string
	if strings.TrimSpace(excludeIngredients) != "" {
		exclude, err = s.translator.Translate(ctx, excludeIngredients, s.sourceLocale, s.providerLocale)
		if err != nil {
			return nil, err
		}
	}

	recipe, err := s.queryProvider(ctx, include, exclude)
	if err != nil {
		return nil, err
	}

	translated, err := s.translator.Translate(ctx, EncodeRecipe(recipe), s.providerLocale, s.sourceLocale)
	if err != nil {
		return nil, err
	}

	decoded, err := DecodeRecipe(translated)
	if err != nil {
		log.Printf("translated recipe no longer parses: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	return decoded, nil
}

func (s *RecipeService) queryProvider(ctx context.Context, include, exclude string) (*types.Recipe, error) {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("includeIngredients", include)
	if exclude != "" {
		params.Set("excludeIngredients", exclude)
	}
	params.Set("number", fmt.Sprintf("%d", resultCount))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	params.Set("addRecipeInstructions", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("recipe provider request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("recipe provider returned status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: provider returned status %d", ErrProvider, resp.StatusCode)
	}

	var result struct {
		Results []providerResult `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrProvider, err)
	}

	log.Printf("recipe provider answered with %d results in %s", len(result.Results), time.Since(start))

	if len(result.Results) == 0 {
		return nil, fmt.Errorf("%w: no recipe matches the given ingredients", ErrNotFound)
	}

	return reshape(&result.Results[0]), nil
}

// reshape flattens the provider's nested result into the Recipe shape:
// title, instruction steps joined into one block, metric ingredient lines.
func reshape(r *providerResult) *types.Recipe {
	var steps []string
	for _, block := range r.AnalyzedInstructions {
		for _, step := range block.Steps {
			steps = append(steps, step.Step)
		}
	}

	ingredients := make([]types.Ingredient, 0, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		ingredients = append(ingredients, types.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Measures.Metric.Amount,
			Unit:     ing.Measures.Metric.UnitShort,
		})
	}

	return &types.Recipe{
		Title:        r.Title,
		Instructions: strings.Join(steps, instructionSep),
		Ingredients:  ingredients,
	}
}
