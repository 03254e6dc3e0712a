package service

import (
	"context"

	"github.com/diarioalimentar/backend/internal/model"
	"github.com/diarioalimentar/backend/internal/types"
)

// Translator defines the single operation the recipe aggregator needs from
// the translation provider.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// IDiaryService defines the interface for diary store operations
type IDiaryService interface {
	Insert(ctx context.Context, date model.Date, meals []model.Meal) (*model.DiaryEntry, error)
	List(ctx context.Context) ([]model.DiaryEntry, error)
	FindByDate(ctx context.Context, date model.Date) (*model.DiaryEntry, error)
	DeleteByDate(ctx context.Context, date model.Date) error
	ReplaceMeals(ctx context.Context, date model.Date, newMeals []model.Meal) (*model.DiaryEntry, error)
}

// IRecipeService defines the interface for recipe search operations
type IRecipeService interface {
	SearchRecipe(ctx context.Context, includeIngredients, excludeIngredients string) (*types.Recipe, error)
}
