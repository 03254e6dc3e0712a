package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diarioalimentar/backend/internal/service"
)

// RecipeHandler exposes the recipe aggregation pipeline.
type RecipeHandler struct {
	recipeService service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes wires the recipe search route.
func (h *RecipeHandler) RegisterRoutes(router *gin.Engine, limiter gin.HandlerFunc) {
	router.GET("/buscar_receita", limiter, h.SearchRecipe)
}

// SearchRecipe runs the translate -> search -> translate pipeline for the
// given ingredient lists.
func (h *RecipeHandler) SearchRecipe(c *gin.Context) {
	include := c.Query("ingredients")
	exclude := c.Query("excludeIngredients")

	recipe, err := h.recipeService.SearchRecipe(c.Request.Context(), include, exclude)
	if err != nil {
		c.JSON(recipeStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// recipeStatus maps pipeline errors onto the published status codes: a failed
// translation keeps the source's 404 for wire compatibility, a failed
// provider call is a bad gateway.
func recipeStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTranslationFailed):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrProvider):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}
