package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diarioalimentar/backend/internal/model"
	"github.com/diarioalimentar/backend/internal/service"
	"github.com/diarioalimentar/backend/internal/types"
)

// DiaryHandler exposes the diary aggregate over the published routes.
type DiaryHandler struct {
	diaryService service.IDiaryService
}

// NewDiaryHandler creates a new DiaryHandler instance
func NewDiaryHandler(diaryService service.IDiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

// RegisterRoutes wires the diary routes. Paths are part of the wire contract
// and must not change.
func (h *DiaryHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/inserir_diario", h.InsertEntry)
	router.GET("/listar_diarios", h.ListEntries)
	router.GET("/buscar_diario", h.FindEntry)
	router.DELETE("/deletar_diario", h.DeleteEntry)
	router.POST("/editar_diario", h.EditEntry)
}

// InsertEntry creates a diary entry with its meals.
func (h *DiaryHandler) InsertEntry(c *gin.Context) {
	var req types.DiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.diaryService.Insert(c.Request.Context(), req.Date, mealsFromRequest(req.Meals))
	if err != nil {
		c.JSON(diaryStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListEntries returns every diary entry, oldest first.
func (h *DiaryHandler) ListEntries(c *gin.Context) {
	entries, err := h.diaryService.List(c.Request.Context())
	if err != nil {
		c.JSON(diaryStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.DiaryListResponse{Diaries: entries})
}

// FindEntry looks up one entry by its date.
func (h *DiaryHandler) FindEntry(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	entry, err := h.diaryService.FindByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(diaryStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes an entry and all its meals.
func (h *DiaryHandler) DeleteEntry(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	if err := h.diaryService.DeleteByDate(c.Request.Context(), date); err != nil {
		c.JSON(diaryStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.DeleteResponse{
		Message: "diary entry removed",
		Date:    date,
	})
}

// EditEntry replaces the meal list of an existing entry.
func (h *DiaryHandler) EditEntry(c *gin.Context) {
	var req types.DiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.diaryService.ReplaceMeals(c.Request.Context(), req.Date, mealsFromRequest(req.Meals))
	if err != nil {
		c.JSON(diaryStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func mealsFromRequest(reqs []types.MealRequest) []model.Meal {
	meals := make([]model.Meal, 0, len(reqs))
	for _, r := range reqs {
		meals = append(meals, model.Meal{
			Type:       r.Type,
			Method:     r.Method,
			Assessment: r.Assessment,
			Acceptance: r.Acceptance,
			Comments:   r.Comments,
		})
	}
	return meals
}

func dateParam(c *gin.Context) (model.Date, bool) {
	raw := c.Query("data_registro")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data_registro query parameter is required"})
		return model.Date{}, false
	}
	date, err := model.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return model.Date{}, false
	}
	return date, true
}

// diaryStatus maps diary store errors onto the published status codes.
func diaryStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateDate):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
