package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diarioalimentar/backend/internal/service"
	"github.com/diarioalimentar/backend/internal/types"
)

// TranslationHandler exposes the translation client directly.
type TranslationHandler struct {
	translator    service.Translator
	sourceLocale  string
	defaultTarget string
}

// NewTranslationHandler creates a new TranslationHandler instance
func NewTranslationHandler(translator service.Translator, sourceLocale, defaultTarget string) *TranslationHandler {
	return &TranslationHandler{
		translator:    translator,
		sourceLocale:  sourceLocale,
		defaultTarget: defaultTarget,
	}
}

// RegisterRoutes wires the translation route.
func (h *TranslationHandler) RegisterRoutes(router *gin.Engine, limiter gin.HandlerFunc) {
	router.GET("/traduzir_texto", limiter, h.TranslateText)
}

// TranslateText translates free text between the given locales.
func (h *TranslationHandler) TranslateText(c *gin.Context) {
	text := c.Query("texto")
	source := c.DefaultQuery("idioma_origem", h.sourceLocale)
	target := c.DefaultQuery("idioma_destino", h.defaultTarget)

	translated, err := h.translator.Translate(c.Request.Context(), text, source, target)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.TranslationResponse{TranslatedText: translated})
}
