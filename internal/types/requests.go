package types

import "github.com/diarioalimentar/backend/internal/model"

// MealRequest carries one meal on insert/edit requests. Field names follow
// the published wire format.
type MealRequest struct {
	Type       string `json:"tipo"`
	Method     string `json:"metodo"`
	Assessment string `json:"avaliacao"`
	Acceptance string `json:"aceitacao"`
	Comments   string `json:"comentarios"`
}

// DiaryRequest is the body of /inserir_diario and /editar_diario.
type DiaryRequest struct {
	Date  model.Date    `json:"data_registro" binding:"required"`
	Meals []MealRequest `json:"refeicoes"`
}

// DiaryListResponse wraps the full listing of diary entries.
type DiaryListResponse struct {
	Diaries []model.DiaryEntry `json:"diarios"`
}

// DeleteResponse confirms a removal and echoes the deleted date.
type DeleteResponse struct {
	Message string     `json:"message"`
	Date    model.Date `json:"data_registro"`
}

// TranslationResponse is the body returned by /traduzir_texto.
type TranslationResponse struct {
	TranslatedText string `json:"texto_traduzido"`
}
