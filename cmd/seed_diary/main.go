package main

import (
	"context"
	"log"

	"github.com/diarioalimentar/backend/config"
	"github.com/diarioalimentar/backend/internal/database"
	"github.com/diarioalimentar/backend/internal/model"
	"github.com/diarioalimentar/backend/internal/service"
)

// Seeds a handful of diary entries for local development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	diaryService := service.NewDiaryService(db)
	ctx := context.Background()

	entries := []struct {
		date  model.Date
		meals []model.Meal
	}{
		{
			date: model.NewDate(2024, 1, 10),
			meals: []model.Meal{
				{Type: "LANCHE_MANHA", Method: "BLW", Assessment: "SUCESSO", Acceptance: "OTIMO", Comments: ""},
				{Type: "ALMOCO", Method: "COLHER", Assessment: "SUCESSO", Acceptance: "BOM", Comments: "comeu quase tudo"},
			},
		},
		{
			date: model.NewDate(2024, 1, 11),
			meals: []model.Meal{
				{Type: "JANTAR", Method: "BLW", Assessment: "RECUSA", Acceptance: "RUIM", Comments: "cuspiu o brocolis"},
			},
		},
		{
			date:  model.NewDate(2024, 1, 12),
			meals: []model.Meal{},
		},
	}

	for _, e := range entries {
		if _, err := diaryService.Insert(ctx, e.date, e.meals); err != nil {
			log.Printf("Skipping %s: %v", e.date, err)
			continue
		}
		log.Printf("Seeded diary entry for %s", e.date)
	}
}
