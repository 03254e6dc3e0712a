package database

import (
	"log"

	"github.com/diarioalimentar/backend/internal/model"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date. The aggregate is two tables:
// diary entries keyed by date and meals referencing their owning entry.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running migrations")
	return db.AutoMigrate(
		&model.DiaryEntry{},
		&model.Meal{},
	)
}
