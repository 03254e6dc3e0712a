package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/diarioalimentar/backend/internal/model"
	"gorm.io/gorm"
)

// DiaryService owns the diary/meal aggregate: entries keyed by date, each
// owning its meals. Edits replace the meal list wholesale.
type DiaryService struct {
	db *gorm.DB
}

// NewDiaryService creates a new DiaryService instance
func NewDiaryService(db *gorm.DB) *DiaryService {
	return &DiaryService{db: db}
}

// Insert creates a diary entry for date with the given meals. An empty meal
// list is legal. Returns ErrDuplicateDate when an entry for the date already
// exists.
func (s *DiaryService) Insert(ctx context.Context, date model.Date, meals []model.Meal) (*model.DiaryEntry, error) {
	if err := validateMeals(meals); err != nil {
		return nil, err
	}

	entry := &model.DiaryEntry{Date: date, Meals: meals}
	log.Printf("inserting diary entry for %s with %d meals", date, len(meals))

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			log.Printf("duplicate diary entry for %s", date)
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDate, date)
		}
		log.Printf("failed to insert diary entry for %s: %v", date, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if entry.Meals == nil {
		entry.Meals = []model.Meal{}
	}
	return entry, nil
}

// List returns every diary entry with its meals, ordered by date. An empty
// store yields an empty slice, not an error.
func (s *DiaryService) List(ctx context.Context) ([]model.DiaryEntry, error) {
	log.Printf("listing diary entries")

	var entries []model.DiaryEntry
	err := s.db.WithContext(ctx).
		Preload("Meals").
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		log.Printf("failed to list diary entries: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	for i := range entries {
		if entries[i].Meals == nil {
			entries[i].Meals = []model.Meal{}
		}
	}
	return entries, nil
}

// FindByDate returns the entry for date or ErrNotFound.
func (s *DiaryService) FindByDate(ctx context.Context, date model.Date) (*model.DiaryEntry, error) {
	log.Printf("looking up diary entry for %s", date)

	var entry model.DiaryEntry
	err := s.db.WithContext(ctx).
		Preload("Meals").
		First(&entry, "date = ?", date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("no diary entry for %s", date)
			return nil, fmt.Errorf("%w: %s", ErrNotFound, date)
		}
		log.Printf("failed to look up diary entry for %s: %v", date, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if entry.Meals == nil {
		entry.Meals = []model.Meal{}
	}
	return &entry, nil
}

// DeleteByDate removes the entry for date and every meal it owns as one
// transaction. The existence check runs first so a missing entry is reported
// as ErrNotFound instead of faulting while enumerating its meals.
func (s *DiaryService) DeleteByDate(ctx context.Context, date model.Date) error {
	log.Printf("deleting diary entry for %s", date)

	var entry model.DiaryEntry
	if err := s.db.WithContext(ctx).First(&entry, "date = ?", date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("no diary entry to delete for %s", date)
			return fmt.Errorf("%w: %s", ErrNotFound, date)
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("diary_date = ?", date).Delete(&model.Meal{}).Error; err != nil {
			return err
		}
		return tx.Where("date = ?", date).Delete(&model.DiaryEntry{}).Error
	})
	if err != nil {
		log.Printf("failed to delete diary entry for %s: %v", date, err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Printf("deleted diary entry for %s", date)
	return nil
}

// ReplaceMeals swaps the entry's meal list for newMeals: every existing meal
// is deleted and the new list inserted inside a single transaction, so a
// failure leaves the previous list intact. Partial edits are not supported.
func (s *DiaryService) ReplaceMeals(ctx context.Context, date model.Date, newMeals []model.Meal) (*model.DiaryEntry, error) {
	if err := validateMeals(newMeals); err != nil {
		return nil, err
	}

	log.Printf("replacing meals for %s with %d meals", date, len(newMeals))

	var entry model.DiaryEntry
	if err := s.db.WithContext(ctx).First(&entry, "date = ?", date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("no diary entry to edit for %s", date)
			return nil, fmt.Errorf("%w: %s", ErrNotFound, date)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("diary_date = ?", date).Delete(&model.Meal{}).Error; err != nil {
			return err
		}
		if len(newMeals) == 0 {
			return nil
		}
		for i := range newMeals {
			newMeals[i].ID = 0
			newMeals[i].DiaryDate = date
		}
		return tx.Create(&newMeals).Error
	})
	if err != nil {
		log.Printf("failed to replace meals for %s: %v", date, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return s.FindByDate(ctx, date)
}

func validateMeals(meals []model.Meal) error {
	for _, meal := range meals {
		if len(meal.Comments) > model.MaxCommentsLength {
			return fmt.Errorf("%w: comments longer than %d characters", ErrValidation, model.MaxCommentsLength)
		}
	}
	return nil
}
