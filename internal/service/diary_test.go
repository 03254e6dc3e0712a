package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diarioalimentar/backend/internal/model"
)

func setupDiaryDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := db.AutoMigrate(&model.DiaryEntry{}, &model.Meal{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func sampleMeals() []model.Meal {
	return []model.Meal{
		{Type: "LANCHE_MANHA", Method: "BLW", Assessment: "SUCESSO", Acceptance: "OTIMO", Comments: ""},
		{Type: "ALMOCO", Method: "COLHER", Assessment: "SUCESSO", Acceptance: "BOM", Comments: "comeu tudo"},
	}
}

func TestInsertAndFindByDate(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))
	ctx := context.Background()
	date := model.NewDate(2024, 1, 10)

	entry, err := svc.Insert(ctx, date, sampleMeals())
	require.NoError(t, err)
	assert.Equal(t, date.String(), entry.Date.String())
	assert.Len(t, entry.Meals, 2)

	found, err := svc.FindByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, date.String(), found.Date.String())
	assert.Len(t, found.Meals, 2)
	assert.Equal(t, "LANCHE_MANHA", found.Meals[0].Type)
}

func TestInsertDuplicateDate(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))
	ctx := context.Background()
	date := model.NewDate(2024, 1, 10)

	_, err := svc.Insert(ctx, date, sampleMeals())
	require.NoError(t, err)

	_, err = svc.Insert(ctx, date, sampleMeals())
	assert.ErrorIs(t, err, ErrDuplicateDate)
}

func TestInsertWithoutMeals(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))

	entry, err := svc.Insert(context.Background(), model.NewDate(2024, 2, 1), nil)
	require.NoError(t, err)
	assert.NotNil(t, entry.Meals)
	assert.Empty(t, entry.Meals)
}

func TestInsertCommentsTooLong(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))

	meals := []model.Meal{{Type: "JANTAR", Comments: strings.Repeat("a", model.MaxCommentsLength+1)}}
	_, err := svc.Insert(context.Background(), model.NewDate(2024, 2, 2), meals)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFindByDateNotFound(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))

	_, err := svc.FindByDate(context.Background(), model.NewDate(2030, 12, 25))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteByDateCascades(t *testing.T) {
	db := setupDiaryDB(t)
	svc := NewDiaryService(db)
	ctx := context.Background()
	date := model.NewDate(2024, 1, 10)

	_, err := svc.Insert(ctx, date, sampleMeals())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByDate(ctx, date))

	_, err = svc.FindByDate(ctx, date)
	assert.ErrorIs(t, err, ErrNotFound)

	var mealCount int64
	require.NoError(t, db.Model(&model.Meal{}).Count(&mealCount).Error)
	assert.Zero(t, mealCount)
}

func TestDeleteByDateNotFound(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))

	err := svc.DeleteByDate(context.Background(), model.NewDate(2030, 1, 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceMealsFullReplace(t *testing.T) {
	db := setupDiaryDB(t)
	svc := NewDiaryService(db)
	ctx := context.Background()
	date := model.NewDate(2024, 1, 10)

	_, err := svc.Insert(ctx, date, sampleMeals())
	require.NoError(t, err)

	newMeals := []model.Meal{
		{Type: "JANTAR", Method: "BLW", Assessment: "RECUSA", Acceptance: "RUIM", Comments: "cuspiu"},
	}
	entry, err := svc.ReplaceMeals(ctx, date, newMeals)
	require.NoError(t, err)

	// The old list must be fully gone, only the new one present.
	require.Len(t, entry.Meals, 1)
	assert.Equal(t, "JANTAR", entry.Meals[0].Type)
	assert.Equal(t, "RECUSA", entry.Meals[0].Assessment)

	var mealCount int64
	require.NoError(t, db.Model(&model.Meal{}).Count(&mealCount).Error)
	assert.EqualValues(t, 1, mealCount)
}

func TestReplaceMealsWithEmptyList(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))
	ctx := context.Background()
	date := model.NewDate(2024, 1, 10)

	_, err := svc.Insert(ctx, date, sampleMeals())
	require.NoError(t, err)

	entry, err := svc.ReplaceMeals(ctx, date, nil)
	require.NoError(t, err)
	assert.Empty(t, entry.Meals)
}

func TestReplaceMealsNotFound(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))

	_, err := svc.ReplaceMeals(context.Background(), model.NewDate(2030, 1, 1), sampleMeals())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersByDate(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))
	ctx := context.Background()

	// Inserted out of order on purpose.
	for _, d := range []model.Date{
		model.NewDate(2024, 3, 15),
		model.NewDate(2024, 1, 10),
		model.NewDate(2024, 2, 20),
	} {
		_, err := svc.Insert(ctx, d, nil)
		require.NoError(t, err)
	}

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-01-10", entries[0].Date.String())
	assert.Equal(t, "2024-02-20", entries[1].Date.String())
	assert.Equal(t, "2024-03-15", entries[2].Date.String())
}

func TestListEmpty(t *testing.T) {
	svc := NewDiaryService(setupDiaryDB(t))

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
