package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/diarioalimentar/backend/internal/database"
	"github.com/diarioalimentar/backend/internal/model"
	"github.com/diarioalimentar/backend/internal/service"
)

// setupPostgres starts a throwaway postgres container and returns a migrated
// connection. Skipped in short mode and when no container runtime is around.
func setupPostgres(t *testing.T) *gorm.DB {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf(
		"host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable",
		host, port.Port(),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	return db
}

func TestDiaryAggregateOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	svc := service.NewDiaryService(db)
	ctx := context.Background()
	date := model.NewDate(2024, 1, 10)

	meals := []model.Meal{
		{Type: "LANCHE_MANHA", Method: "BLW", Assessment: "SUCESSO", Acceptance: "OTIMO"},
		{Type: "ALMOCO", Method: "COLHER", Assessment: "SUCESSO", Acceptance: "BOM"},
	}

	_, err := svc.Insert(ctx, date, meals)
	require.NoError(t, err)

	// The date uniqueness constraint must hold on the real dialect too.
	_, err = svc.Insert(ctx, date, nil)
	assert.ErrorIs(t, err, service.ErrDuplicateDate)

	entry, err := svc.FindByDate(ctx, date)
	require.NoError(t, err)
	assert.Len(t, entry.Meals, 2)

	// Replace is all-or-nothing: afterwards exactly the new list exists.
	replaced, err := svc.ReplaceMeals(ctx, date, []model.Meal{
		{Type: "JANTAR", Method: "BLW", Assessment: "RECUSA", Acceptance: "RUIM"},
	})
	require.NoError(t, err)
	require.Len(t, replaced.Meals, 1)
	assert.Equal(t, "JANTAR", replaced.Meals[0].Type)

	var mealCount int64
	require.NoError(t, db.Model(&model.Meal{}).Count(&mealCount).Error)
	assert.EqualValues(t, 1, mealCount)

	require.NoError(t, svc.DeleteByDate(ctx, date))
	_, err = svc.FindByDate(ctx, date)
	assert.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, db.Model(&model.Meal{}).Count(&mealCount).Error)
	assert.Zero(t, mealCount)
}
