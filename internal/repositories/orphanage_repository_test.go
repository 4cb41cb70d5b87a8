package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"happy/internal/models/db_models"
	"happy/internal/testutil"
)

// newMockOrphanageRepository runs the repository against a mocked postgres connection.
func newMockOrphanageRepository(t *testing.T) (OrphanageRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewOrphanageRepository(gormDB), mock, mockDB
}

func sampleOrphanage(paths ...string) *db_models.Orphanage {
	images := make([]db_models.Image, 0, len(paths))
	for _, p := range paths {
		images = append(images, db_models.Image{Path: p})
	}
	return &db_models.Orphanage{
		Name:           "Lar Feliz",
		Latitude:       decimal.RequireFromString("-20.62"),
		Longitude:      decimal.RequireFromString("-49.65"),
		About:          "desc",
		Instructions:   "bring ID",
		OpeningHours:   "9-17",
		OpenOnWeekends: true,
		Images:         images,
	}
}

func TestOrphanageRepository_GetByIDWithImages_Postgres(t *testing.T) {
	t.Run("returns nil when missing", func(t *testing.T) {
		repo, mock, mockDB := newMockOrphanageRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orphanages" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(99), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		orphanage, err := repo.GetByIDWithImages(context.Background(), 99)

		assert.NoError(t, err)
		assert.Nil(t, orphanage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loads images of the orphanage", func(t *testing.T) {
		repo, mock, mockDB := newMockOrphanageRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orphanages" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(1), 1).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "latitude", "longitude", "about", "instructions",
				"opening_hours", "open_on_weekends", "created_at", "updated_at",
			}).AddRow(int64(1), "Lar Feliz", "-20.6200000", "-49.6500000", "desc", "bring ID", "9-17", true, int64(0), int64(0)))
		mock.ExpectQuery(`SELECT \* FROM "images" WHERE "images"."orphanage_id" = \$1 ORDER BY id`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "path", "orphanage_id"}).
				AddRow(int64(1), "fileA.jpg", int64(1)).
				AddRow(int64(2), "fileB.jpg", int64(1)))

		orphanage, err := repo.GetByIDWithImages(context.Background(), 1)

		require.NoError(t, err)
		require.NotNil(t, orphanage)
		assert.Equal(t, "Lar Feliz", orphanage.Name)
		assert.True(t, orphanage.Latitude.Equal(decimal.RequireFromString("-20.62")))
		require.Len(t, orphanage.Images, 2)
		assert.Equal(t, "fileB.jpg", orphanage.Images[1].Path)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockOrphanageRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orphanages"`).
			WillReturnError(errors.New("connection reset"))

		orphanage, err := repo.GetByIDWithImages(context.Background(), 1)

		assert.Error(t, err)
		assert.Nil(t, orphanage)
	})
}

func TestOrphanageRepository_ListWithImages_Postgres(t *testing.T) {
	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo, mock, mockDB := newMockOrphanageRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orphanages" ORDER BY id`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		orphanages, err := repo.ListWithImages(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, orphanages)
		assert.Empty(t, orphanages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockOrphanageRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orphanages" ORDER BY id`).
			WillReturnError(errors.New("too many connections"))

		orphanages, err := repo.ListWithImages(context.Background())

		assert.Error(t, err)
		assert.Nil(t, orphanages)
	})
}

func TestOrphanageRepository_CreateOrphanage_SQLite(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewOrphanageRepository(db)
	ctx := context.Background()

	orphanage := sampleOrphanage("fileA.jpg", "fileB.jpg")
	id, err := repo.CreateOrphanage(ctx, orphanage)

	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Equal(t, id, orphanage.ID)
	for _, image := range orphanage.Images {
		assert.Positive(t, image.ID)
		assert.Equal(t, id, image.OrphanageID)
	}

	loaded, err := repo.GetByIDWithImages(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Latitude.Equal(orphanage.Latitude))
	assert.True(t, loaded.Longitude.Equal(orphanage.Longitude))
	assert.True(t, loaded.OpenOnWeekends)
	assert.Positive(t, loaded.CreatedAt)
	require.Len(t, loaded.Images, 2)
	assert.Equal(t, "fileA.jpg", loaded.Images[0].Path)
}

func TestOrphanageRepository_ListWithImages_SQLite(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewOrphanageRepository(db)
	ctx := context.Background()

	_, err := repo.CreateOrphanage(ctx, sampleOrphanage("a.jpg"))
	require.NoError(t, err)
	_, err = repo.CreateOrphanage(ctx, sampleOrphanage())
	require.NoError(t, err)

	orphanages, err := repo.ListWithImages(ctx)

	require.NoError(t, err)
	require.Len(t, orphanages, 2)
	assert.Len(t, orphanages[0].Images, 1)
	assert.Empty(t, orphanages[1].Images)
}

func TestOrphanageRepository_DeleteCascadesImages_SQLite(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewOrphanageRepository(db)
	ctx := context.Background()

	id, err := repo.CreateOrphanage(ctx, sampleOrphanage("a.jpg", "b.jpg"))
	require.NoError(t, err)

	require.NoError(t, db.Delete(&db_models.Orphanage{}, id).Error)

	var remaining int64
	require.NoError(t, db.Model(&db_models.Image{}).Where("orphanage_id = ?", id).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestOrphanageRepository_ImageRequiresOrphanage_SQLite(t *testing.T) {
	db := testutil.NewTestDB(t)

	err := db.Create(&db_models.Image{Path: "stray.jpg", OrphanageID: 12345}).Error

	assert.Error(t, err)
}
