package authors_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"curtaincall/internal/authors"
	"curtaincall/internal/genres"
	"curtaincall/internal/halls"
	"curtaincall/internal/performances"
	"curtaincall/internal/tickets"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&authors.Author{},
		&genres.Genre{},
		&halls.Hall{},
		&performances.Performance{},
		&tickets.Ticket{},
	))

	return db
}

func newTestService(t *testing.T, db *gorm.DB) authors.Service {
	t.Helper()
	return authors.NewService(authors.NewRepository(db))
}

func TestCreateAndGetAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	birthDate := time.Date(1860, time.January, 29, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateAuthor(ctx, authors.CreateAuthorRequest{
		FullName:  "Anton Chekhov",
		Biography: "Russian playwright and master of the short story.",
		BirthDate: &birthDate,
	})
	require.NoError(t, err)
	assert.Equal(t, "Anton Chekhov", created.FullName)

	fetched, err := svc.GetAuthorByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	require.NotNil(t, fetched.BirthDate)
	assert.True(t, fetched.BirthDate.Equal(birthDate))
}

func TestGetAuthorNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.GetAuthorByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, authors.ErrAuthorNotFound)
}

func TestUpdateAuthorPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateAuthor(ctx, authors.CreateAuthorRequest{
		FullName:  "Oscar Wilde",
		Biography: "Irish playwright.",
	})
	require.NoError(t, err)

	newBio := "Irish poet and playwright known for his social comedies."
	updated, err := svc.UpdateAuthor(ctx, uuid.MustParse(created.ID), authors.UpdateAuthorRequest{
		Biography: &newBio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Oscar Wilde", updated.FullName, "untouched fields must survive a partial update")
	assert.Equal(t, newBio, updated.Biography)
}

func TestGetAllAuthorsCountsPerformances(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	busy, err := svc.CreateAuthor(ctx, authors.CreateAuthorRequest{FullName: "William Shakespeare"})
	require.NoError(t, err)
	_, err = svc.CreateAuthor(ctx, authors.CreateAuthorRequest{FullName: "Henrik Ibsen"})
	require.NoError(t, err)

	genre := genres.Genre{Name: "Tragedy"}
	require.NoError(t, db.Create(&genre).Error)
	hall := halls.Hall{Name: "Main Stage", Capacity: 100}
	require.NoError(t, db.Create(&hall).Error)
	performance := performances.Performance{
		Title:           "Hamlet",
		Date:            time.Now().Add(30 * 24 * time.Hour),
		DurationMinutes: 180,
		BasePrice:       120,
		AuthorID:        uuid.MustParse(busy.ID),
		GenreID:         genre.ID,
		HallID:          hall.ID,
	}
	require.NoError(t, db.Create(&performance).Error)

	items, err := svc.GetAllAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	counts := map[string]int{}
	for _, item := range items {
		counts[item.FullName] = item.PerformancesCount
	}
	assert.Equal(t, 1, counts["William Shakespeare"])
	assert.Equal(t, 0, counts["Henrik Ibsen"])
}

func TestDeleteAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateAuthor(ctx, authors.CreateAuthorRequest{FullName: "Henrik Ibsen"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAuthor(ctx, uuid.MustParse(created.ID)))

	_, err = svc.GetAuthorByID(ctx, uuid.MustParse(created.ID))
	assert.ErrorIs(t, err, authors.ErrAuthorNotFound)

	assert.ErrorIs(t, svc.DeleteAuthor(ctx, uuid.New()), authors.ErrAuthorNotFound)
}

func TestDeleteAuthorWithPerformances(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateAuthor(ctx, authors.CreateAuthorRequest{FullName: "William Shakespeare"})
	require.NoError(t, err)

	genre := genres.Genre{Name: "Tragedy"}
	require.NoError(t, db.Create(&genre).Error)
	hall := halls.Hall{Name: "Main Stage", Capacity: 100}
	require.NoError(t, db.Create(&hall).Error)
	performance := performances.Performance{
		Title:           "Macbeth",
		Date:            time.Now().Add(30 * 24 * time.Hour),
		DurationMinutes: 160,
		BasePrice:       110,
		AuthorID:        uuid.MustParse(created.ID),
		GenreID:         genre.ID,
		HallID:          hall.ID,
	}
	require.NoError(t, db.Create(&performance).Error)

	assert.ErrorIs(t, svc.DeleteAuthor(ctx, uuid.MustParse(created.ID)), authors.ErrAuthorHasWorkload)

	_, err = svc.GetAuthorByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err, "restricted delete must leave the author intact")
}
