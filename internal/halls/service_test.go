package halls_test

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
	"curtaincall/internal/seats"
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
		&seats.Seat{},
		&performances.Performance{},
		&tickets.Ticket{},
	))

	return db
}

func newTestService(t *testing.T, db *gorm.DB) halls.Service {
	t.Helper()
	return halls.NewService(halls.NewRepository(db))
}

func TestCreateAndGetHall(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateHall(ctx, halls.CreateHallRequest{
		Name:        "Main Stage",
		Capacity:    200,
		Description: "The principal hall.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), created.SeatCount)

	for number := 1; number <= 3; number++ {
		seat := seats.Seat{HallID: uuid.MustParse(created.ID), Row: 1, Number: number}
		require.NoError(t, db.Create(&seat).Error)
	}

	fetched, err := svc.GetHallByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Main Stage", fetched.Name)
	assert.Equal(t, int64(3), fetched.SeatCount)

	_, err = svc.GetHallByID(ctx, uuid.New())
	assert.ErrorIs(t, err, halls.ErrHallNotFound)
}

func TestUpdateHall(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateHall(ctx, halls.CreateHallRequest{Name: "Chamber Hall", Capacity: 60})
	require.NoError(t, err)

	newCapacity := 80
	updated, err := svc.UpdateHall(ctx, uuid.MustParse(created.ID), halls.UpdateHallRequest{
		Capacity: &newCapacity,
	})
	require.NoError(t, err)
	assert.Equal(t, "Chamber Hall", updated.Name)
	assert.Equal(t, 80, updated.Capacity)
}

func TestDeleteHall(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateHall(ctx, halls.CreateHallRequest{Name: "Studio", Capacity: 30})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHall(ctx, uuid.MustParse(created.ID)))
	assert.ErrorIs(t, svc.DeleteHall(ctx, uuid.MustParse(created.ID)), halls.ErrHallNotFound)
}

func TestDeleteHallWithSeats(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateHall(ctx, halls.CreateHallRequest{Name: "Main Stage", Capacity: 100})
	require.NoError(t, err)

	seat := seats.Seat{HallID: uuid.MustParse(created.ID), Row: 1, Number: 1}
	require.NoError(t, db.Create(&seat).Error)

	assert.ErrorIs(t, svc.DeleteHall(ctx, uuid.MustParse(created.ID)), halls.ErrHallInUse)
}

func TestDeleteHallWithPerformances(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateHall(ctx, halls.CreateHallRequest{Name: "Main Stage", Capacity: 100})
	require.NoError(t, err)

	author := authors.Author{FullName: "Anton Chekhov"}
	require.NoError(t, db.Create(&author).Error)
	genre := genres.Genre{Name: "Drama"}
	require.NoError(t, db.Create(&genre).Error)
	performance := performances.Performance{
		Title:           "Three Sisters",
		Date:            time.Now().Add(15 * 24 * time.Hour),
		DurationMinutes: 160,
		BasePrice:       85,
		AuthorID:        author.ID,
		GenreID:         genre.ID,
		HallID:          uuid.MustParse(created.ID),
	}
	require.NoError(t, db.Create(&performance).Error)

	assert.ErrorIs(t, svc.DeleteHall(ctx, uuid.MustParse(created.ID)), halls.ErrHallInUse)
}
