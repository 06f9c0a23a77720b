package seats_test

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

func newTestService(t *testing.T, db *gorm.DB) seats.Service {
	t.Helper()
	return seats.NewService(seats.NewRepository(db), halls.NewRepository(db))
}

func createHall(t *testing.T, db *gorm.DB, capacity int) *halls.Hall {
	t.Helper()
	hall := halls.Hall{Name: "Hall " + uuid.NewString(), Capacity: capacity}
	require.NoError(t, db.Create(&hall).Error)
	return &hall
}

func TestCreateSeat(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	hall := createHall(t, db, 10)

	seat, err := svc.CreateSeat(ctx, hall.ID, seats.CreateSeatRequest{Row: 1, Number: 1, IsVIP: true})
	require.NoError(t, err)
	assert.Equal(t, 1, seat.Row)
	assert.True(t, seat.IsVIP)

	_, err = svc.CreateSeat(ctx, uuid.New(), seats.CreateSeatRequest{Row: 1, Number: 1})
	assert.ErrorIs(t, err, seats.ErrHallNotFound)
}

func TestCreateSeatBlock(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	hall := createHall(t, db, 12)

	block, err := svc.CreateSeatBlock(ctx, hall.ID, seats.CreateSeatBlockRequest{
		Rows:        3,
		SeatsPerRow: 4,
		VIPRows:     []int{1},
	})
	require.NoError(t, err)
	require.Len(t, block, 12)

	vipCount := 0
	for _, seat := range block {
		if seat.IsVIP {
			vipCount++
			assert.Equal(t, 1, seat.Row, "only the first row is flagged VIP")
		}
	}
	assert.Equal(t, 4, vipCount)

	vip, err := svc.GetVIPSeatsForHall(ctx, hall.ID)
	require.NoError(t, err)
	assert.Len(t, vip, 4)

	all, err := svc.GetSeatsForHall(ctx, hall.ID)
	require.NoError(t, err)
	require.Len(t, all, 12)

	// Ordered by row then number
	assert.Equal(t, 1, all[0].Row)
	assert.Equal(t, 1, all[0].Number)
	assert.Equal(t, 3, all[11].Row)
	assert.Equal(t, 4, all[11].Number)
}

func TestDeleteSeat(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	hall := createHall(t, db, 5)
	seat, err := svc.CreateSeat(ctx, hall.ID, seats.CreateSeatRequest{Row: 1, Number: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSeat(ctx, uuid.MustParse(seat.ID)))
	assert.ErrorIs(t, svc.DeleteSeat(ctx, uuid.MustParse(seat.ID)), seats.ErrSeatNotFound)
}

func TestDeleteSeatWithTickets(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	hall := createHall(t, db, 5)
	seat, err := svc.CreateSeat(ctx, hall.ID, seats.CreateSeatRequest{Row: 1, Number: 1})
	require.NoError(t, err)

	author := authors.Author{FullName: "Anton Chekhov"}
	require.NoError(t, db.Create(&author).Error)
	genre := genres.Genre{Name: "Drama"}
	require.NoError(t, db.Create(&genre).Error)
	performance := performances.Performance{
		Title:           "Uncle Vanya",
		Date:            time.Now().Add(25 * 24 * time.Hour),
		DurationMinutes: 140,
		BasePrice:       75,
		AuthorID:        author.ID,
		GenreID:         genre.ID,
		HallID:          hall.ID,
	}
	require.NoError(t, db.Create(&performance).Error)

	ticket := tickets.Ticket{
		PerformanceID: performance.ID,
		SeatID:        uuid.MustParse(seat.ID),
		Price:         75,
	}
	require.NoError(t, db.Create(&ticket).Error)

	assert.ErrorIs(t, svc.DeleteSeat(ctx, uuid.MustParse(seat.ID)), seats.ErrSeatHasTickets)
}
