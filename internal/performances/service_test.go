package performances_test

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

type fixtures struct {
	author authors.Author
	genre  genres.Genre
	hall   halls.Hall
}

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

func newTestService(t *testing.T, db *gorm.DB) performances.Service {
	t.Helper()
	return performances.NewService(performances.NewRepository(db))
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	f := fixtures{
		author: authors.Author{FullName: "Anton Chekhov"},
		genre:  genres.Genre{Name: "Drama " + uuid.NewString()},
		hall:   halls.Hall{Name: "Hall " + uuid.NewString(), Capacity: 100},
	}
	require.NoError(t, db.Create(&f.author).Error)
	require.NoError(t, db.Create(&f.genre).Error)
	require.NoError(t, db.Create(&f.hall).Error)
	return f
}

func createRequest(f fixtures, title string, date time.Time) performances.CreatePerformanceRequest {
	return performances.CreatePerformanceRequest{
		Title:           title,
		Description:     "A play.",
		Date:            date,
		DurationMinutes: 150,
		BasePrice:       90,
		AuthorID:        f.author.ID.String(),
		GenreID:         f.genre.ID.String(),
		HallID:          f.hall.ID.String(),
	}
}

func TestCreatePerformance(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	f := seedFixtures(t, db)

	detail, err := svc.CreatePerformance(ctx, createRequest(f, "The Seagull", time.Now().Add(30*24*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "The Seagull", detail.Title)
	require.NotNil(t, detail.Author)
	assert.Equal(t, "Anton Chekhov", detail.Author.FullName)
	require.NotNil(t, detail.Hall)
	assert.Equal(t, f.hall.Name, detail.Hall.Name)
	assert.Equal(t, int64(0), detail.TotalTickets)
}

func TestCreatePerformanceUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	f := seedFixtures(t, db)
	date := time.Now().Add(30 * 24 * time.Hour)

	req := createRequest(f, "Hamlet", date)
	req.AuthorID = uuid.NewString()
	_, err := svc.CreatePerformance(ctx, req)
	assert.ErrorIs(t, err, performances.ErrAuthorNotFound)

	req = createRequest(f, "Hamlet", date)
	req.GenreID = uuid.NewString()
	_, err = svc.CreatePerformance(ctx, req)
	assert.ErrorIs(t, err, performances.ErrGenreNotFound)

	req = createRequest(f, "Hamlet", date)
	req.HallID = uuid.NewString()
	_, err = svc.CreatePerformance(ctx, req)
	assert.ErrorIs(t, err, performances.ErrHallNotFound)
}

func TestGetPerformanceByIDCountsTickets(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	f := seedFixtures(t, db)
	detail, err := svc.CreatePerformance(ctx, createRequest(f, "The Cherry Orchard", time.Now().Add(20*24*time.Hour)))
	require.NoError(t, err)
	performanceID := uuid.MustParse(detail.ID)

	seat := seats.Seat{HallID: f.hall.ID, Row: 1, Number: 1}
	require.NoError(t, db.Create(&seat).Error)
	otherSeat := seats.Seat{HallID: f.hall.ID, Row: 1, Number: 2}
	require.NoError(t, db.Create(&otherSeat).Error)

	now := time.Now()
	soldTicket := tickets.Ticket{PerformanceID: performanceID, SeatID: seat.ID, Price: 90, IsSold: true, PurchasedAt: &now}
	require.NoError(t, db.Create(&soldTicket).Error)
	openTicket := tickets.Ticket{PerformanceID: performanceID, SeatID: otherSeat.ID, Price: 90}
	require.NoError(t, db.Create(&openTicket).Error)

	fetched, err := svc.GetPerformanceByID(ctx, performanceID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetched.TotalTickets)
	assert.Equal(t, int64(1), fetched.SoldTickets)
	assert.Equal(t, int64(1), fetched.AvailableTickets)

	_, err = svc.GetPerformanceByID(ctx, uuid.New())
	assert.ErrorIs(t, err, performances.ErrPerformanceNotFound)
}

func TestGetUpcomingPerformances(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	f := seedFixtures(t, db)

	past := performances.Performance{
		Title:           "Closed Run",
		Date:            time.Now().Add(-48 * time.Hour),
		DurationMinutes: 120,
		BasePrice:       50,
		AuthorID:        f.author.ID,
		GenreID:         f.genre.ID,
		HallID:          f.hall.ID,
	}
	require.NoError(t, db.Create(&past).Error)

	_, err := svc.CreatePerformance(ctx, createRequest(f, "Future Premiere", time.Now().Add(10*24*time.Hour)))
	require.NoError(t, err)

	upcoming, err := svc.GetUpcomingPerformances(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Future Premiere", upcoming[0].Title)

	all, err := svc.GetAllPerformances(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetPerformancesByRelatedEntity(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	f := seedFixtures(t, db)
	other := seedFixtures(t, db)

	_, err := svc.CreatePerformance(ctx, createRequest(f, "The Seagull", time.Now().Add(10*24*time.Hour)))
	require.NoError(t, err)
	_, err = svc.CreatePerformance(ctx, createRequest(other, "Ivanov", time.Now().Add(12*24*time.Hour)))
	require.NoError(t, err)

	byGenre, err := svc.GetPerformancesByGenre(ctx, f.genre.ID)
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "The Seagull", byGenre[0].Title)

	byAuthor, err := svc.GetPerformancesByAuthor(ctx, other.author.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "Ivanov", byAuthor[0].Title)

	byHall, err := svc.GetPerformancesByHall(ctx, f.hall.ID)
	require.NoError(t, err)
	require.Len(t, byHall, 1)
	assert.Equal(t, "The Seagull", byHall[0].Title)
}

func TestUpdatePerformance(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	f := seedFixtures(t, db)
	detail, err := svc.CreatePerformance(ctx, createRequest(f, "A Doll's House", time.Now().Add(30*24*time.Hour)))
	require.NoError(t, err)

	newPrice := 130.0
	updated, err := svc.UpdatePerformance(ctx, uuid.MustParse(detail.ID), performances.UpdatePerformanceRequest{
		BasePrice: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "A Doll's House", updated.Title)
	assert.Equal(t, 130.0, updated.BasePrice)

	_, err = svc.UpdatePerformance(ctx, uuid.New(), performances.UpdatePerformanceRequest{BasePrice: &newPrice})
	assert.ErrorIs(t, err, performances.ErrPerformanceNotFound)
}

func TestDeletePerformance(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	f := seedFixtures(t, db)
	detail, err := svc.CreatePerformance(ctx, createRequest(f, "Ghosts", time.Now().Add(30*24*time.Hour)))
	require.NoError(t, err)
	performanceID := uuid.MustParse(detail.ID)

	require.NoError(t, svc.DeletePerformance(ctx, performanceID))
	assert.ErrorIs(t, svc.DeletePerformance(ctx, performanceID), performances.ErrPerformanceNotFound)
}

func TestDeletePerformanceWithTickets(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	f := seedFixtures(t, db)
	detail, err := svc.CreatePerformance(ctx, createRequest(f, "Hedda Gabler", time.Now().Add(30*24*time.Hour)))
	require.NoError(t, err)
	performanceID := uuid.MustParse(detail.ID)

	seat := seats.Seat{HallID: f.hall.ID, Row: 1, Number: 1}
	require.NoError(t, db.Create(&seat).Error)
	ticket := tickets.Ticket{PerformanceID: performanceID, SeatID: seat.ID, Price: 90}
	require.NoError(t, db.Create(&ticket).Error)

	assert.ErrorIs(t, svc.DeletePerformance(ctx, performanceID), performances.ErrHasTickets)
}
