package tickets

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
		&Ticket{},
	))

	return db
}

func newTestService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	return NewService(
		NewRepository(db),
		performances.NewRepository(db),
		seats.NewRepository(db),
		nil,
		nil,
	)
}

// seedPerformance creates a hall with the given layout and one performance
// in it. VIP rows come first.
func seedPerformance(t *testing.T, db *gorm.DB, rows, seatsPerRow, vipRows int, basePrice float64, date time.Time) *performances.Performance {
	t.Helper()

	author := authors.Author{FullName: "Anton Chekhov"}
	require.NoError(t, db.Create(&author).Error)

	genre := genres.Genre{Name: "Drama " + uuid.NewString()}
	require.NoError(t, db.Create(&genre).Error)

	hall := halls.Hall{Name: "Hall " + uuid.NewString(), Capacity: rows * seatsPerRow}
	require.NoError(t, db.Create(&hall).Error)

	for row := 1; row <= rows; row++ {
		for number := 1; number <= seatsPerRow; number++ {
			seat := seats.Seat{
				HallID: hall.ID,
				Row:    row,
				Number: number,
				IsVIP:  row <= vipRows,
			}
			require.NoError(t, db.Create(&seat).Error)
		}
	}

	performance := performances.Performance{
		Title:           "The Seagull",
		Date:            date,
		DurationMinutes: 150,
		BasePrice:       basePrice,
		AuthorID:        author.ID,
		GenreID:         genre.ID,
		HallID:          hall.ID,
	}
	require.NoError(t, db.Create(&performance).Error)

	return &performance
}

// ticketForSeat finds the generated ticket sitting at (row, number).
func ticketForSeat(t *testing.T, db *gorm.DB, performanceID uuid.UUID, row, number int) *Ticket {
	t.Helper()

	var ticket Ticket
	err := db.Preload("Seat").
		Joins("JOIN seats ON seats.id = tickets.seat_id").
		Where("tickets.performance_id = ? AND seats.seat_row = ? AND seats.number = ?", performanceID, row, number).
		First(&ticket).Error
	require.NoError(t, err)
	return &ticket
}

func TestGenerateTickets(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 2, 3, 1, 100.0, time.Now().Add(30*24*time.Hour))

	result, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, result.TicketsCreated)

	var tickets []Ticket
	require.NoError(t, db.Preload("Seat").Where("performance_id = ?", performance.ID).Find(&tickets).Error)
	require.Len(t, tickets, 6)

	for _, ticket := range tickets {
		assert.False(t, ticket.IsSold)
		assert.Nil(t, ticket.PurchasedAt)
		if ticket.Seat.IsVIP {
			assert.Equal(t, 150.0, ticket.Price, "VIP seat should carry the premium price")
		} else {
			assert.Equal(t, 100.0, ticket.Price)
		}
	}
}

func TestGenerateTicketsPerformanceNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.GenerateTickets(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPerformanceNotFound)
}

func TestGenerateTicketsRejectsSecondRun(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 1, 2, 0, 50.0, time.Now().Add(30*24*time.Hour))

	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	_, err = svc.GenerateTickets(ctx, performance.ID)
	assert.ErrorIs(t, err, ErrTicketsAlreadyGenerated)

	var count int64
	require.NoError(t, db.Model(&Ticket{}).Where("performance_id = ?", performance.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count, "failed second run must not add tickets")
}

func TestSellTicket(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 1, 2, 0, 80.0, time.Now().Add(30*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 1, 1)

	sold, err := svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.True(t, sold)

	var reloaded Ticket
	require.NoError(t, db.First(&reloaded, "id = ?", ticket.ID).Error)
	assert.True(t, reloaded.IsSold)
	require.NotNil(t, reloaded.PurchasedAt)
	assert.Equal(t, 80.0, reloaded.Price, "price must not change on sale")

	// Selling an already sold ticket fails without touching it
	sold, err = svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.False(t, sold)
}

func TestSellTicketNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)

	sold, err := svc.SellTicket(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, sold)
}

func TestReturnTicketRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 1, 1, 0, 60.0, time.Now().Add(10*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 1, 1)

	sold, err := svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.True(t, sold)

	returned, err := svc.ReturnTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.True(t, returned)

	var reloaded Ticket
	require.NoError(t, db.First(&reloaded, "id = ?", ticket.ID).Error)
	assert.False(t, reloaded.IsSold)
	assert.Nil(t, reloaded.PurchasedAt, "a returned ticket must carry no purchase timestamp")

	// The ticket is sellable again after the return
	sold, err = svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.True(t, sold)
}

func TestReturnTicketUnsold(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 1, 1, 0, 60.0, time.Now().Add(10*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 1, 1)

	returned, err := svc.ReturnTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.False(t, returned)
}

func TestReturnTicketBlockedInsideCutoff(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	// Curtain is 23 hours away, inside the 24 hour return window
	performance := seedPerformance(t, db, 1, 1, 0, 60.0, time.Now().Add(23*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 1, 1)

	sold, err := svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.True(t, sold)

	returned, err := svc.ReturnTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.False(t, returned)

	var reloaded Ticket
	require.NoError(t, db.First(&reloaded, "id = ?", ticket.ID).Error)
	assert.True(t, reloaded.IsSold, "blocked return must leave the ticket sold")
}

func TestGetAvailableSeats(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 2, 2, 0, 70.0, time.Now().Add(30*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 1, 1)
	sold, err := svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.True(t, sold)

	available, err := svc.GetAvailableSeats(ctx, performance.ID)
	require.NoError(t, err)
	require.Len(t, available, 3)
	for _, seat := range available {
		assert.False(t, seat.Row == 1 && seat.Number == 1, "sold seat must not be listed")
	}
}

func TestGetTicketFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 2, 2, 1, 100.0, time.Now().Add(30*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 2, 1)
	sold, err := svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.True(t, sold)

	all, err := svc.GetTicketsForPerformance(ctx, performance.ID)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	available, err := svc.GetAvailableTicketsForPerformance(ctx, performance.ID)
	require.NoError(t, err)
	assert.Len(t, available, 3)

	soldTickets, err := svc.GetSoldTicketsForPerformance(ctx, performance.ID)
	require.NoError(t, err)
	require.Len(t, soldTickets, 1)
	assert.Equal(t, ticket.ID.String(), soldTickets[0].ID)

	vip, err := svc.GetVIPTicketsForPerformance(ctx, performance.ID)
	require.NoError(t, err)
	assert.Len(t, vip, 2)
	for _, v := range vip {
		assert.Equal(t, 150.0, v.Price)
	}

	rowTwo, err := svc.GetTicketsByRow(ctx, performance.ID, 2)
	require.NoError(t, err)
	assert.Len(t, rowTwo, 2)

	minPrice := 120.0
	expensive, err := svc.GetTicketsByPriceRange(ctx, performance.ID, &minPrice, nil)
	require.NoError(t, err)
	assert.Len(t, expensive, 2)
}

func TestGetTicketFiltersEmptyPerformance(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 1, 1, 0, 40.0, time.Now().Add(30*24*time.Hour))

	all, err := svc.GetTicketsForPerformance(ctx, performance.ID)
	require.NoError(t, err)
	assert.Empty(t, all)

	available, err := svc.GetAvailableTicketsForPerformance(ctx, performance.ID)
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestGetSeatingPlan(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 2, 3, 1, 100.0, time.Now().Add(30*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 2, 2)
	sold, err := svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.True(t, sold)

	plan, err := svc.GetSeatingPlan(ctx, performance.ID)
	require.NoError(t, err)

	assert.Equal(t, 6, plan.TotalSeats)
	assert.Equal(t, 5, plan.AvailableSeats)
	assert.Equal(t, 1, plan.SoldSeats)
	assert.Equal(t, 3, plan.VIPSeats)

	require.Len(t, plan.Rows, 2)
	assert.Equal(t, 1, plan.Rows[0].Row)
	assert.Equal(t, 2, plan.Rows[1].Row)
	require.Len(t, plan.Rows[0].Seats, 3)
	require.Len(t, plan.Rows[1].Seats, 3)

	// Seats are ordered by number inside the row
	for i, seat := range plan.Rows[0].Seats {
		assert.Equal(t, i+1, seat.SeatNumber)
		assert.True(t, seat.IsVIP)
		assert.Equal(t, 150.0, seat.Price)
	}

	assert.False(t, plan.Rows[1].Seats[1].IsAvailable)
	assert.True(t, plan.Rows[1].Seats[0].IsAvailable)
}

func TestGetStatistics(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	// Two seats, one VIP: tickets priced 150 and 100
	performance := seedPerformance(t, db, 2, 1, 1, 100.0, time.Now().Add(30*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	for _, pos := range []struct{ row, number int }{{1, 1}, {2, 1}} {
		ticket := ticketForSeat(t, db, performance.ID, pos.row, pos.number)
		sold, err := svc.SellTicket(ctx, ticket.ID)
		require.NoError(t, err)
		require.True(t, sold)
	}

	stats, err := svc.GetStatistics(ctx, performance.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalTickets)
	assert.Equal(t, int64(2), stats.SoldTickets)
	assert.Equal(t, int64(0), stats.AvailableTickets)
	assert.Equal(t, 250.0, stats.TotalRevenue)
	assert.Equal(t, 125.0, stats.AverageTicketPrice)
	assert.Equal(t, 100.0, stats.OccupancyRate)
}

func TestGetStatisticsPartialOccupancy(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 1, 3, 0, 90.0, time.Now().Add(30*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 1, 1)
	sold, err := svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.True(t, sold)

	stats, err := svc.GetStatistics(ctx, performance.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalTickets)
	assert.Equal(t, int64(1), stats.SoldTickets)
	assert.Equal(t, int64(2), stats.AvailableTickets)
	assert.Equal(t, 90.0, stats.TotalRevenue)
	assert.Equal(t, 33.33, stats.OccupancyRate)
}

func TestGetStatisticsNoTickets(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 1, 1, 0, 50.0, time.Now().Add(30*24*time.Hour))

	stats, err := svc.GetStatistics(ctx, performance.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalTickets)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, 0.0, stats.AverageTicketPrice)
	assert.Equal(t, 0.0, stats.OccupancyRate)
}

func TestGetOverallStatistics(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	first := seedPerformance(t, db, 1, 2, 0, 100.0, time.Now().Add(30*24*time.Hour))
	second := seedPerformance(t, db, 1, 2, 0, 200.0, time.Now().Add(40*24*time.Hour))

	for _, performance := range []*performances.Performance{first, second} {
		_, err := svc.GenerateTickets(ctx, performance.ID)
		require.NoError(t, err)
	}

	ticket := ticketForSeat(t, db, first.ID, 1, 1)
	sold, err := svc.SellTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.True(t, sold)

	stats, err := svc.GetOverallStatistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalTickets)
	assert.Equal(t, int64(1), stats.SoldTickets)
	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, 25.0, stats.OccupancyRate)
}

func TestGetTicketByID(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 1, 1, 0, 55.0, time.Now().Add(30*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 1, 1)

	detail, err := svc.GetTicketByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID.String(), detail.ID)
	require.NotNil(t, detail.Performance)
	assert.Equal(t, "The Seagull", detail.Performance.Title)
	require.NotNil(t, detail.Seat)
	assert.Equal(t, 1, detail.Seat.Row)

	_, err = svc.GetTicketByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestDeleteTicket(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	performance := seedPerformance(t, db, 1, 1, 0, 55.0, time.Now().Add(30*24*time.Hour))
	_, err := svc.GenerateTickets(ctx, performance.ID)
	require.NoError(t, err)

	ticket := ticketForSeat(t, db, performance.ID, 1, 1)

	require.NoError(t, svc.DeleteTicket(ctx, ticket.ID))

	var count int64
	require.NoError(t, db.Model(&Ticket{}).Where("id = ?", ticket.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, svc.DeleteTicket(ctx, ticket.ID), ErrTicketNotFound)
}
