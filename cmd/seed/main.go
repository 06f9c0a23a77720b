package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"curtaincall/internal/authors"
	"curtaincall/internal/genres"
	"curtaincall/internal/halls"
	"curtaincall/internal/performances"
	"curtaincall/internal/seats"
	"curtaincall/internal/shared/config"
	"curtaincall/internal/shared/database"
	"curtaincall/internal/tickets"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting CurtainCall Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"tickets",
		"performances",
		"seats",
		"halls",
		"genres",
		"authors",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	authorIDs, err := s.SeedAuthors()
	if err != nil {
		return fmt.Errorf("failed to seed authors: %w", err)
	}

	genreIDs, err := s.SeedGenres()
	if err != nil {
		return fmt.Errorf("failed to seed genres: %w", err)
	}

	hallIDs, err := s.SeedHalls()
	if err != nil {
		return fmt.Errorf("failed to seed halls: %w", err)
	}

	performanceIDs, err := s.SeedPerformances(authorIDs, genreIDs, hallIDs)
	if err != nil {
		return fmt.Errorf("failed to seed performances: %w", err)
	}

	if err := s.SeedTickets(ctx, performanceIDs[0]); err != nil {
		return fmt.Errorf("failed to seed tickets: %w", err)
	}

	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedAuthors creates classic playwrights
func (s *Seeder) SeedAuthors() ([]uuid.UUID, error) {
	fmt.Println("  ✍️ Seeding authors...")

	var authorIDs []uuid.UUID

	authorsData := []struct {
		fullName  string
		biography string
		birthYear int
	}{
		{"William Shakespeare", "English playwright, widely regarded as the greatest writer in the English language.", 1564},
		{"Anton Chekhov", "Russian playwright and short-story writer, a master of understated drama.", 1860},
		{"Oscar Wilde", "Irish poet and playwright known for his biting wit and social comedies.", 1854},
		{"Henrik Ibsen", "Norwegian playwright, often called the father of modern realistic drama.", 1828},
	}

	for _, authorData := range authorsData {
		birthDate := time.Date(authorData.birthYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		author := authors.Author{
			ID:        uuid.New(),
			FullName:  authorData.fullName,
			Biography: authorData.biography,
			BirthDate: &birthDate,
		}

		if err := s.db.PostgreSQL.Create(&author).Error; err != nil {
			return nil, fmt.Errorf("failed to create author %s: %w", author.FullName, err)
		}

		authorIDs = append(authorIDs, author.ID)
		fmt.Printf("    ✅ Created author: %s\n", author.FullName)
	}

	return authorIDs, nil
}

// SeedGenres creates theatrical genres
func (s *Seeder) SeedGenres() ([]uuid.UUID, error) {
	fmt.Println("  🎭 Seeding genres...")

	var genreIDs []uuid.UUID

	genresData := []struct {
		name        string
		description string
	}{
		{"Tragedy", "Dramatic works centered on human suffering and downfall."},
		{"Comedy", "Light-hearted works intended to amuse and entertain."},
		{"Drama", "Serious narrative works portraying realistic characters and conflicts."},
		{"Musical", "Performances combining songs, spoken dialogue and dance."},
	}

	for _, genreData := range genresData {
		genre := genres.Genre{
			ID:          uuid.New(),
			Name:        genreData.name,
			Description: genreData.description,
		}

		if err := s.db.PostgreSQL.Create(&genre).Error; err != nil {
			return nil, fmt.Errorf("failed to create genre %s: %w", genre.Name, err)
		}

		genreIDs = append(genreIDs, genre.ID)
		fmt.Printf("    ✅ Created genre: %s\n", genre.Name)
	}

	return genreIDs, nil
}

// SeedHalls creates halls with their seat layouts. The first rows are VIP.
func (s *Seeder) SeedHalls() ([]uuid.UUID, error) {
	fmt.Println("  🏛️ Seeding halls...")

	var hallIDs []uuid.UUID

	hallsData := []struct {
		name        string
		description string
		rows        int
		seatsPerRow int
		vipRows     int
	}{
		{"Main Stage", "The principal hall with full orchestra seating.", 10, 20, 2},
		{"Chamber Hall", "Intimate hall for small-cast productions.", 5, 12, 1},
	}

	for _, hallData := range hallsData {
		hall := halls.Hall{
			ID:          uuid.New(),
			Name:        hallData.name,
			Capacity:    hallData.rows * hallData.seatsPerRow,
			Description: hallData.description,
		}

		if err := s.db.PostgreSQL.Create(&hall).Error; err != nil {
			return nil, fmt.Errorf("failed to create hall %s: %w", hall.Name, err)
		}

		if err := s.createSeatsForHall(hall.ID, hallData.rows, hallData.seatsPerRow, hallData.vipRows); err != nil {
			return nil, fmt.Errorf("failed to create seats for hall %s: %w", hall.Name, err)
		}

		hallIDs = append(hallIDs, hall.ID)
		fmt.Printf("    ✅ Created hall: %s (%d seats)\n", hall.Name, hall.Capacity)
	}

	return hallIDs, nil
}

// createSeatsForHall creates a rectangular block of seats
func (s *Seeder) createSeatsForHall(hallID uuid.UUID, rows, seatsPerRow, vipRows int) error {
	batch := make([]seats.Seat, 0, rows*seatsPerRow)
	for row := 1; row <= rows; row++ {
		for number := 1; number <= seatsPerRow; number++ {
			batch = append(batch, seats.Seat{
				ID:     uuid.New(),
				HallID: hallID,
				Row:    row,
				Number: number,
				IsVIP:  row <= vipRows,
			})
		}
	}

	if err := s.db.PostgreSQL.CreateInBatches(batch, 200).Error; err != nil {
		return fmt.Errorf("failed to create seats: %w", err)
	}

	return nil
}

// SeedPerformances creates upcoming performances
func (s *Seeder) SeedPerformances(authorIDs, genreIDs, hallIDs []uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  🎬 Seeding performances...")

	var performanceIDs []uuid.UUID

	performancesData := []struct {
		title           string
		description     string
		daysFromNow     int
		durationMinutes int
		basePrice       float64
		authorIndex     int
		genreIndex      int
		hallIndex       int
	}{
		{"Hamlet", "The tragedy of the Prince of Denmark.", 14, 180, 120.0, 0, 0, 0},
		{"The Cherry Orchard", "An aristocratic family faces the loss of their estate.", 21, 150, 90.0, 1, 2, 1},
		{"The Importance of Being Earnest", "A comedy of manners and mistaken identities.", 30, 130, 80.0, 2, 1, 0},
		{"A Doll's House", "Nora Helmer confronts the constraints of her marriage.", 45, 140, 95.0, 3, 2, 1},
	}

	for _, perfData := range performancesData {
		performance := performances.Performance{
			ID:              uuid.New(),
			Title:           perfData.title,
			Description:     perfData.description,
			Date:            time.Now().AddDate(0, 0, perfData.daysFromNow),
			DurationMinutes: perfData.durationMinutes,
			BasePrice:       perfData.basePrice,
			AuthorID:        authorIDs[perfData.authorIndex],
			GenreID:         genreIDs[perfData.genreIndex],
			HallID:          hallIDs[perfData.hallIndex],
		}

		if err := s.db.PostgreSQL.Create(&performance).Error; err != nil {
			return nil, fmt.Errorf("failed to create performance %s: %w", performance.Title, err)
		}

		performanceIDs = append(performanceIDs, performance.ID)
		fmt.Printf("    ✅ Created performance: %s\n", performance.Title)
	}

	return performanceIDs, nil
}

// SeedTickets generates the ticket inventory for one performance so the
// sales endpoints have data to work with out of the box
func (s *Seeder) SeedTickets(ctx context.Context, performanceID uuid.UUID) error {
	fmt.Println("  🎟️ Seeding tickets...")

	ticketRepo := tickets.NewRepository(s.db.PostgreSQL)
	perfRepo := performances.NewRepository(s.db.PostgreSQL)
	seatRepo := seats.NewRepository(s.db.PostgreSQL)
	ticketService := tickets.NewService(ticketRepo, perfRepo, seatRepo, nil, nil)

	result, err := ticketService.GenerateTickets(ctx, performanceID)
	if err != nil {
		return fmt.Errorf("failed to generate tickets: %w", err)
	}

	fmt.Printf("    ✅ Generated %d tickets for performance %s\n", result.TicketsCreated, result.PerformanceID)
	return nil
}
