package database

import (
	"curtaincall/internal/authors"
	"curtaincall/internal/genres"
	"curtaincall/internal/halls"
	"curtaincall/internal/performances"
	"curtaincall/internal/seats"
	"curtaincall/internal/tickets"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authors.Author{},
		&genres.Genre{},
		&halls.Hall{},
		&seats.Seat{},
		&performances.Performance{},
		&tickets.Ticket{},
	)
}
