package seeder

import (
	"log"

	"github.com/jmoiron/sqlx"
)

func RunSeeder(db *sqlx.DB) {
	log.Println("Running seeders...")

	adminSeeder(db)
	settingsSeeder(db)

	log.Println("Seeding completed.")
}
