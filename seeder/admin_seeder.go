package seeder

import (
	"log"
	"os"

	"github.com/Lazaro2022/LazaroSEG-sub000/util"
	"github.com/jmoiron/sqlx"
)

func adminSeeder(db *sqlx.DB) {
	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM users WHERE username = 'admin'")
	if err != nil {
		log.Fatalf("Failed to check users table: %v", err)
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	password := os.Getenv("ADMIN_DEFAULT_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	_, err = db.Exec(
		"INSERT INTO users (username, password, name, role, initials) VALUES ($1, $2, $3, $4, $5)",
		"admin",
		hashed,
		"Administrador",
		"admin",
		"AD",
	)
	if err != nil {
		log.Fatalf("Failed to insert admin user: %v", err)
	}

	log.Println("Seeded admin user successfully.")
}
