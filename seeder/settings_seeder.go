package seeder

import (
	"log"

	"github.com/jmoiron/sqlx"
)

func settingsSeeder(db *sqlx.DB) {
	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM system_settings")
	if err != nil {
		log.Fatalf("Failed to check system_settings table: %v", err)
	}

	if count > 0 {
		log.Println("System settings already exist.")
		return
	}

	_, err = db.Exec(
		`INSERT INTO system_settings
		(system_name, institution, timezone, language, urgent_days_threshold, warning_days_threshold, auto_archive)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		"LazaroSEG",
		"Secretaria de Administração Penitenciária",
		"America/Sao_Paulo",
		"pt-BR",
		3,
		7,
		false,
	)
	if err != nil {
		log.Fatalf("Failed to insert default settings: %v", err)
	}

	log.Println("Seeded default system settings successfully.")
}
