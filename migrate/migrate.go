package migrate

import (
	"log"

	"github.com/jmoiron/sqlx"
)

func RunMigrations(db *sqlx.DB) {
	log.Println("Starting migrations...")

	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'user',
		initials VARCHAR(10) NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS documents (
		id SERIAL PRIMARY KEY,
		process_number VARCHAR(100) NOT NULL UNIQUE,
		prisoner_name VARCHAR(255) NOT NULL,
		type VARCHAR(50) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'Em Andamento',
		deadline TIMESTAMP NOT NULL,
		assigned_to INT REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMP,
		is_archived BOOLEAN NOT NULL DEFAULT false,
		archived_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS servers (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		total_documents INT NOT NULL DEFAULT 0,
		completed_documents INT NOT NULL DEFAULT 0,
		completion_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS system_settings (
		id SERIAL PRIMARY KEY,
		system_name VARCHAR(255) NOT NULL,
		institution VARCHAR(255) NOT NULL,
		timezone VARCHAR(100) NOT NULL DEFAULT 'America/Sao_Paulo',
		language VARCHAR(10) NOT NULL DEFAULT 'pt-BR',
		urgent_days_threshold INT NOT NULL DEFAULT 3,
		warning_days_threshold INT NOT NULL DEFAULT 7,
		auto_archive BOOLEAN NOT NULL DEFAULT false,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_documents_is_archived ON documents(is_archived);
	CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);
	CREATE INDEX IF NOT EXISTS idx_documents_assigned_to ON documents(assigned_to);
	CREATE INDEX IF NOT EXISTS idx_documents_deadline ON documents(deadline);
	CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at);

	-- Add initials column if it doesn't exist (for existing databases)
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns
					   WHERE table_name='users' AND column_name='initials') THEN
			ALTER TABLE users ADD COLUMN initials VARCHAR(10) NOT NULL DEFAULT '';
		END IF;
	END $$;

	-- Add archived_at column if it doesn't exist (for existing databases)
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns
					   WHERE table_name='documents' AND column_name='archived_at') THEN
			ALTER TABLE documents ADD COLUMN archived_at TIMESTAMP;
		END IF;
	END $$;
	`

	if _, err := db.Exec(query); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully.")
}
