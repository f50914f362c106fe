package productivity

import (
	"github.com/jmoiron/sqlx"
)

type ServerRepository struct {
	db *sqlx.DB
}

func NewServerRepository(db *sqlx.DB) *ServerRepository {
	return &ServerRepository{db: db}
}

func (r *ServerRepository) GetServers() ([]Server, error) {
	var servers []Server
	query := `
		SELECT s.id, s.user_id, u.name AS user_name,
		       s.total_documents, s.completed_documents,
		       s.completion_percentage, s.updated_at
		FROM servers s
		INNER JOIN users u ON s.user_id = u.id
		ORDER BY u.name ASC
	`
	err := r.db.Select(&servers, query)
	return servers, err
}

func (r *ServerRepository) UpsertServer(userID int64, total, completed int, percentage float64) error {
	query := `
		INSERT INTO servers (user_id, total_documents, completed_documents, completion_percentage, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET total_documents = EXCLUDED.total_documents,
		    completed_documents = EXCLUDED.completed_documents,
		    completion_percentage = EXCLUDED.completion_percentage,
		    updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, total, completed, percentage)
	return err
}
