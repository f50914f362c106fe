package productivity

import "time"

// Server is the denormalized per-user productivity rollup. It is a
// periodically refreshed cache, not guaranteed consistent with live
// document state between refreshes.
type Server struct {
	ID                   int64     `db:"id" json:"id"`
	UserID               int64     `db:"user_id" json:"user_id"`
	UserName             string    `db:"user_name" json:"user_name"`
	TotalDocuments       int       `db:"total_documents" json:"total_documents"`
	CompletedDocuments   int       `db:"completed_documents" json:"completed_documents"`
	CompletionPercentage float64   `db:"completion_percentage" json:"completion_percentage"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}
