package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	isQuerySearch     = "(d.process_number ILIKE $%d OR d.prisoner_name ILIKE $%d)"
	isFilterType      = "d.type = $%d"
	isFilterStatus    = "d.status = $%d"
	isFilterAssignee  = "d.assigned_to = $%d"
	isFilterCreateAt  = "d.created_at >= $%d"
	isFilterEndAt     = "d.created_at <= $%d"
	isQueryCreatedAt  = "d.created_at"
	documentSelectSQL = `
		SELECT
			d.id, d.process_number, d.prisoner_name, d.type, d.status,
			d.deadline, d.assigned_to, d.created_at, d.completed_at,
			d.is_archived, d.archived_at,
			u.name AS assignee_name
		FROM documents d
		LEFT JOIN users u ON d.assigned_to = u.id
	`
)

type DocumentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) CreateDocument(document *Document) error {
	query := `
		INSERT INTO documents
		(process_number, prisoner_name, type, status, deadline, assigned_to, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRow(
		query,
		document.ProcessNumber,
		document.PrisonerName,
		document.Type,
		document.Status,
		document.Deadline,
		document.AssignedTo,
	).Scan(&document.ID, &document.CreatedAt)
}

func (r *DocumentRepository) GetAllDocuments(filter DocumentFilter) ([]DocumentWithAssignee, error) {
	conditions, args, argIndex := r.buildDocumentFilters(filter)

	query := documentSelectSQL + " WHERE d.is_archived = false"
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}

	query += r.buildSortClause(filter)

	limit, offset := r.ensurePagination(filter.Limit, filter.Offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	var documents []DocumentWithAssignee
	err := r.db.Select(&documents, query, args...)
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *DocumentRepository) GetTotalDocuments(filter DocumentFilter) (int, error) {
	conditions, args, _ := r.buildDocumentFilters(filter)

	query := `SELECT COUNT(*) FROM documents d WHERE d.is_archived = false`
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}

	var total int
	err := r.db.QueryRow(query, args...).Scan(&total)
	return total, err
}

func (r *DocumentRepository) GetArchivedDocuments() ([]DocumentWithAssignee, error) {
	query := documentSelectSQL + " WHERE d.is_archived = true ORDER BY d.archived_at DESC"

	var documents []DocumentWithAssignee
	err := r.db.Select(&documents, query)
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// GetAllActive returns every non-archived document, any status. Used by
// the report engine, which needs the full universe rather than a page.
func (r *DocumentRepository) GetAllActive() ([]Document, error) {
	var documents []Document
	query := `
		SELECT id, process_number, prisoner_name, type, status, deadline,
		       assigned_to, created_at, completed_at, is_archived, archived_at
		FROM documents WHERE is_archived = false
	`
	err := r.db.Select(&documents, query)
	return documents, err
}

func (r *DocumentRepository) GetAllArchived() ([]Document, error) {
	var documents []Document
	query := `
		SELECT id, process_number, prisoner_name, type, status, deadline,
		       assigned_to, created_at, completed_at, is_archived, archived_at
		FROM documents WHERE is_archived = true
	`
	err := r.db.Select(&documents, query)
	return documents, err
}

func (r *DocumentRepository) GetDocumentByID(id int64) (*Document, error) {
	var document Document
	query := `
		SELECT id, process_number, prisoner_name, type, status, deadline,
		       assigned_to, created_at, completed_at, is_archived, archived_at
		FROM documents WHERE id = $1
	`
	err := r.db.Get(&document, query, id)
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepository) UpdateDocument(document *Document) error {
	query := `
		UPDATE documents
		SET process_number = $1, prisoner_name = $2, type = $3,
		    deadline = $4, assigned_to = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(
		query,
		document.ProcessNumber,
		document.PrisonerName,
		document.Type,
		document.Deadline,
		document.AssignedTo,
		document.ID,
	)
	return err
}

func (r *DocumentRepository) CompleteDocument(id int64, completedAt time.Time) error {
	query := `UPDATE documents SET status = $1, completed_at = $2 WHERE id = $3`
	_, err := r.db.Exec(query, StatusCompleted, completedAt, id)
	return err
}

func (r *DocumentRepository) ArchiveDocument(id int64, archivedAt time.Time) error {
	query := `UPDATE documents SET is_archived = true, archived_at = $1, status = $2 WHERE id = $3`
	_, err := r.db.Exec(query, archivedAt, StatusArchived, id)
	return err
}

func (r *DocumentRepository) RestoreDocument(id int64) error {
	query := `
		UPDATE documents
		SET is_archived = false, archived_at = NULL, status = $1, completed_at = NULL
		WHERE id = $2
	`
	_, err := r.db.Exec(query, StatusInProgress, id)
	return err
}

func (r *DocumentRepository) DeleteDocument(id int64) error {
	query := `DELETE FROM documents WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

// ArchiveCompletedBefore archives every completed, non-archived document
// whose completion predates the cutoff. Returns the number archived.
func (r *DocumentRepository) ArchiveCompletedBefore(cutoff time.Time, archivedAt time.Time) (int64, error) {
	query := `
		UPDATE documents
		SET is_archived = true, archived_at = $1, status = $2
		WHERE is_archived = false AND status = $3 AND completed_at IS NOT NULL AND completed_at < $4
	`
	result, err := r.db.Exec(query, archivedAt, StatusArchived, StatusCompleted, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *DocumentRepository) buildDocumentFilters(filter DocumentFilter) ([]string, []interface{}, int) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(isQuerySearch, argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf(isFilterType, argIndex))
		args = append(args, filter.Type)
		argIndex++
	}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf(isFilterStatus, argIndex))
		args = append(args, filter.Status)
		argIndex++
	}

	if filter.AssignedTo != nil {
		conditions = append(conditions, fmt.Sprintf(isFilterAssignee, argIndex))
		args = append(args, *filter.AssignedTo)
		argIndex++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf(isFilterCreateAt, argIndex))
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf(isFilterEndAt, argIndex))
		args = append(args, *filter.EndDate)
		argIndex++
	}

	return conditions, args, argIndex
}

func (r *DocumentRepository) buildSortClause(filter DocumentFilter) string {
	allowedSort := map[string]bool{
		isQueryCreatedAt:   true,
		"d.deadline":       true,
		"d.process_number": true,
		"d.prisoner_name":  true,
	}
	sortBy := isQueryCreatedAt

	if filter.SortBy != "" {
		sb := filter.SortBy
		if allowedSort[sb] {
			sortBy = sb
		} else if allowedSort["d."+sb] {
			sortBy = "d." + sb
		}
	}

	dir := "DESC"
	if strings.ToUpper(filter.SortDirection) == "ASC" {
		dir = "ASC"
	}

	return fmt.Sprintf(" ORDER BY %s %s", sortBy, dir)
}

func (r *DocumentRepository) ensurePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
