package document

import "time"

// Persisted document types.
const (
	TypeCertidao  = "Certidão"
	TypeRelatorio = "Relatório"
	TypeOficio    = "Ofício"
	TypeExtincao  = "Extinção"
)

// Persisted lifecycle statuses. "Vencido" and "Urgente" are display
// states derived from the deadline at read time and never stored.
const (
	StatusInProgress = "Em Andamento"
	StatusCompleted  = "Concluído"
	StatusArchived   = "Arquivado"
)

const (
	DisplayOverdue = "Vencido"
	DisplayUrgent  = "Urgente"
)

type Document struct {
	ID            int64      `db:"id" json:"id"`
	ProcessNumber string     `db:"process_number" json:"process_number"`
	PrisonerName  string     `db:"prisoner_name" json:"prisoner_name"`
	Type          string     `db:"type" json:"type"`
	Status        string     `db:"status" json:"status"`
	Deadline      time.Time  `db:"deadline" json:"deadline"`
	AssignedTo    *int64     `db:"assigned_to" json:"assigned_to"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	CompletedAt   *time.Time `db:"completed_at" json:"completed_at"`
	IsArchived    bool       `db:"is_archived" json:"is_archived"`
	ArchivedAt    *time.Time `db:"archived_at" json:"archived_at"`
}

// DocumentWithAssignee joins in the assignee name for listings and
// carries the derived display status.
type DocumentWithAssignee struct {
	Document
	AssigneeName  *string `db:"assignee_name" json:"assignee_name"`
	DisplayStatus string  `db:"-" json:"display_status"`
}

type DocumentFilter struct {
	Search        string
	Type          string
	Status        string
	AssignedTo    *int64
	StartDate     *time.Time
	EndDate       *time.Time
	Limit         int
	Offset        int
	SortBy        string
	SortDirection string
}

type CreateDocumentRequest struct {
	ProcessNumber string `json:"process_number" binding:"required"`
	PrisonerName  string `json:"prisoner_name" binding:"required"`
	Type          string `json:"type" binding:"required"`
	Deadline      string `json:"deadline" binding:"required"`
	AssignedTo    *int64 `json:"assigned_to"`
}

type UpdateDocumentRequest struct {
	ProcessNumber *string `json:"process_number"`
	PrisonerName  *string `json:"prisoner_name"`
	Type          *string `json:"type"`
	Deadline      *string `json:"deadline"`
	AssignedTo    *int64  `json:"assigned_to"`
	ClearAssignee bool    `json:"clear_assignee"`
}

// ValidType reports whether t is one of the recognized document types.
func ValidType(t string) bool {
	switch t {
	case TypeCertidao, TypeRelatorio, TypeOficio, TypeExtincao:
		return true
	}
	return false
}

// DisplayStatusFor derives the status shown on the dashboard. Archived
// and completed documents keep their persisted status; otherwise the
// deadline decides between overdue, urgent and in-progress.
func DisplayStatusFor(doc *Document, now time.Time, urgentDays int) string {
	if doc.IsArchived {
		return StatusArchived
	}
	if doc.Status == StatusCompleted {
		return StatusCompleted
	}
	if doc.Deadline.Before(now) {
		return DisplayOverdue
	}
	if urgentDays > 0 && !doc.Deadline.After(now.AddDate(0, 0, urgentDays)) {
		return DisplayUrgent
	}
	return doc.Status
}
