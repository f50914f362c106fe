package document

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/config"
	"github.com/redis/go-redis/v9"
)

var (
	ErrInvalidType      = errors.New("invalid document type")
	ErrAlreadyCompleted = errors.New("document is already completed")
	ErrAlreadyArchived  = errors.New("document is already archived")
	ErrNotArchived      = errors.New("document is not archived")
)

// Concurrent updates to the same document are last-write-wins; the
// store provides no row versioning and none is required here.
type DocumentService struct {
	repo  *DocumentRepository
	redis *redis.Client
	hub   *config.WSHub
}

func NewDocumentService(repo *DocumentRepository, redisClient *redis.Client, hub *config.WSHub) *DocumentService {
	return &DocumentService{
		repo:  repo,
		redis: redisClient,
		hub:   hub,
	}
}

func (s *DocumentService) CreateDocument(req *CreateDocumentRequest) (*Document, error) {
	if !ValidType(req.Type) {
		return nil, ErrInvalidType
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline: %w", err)
	}

	document := &Document{
		ProcessNumber: req.ProcessNumber,
		PrisonerName:  req.PrisonerName,
		Type:          req.Type,
		Status:        StatusInProgress,
		Deadline:      deadline,
		AssignedTo:    req.AssignedTo,
	}

	if err := s.repo.CreateDocument(document); err != nil {
		return nil, err
	}

	s.notifyChange()
	return document, nil
}

func (s *DocumentService) GetAllDocuments(filter DocumentFilter, urgentDays int) ([]DocumentWithAssignee, int, error) {
	documents, err := s.repo.GetAllDocuments(filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.GetTotalDocuments(filter)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	for i := range documents {
		documents[i].DisplayStatus = DisplayStatusFor(&documents[i].Document, now, urgentDays)
	}

	return documents, total, nil
}

func (s *DocumentService) GetArchivedDocuments() ([]DocumentWithAssignee, error) {
	documents, err := s.repo.GetArchivedDocuments()
	if err != nil {
		return nil, err
	}

	for i := range documents {
		documents[i].DisplayStatus = StatusArchived
	}
	return documents, nil
}

func (s *DocumentService) GetDocumentByID(id int64) (*Document, error) {
	return s.repo.GetDocumentByID(id)
}

func (s *DocumentService) UpdateDocument(id int64, req *UpdateDocumentRequest) (*Document, error) {
	document, err := s.repo.GetDocumentByID(id)
	if err != nil {
		return nil, err
	}

	if req.ProcessNumber != nil {
		document.ProcessNumber = *req.ProcessNumber
	}
	if req.PrisonerName != nil {
		document.PrisonerName = *req.PrisonerName
	}
	if req.Type != nil {
		if !ValidType(*req.Type) {
			return nil, ErrInvalidType
		}
		document.Type = *req.Type
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline: %w", err)
		}
		document.Deadline = deadline
	}
	if req.ClearAssignee {
		document.AssignedTo = nil
	} else if req.AssignedTo != nil {
		document.AssignedTo = req.AssignedTo
	}

	if err := s.repo.UpdateDocument(document); err != nil {
		return nil, err
	}

	s.notifyChange()
	return document, nil
}

func (s *DocumentService) CompleteDocument(id int64) (*Document, error) {
	document, err := s.repo.GetDocumentByID(id)
	if err != nil {
		return nil, err
	}

	if document.Status == StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	if document.IsArchived {
		return nil, ErrAlreadyArchived
	}

	now := time.Now()
	if err := s.repo.CompleteDocument(id, now); err != nil {
		return nil, fmt.Errorf("failed to complete document: %w", err)
	}

	document.Status = StatusCompleted
	document.CompletedAt = &now

	s.notifyChange()
	return document, nil
}

func (s *DocumentService) ArchiveDocument(id int64) (*Document, error) {
	document, err := s.repo.GetDocumentByID(id)
	if err != nil {
		return nil, err
	}

	if document.IsArchived {
		return nil, ErrAlreadyArchived
	}

	now := time.Now()
	if err := s.repo.ArchiveDocument(id, now); err != nil {
		return nil, fmt.Errorf("failed to archive document: %w", err)
	}

	document.IsArchived = true
	document.ArchivedAt = &now
	document.Status = StatusArchived

	s.notifyChange()
	return document, nil
}

func (s *DocumentService) RestoreDocument(id int64) (*Document, error) {
	document, err := s.repo.GetDocumentByID(id)
	if err != nil {
		return nil, err
	}

	if !document.IsArchived {
		return nil, ErrNotArchived
	}

	if err := s.repo.RestoreDocument(id); err != nil {
		return nil, fmt.Errorf("failed to restore document: %w", err)
	}

	document.IsArchived = false
	document.ArchivedAt = nil
	document.Status = StatusInProgress
	document.CompletedAt = nil

	s.notifyChange()
	return document, nil
}

func (s *DocumentService) DeleteDocument(id int64) error {
	if _, err := s.repo.GetDocumentByID(id); err != nil {
		return err
	}

	if err := s.repo.DeleteDocument(id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.notifyChange()
	return nil
}

// AutoArchiveCompleted archives documents completed before now-olderThan.
// Invoked by the scheduler when the auto-archive setting is enabled.
func (s *DocumentService) AutoArchiveCompleted(olderThan time.Duration) (int64, error) {
	now := time.Now()
	archived, err := s.repo.ArchiveCompletedBefore(now.Add(-olderThan), now)
	if err != nil {
		return 0, fmt.Errorf("auto-archive failed: %w", err)
	}

	if archived > 0 {
		log.Printf("Auto-archived %d completed documents", archived)
		s.notifyChange()
	}
	return archived, nil
}

// notifyChange drops the cached report and pings dashboard subscribers.
func (s *DocumentService) notifyChange() {
	ctx := context.Background()
	if err := s.redis.Del(ctx, config.ReportCacheKey).Err(); err != nil {
		log.Printf("Warning: failed to invalidate report cache: %v", err)
	}
	s.hub.Broadcast(config.ReportRefreshEvent)
}
