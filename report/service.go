package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/config"
	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/settings"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"
	"github.com/redis/go-redis/v9"
)

const reportCacheTTL = 60 * time.Second

type ReportService struct {
	docRepo     *document.DocumentRepository
	userRepo    *user.UserRepository
	settingsSvc *settings.SettingsService
	redis       *redis.Client
}

func NewReportService(docRepo *document.DocumentRepository, userRepo *user.UserRepository, settingsSvc *settings.SettingsService, redisClient *redis.Client) *ReportService {
	return &ReportService{
		docRepo:     docRepo,
		userRepo:    userRepo,
		settingsSvc: settingsSvc,
		redis:       redisClient,
	}
}

// GetSystemReport returns the cached report when fresh, otherwise loads
// the document universe and recomputes. Document writes invalidate the
// cache, so a short TTL only bounds staleness across instances.
func (s *ReportService) GetSystemReport(ctx context.Context) (*SystemReport, error) {
	cached, err := s.redis.Get(ctx, config.ReportCacheKey).Result()
	if err == nil {
		var report SystemReport
		uerr := json.Unmarshal([]byte(cached), &report)
		if uerr == nil {
			return &report, nil
		}
		log.Printf("Warning: discarding unreadable cached report: %v", uerr)
	}

	report, err := s.computeReport()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(report); err == nil {
		if err := s.redis.Set(ctx, config.ReportCacheKey, payload, reportCacheTTL).Err(); err != nil {
			log.Printf("Warning: failed to cache report: %v", err)
		}
	}

	return report, nil
}

func (s *ReportService) computeReport() (*SystemReport, error) {
	activeDocs, archivedDocs, users, err := s.loadUniverse()
	if err != nil {
		return nil, err
	}

	report := ComputeSystemReport(activeDocs, archivedDocs, users, time.Now())
	return &report, nil
}

func (s *ReportService) GetYearlyComparison() (*YearlyComparison, error) {
	activeDocs, archivedDocs, _, err := s.loadUniverse()
	if err != nil {
		return nil, err
	}

	all := append(activeDocs, archivedDocs...)
	now := time.Now()
	comparison := ComputeYearlyComparison(all, now.Year(), now)
	return &comparison, nil
}

func (s *ReportService) GeneratePDF() ([]byte, error) {
	report, err := s.computeReport()
	if err != nil {
		return nil, err
	}

	institution := "Secretaria de Administração Penitenciária"
	if sys, err := s.settingsSvc.GetSettings(); err == nil {
		institution = sys.Institution
	}

	return RenderProductivityPDF(*report, institution, time.Now())
}

// ExportDocuments returns the document universe restricted to the
// requested trailing period ("7d", "30d", "90d" or "all") by creation
// date, plus the user list for assignee resolution.
func (s *ReportService) ExportDocuments(period string) ([]document.Document, []user.User, error) {
	activeDocs, archivedDocs, users, err := s.loadUniverse()
	if err != nil {
		return nil, nil, err
	}

	all := append(activeDocs, archivedDocs...)

	var days int
	switch period {
	case "", "all":
		return all, users, nil
	case "7d":
		days = 7
	case "30d":
		days = 30
	case "90d":
		days = 90
	default:
		return nil, nil, fmt.Errorf("invalid period: %s", period)
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	filtered := make([]document.Document, 0, len(all))
	for _, doc := range all {
		if !doc.CreatedAt.Before(cutoff) {
			filtered = append(filtered, doc)
		}
	}
	return filtered, users, nil
}

func (s *ReportService) loadUniverse() ([]document.Document, []document.Document, []user.User, error) {
	activeDocs, err := s.docRepo.GetAllActive()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load active documents: %w", err)
	}

	archivedDocs, err := s.docRepo.GetAllArchived()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load archived documents: %w", err)
	}

	users, err := s.userRepo.GetUsers()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load users: %w", err)
	}

	return activeDocs, archivedDocs, users, nil
}
