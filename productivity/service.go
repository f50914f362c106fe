package productivity

import (
	"fmt"
	"log"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/report"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"
)

type ServerService struct {
	repo     *ServerRepository
	docRepo  *document.DocumentRepository
	userRepo *user.UserRepository
}

func NewServerService(repo *ServerRepository, docRepo *document.DocumentRepository, userRepo *user.UserRepository) *ServerService {
	return &ServerService{
		repo:     repo,
		docRepo:  docRepo,
		userRepo: userRepo,
	}
}

func (s *ServerService) GetServers() ([]Server, error) {
	return s.repo.GetServers()
}

// RefreshSnapshots recomputes every per-user rollup from live document
// state, using the same completion rules as the report engine.
func (s *ServerService) RefreshSnapshots() error {
	activeDocs, err := s.docRepo.GetAllActive()
	if err != nil {
		return fmt.Errorf("failed to load active documents: %w", err)
	}

	archivedDocs, err := s.docRepo.GetAllArchived()
	if err != nil {
		return fmt.Errorf("failed to load archived documents: %w", err)
	}

	users, err := s.userRepo.GetUsers()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	systemReport := report.ComputeSystemReport(activeDocs, archivedDocs, users, time.Now())

	for _, up := range systemReport.UserProductivity {
		err := s.repo.UpsertServer(up.UserID, up.TotalDocuments, up.CompletedDocuments, up.CompletionRate)
		if err != nil {
			return fmt.Errorf("failed to upsert snapshot for user %d: %w", up.UserID, err)
		}
	}

	log.Printf("Refreshed productivity snapshots for %d users", len(systemReport.UserProductivity))
	return nil
}
