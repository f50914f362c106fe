package cron

import (
	"log"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/productivity"
	"github.com/Lazaro2022/LazaroSEG-sub000/settings"
)

const (
	autoArchiveSpec     = "0 0 * * * *"    // hourly
	snapshotRefreshSpec = "0 */15 * * * *" // every 15 minutes
)

// Documents stay visible on the dashboard for a day after completion
// before the auto-archive job sweeps them.
const autoArchiveAfter = 24 * time.Hour

func RegisterMaintenanceJobs(s *Scheduler, docSvc *document.DocumentService, prodSvc *productivity.ServerService, settingsSvc *settings.SettingsService) {
	err := s.AddJob(autoArchiveSpec, func() {
		if !settingsSvc.AutoArchiveEnabled() {
			return
		}
		if _, err := docSvc.AutoArchiveCompleted(autoArchiveAfter); err != nil {
			log.Printf("Auto-archive job failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to register auto-archive job: %v", err)
	}

	err = s.AddJob(snapshotRefreshSpec, func() {
		if err := prodSvc.RefreshSnapshots(); err != nil {
			log.Printf("Snapshot refresh job failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to register snapshot refresh job: %v", err)
	}

	log.Println("Maintenance jobs registered")
}
