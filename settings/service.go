package settings

type SettingsService struct {
	Repo *SettingsRepository
}

func NewSettingsService(repo *SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) GetSettings() (*SystemSettings, error) {
	return s.Repo.GetSettings()
}

func (s *SettingsService) UpdateSettings(req *UpdateSettingsRequest) (*SystemSettings, error) {
	return s.Repo.UpsertSettings(&SystemSettings{
		SystemName:           req.SystemName,
		Institution:          req.Institution,
		Timezone:             req.Timezone,
		Language:             req.Language,
		UrgentDaysThreshold:  req.UrgentDaysThreshold,
		WarningDaysThreshold: req.WarningDaysThreshold,
		AutoArchive:          req.AutoArchive,
	})
}

// AutoArchiveEnabled is the scheduler's cheap check before running the
// archive job; a missing settings row means the feature is off.
func (s *SettingsService) AutoArchiveEnabled() bool {
	settings, err := s.Repo.GetSettings()
	if err != nil {
		return false
	}
	return settings.AutoArchive
}
