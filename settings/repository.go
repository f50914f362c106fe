package settings

import (
	"github.com/jmoiron/sqlx"
)

type SettingsRepository struct {
	DB *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) GetSettings() (*SystemSettings, error) {
	var s SystemSettings
	query := `
		SELECT id, system_name, institution, timezone, language,
		       urgent_days_threshold, warning_days_threshold, auto_archive, updated_at
		FROM system_settings
		ORDER BY id ASC
		LIMIT 1
	`
	err := r.DB.Get(&s, query)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) UpsertSettings(s *SystemSettings) (*SystemSettings, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM system_settings"); err != nil {
		return nil, err
	}

	var updated SystemSettings
	if count == 0 {
		query := `
			INSERT INTO system_settings
			(system_name, institution, timezone, language, urgent_days_threshold, warning_days_threshold, auto_archive, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			RETURNING id, system_name, institution, timezone, language,
			          urgent_days_threshold, warning_days_threshold, auto_archive, updated_at
		`
		err := r.DB.Get(&updated, query,
			s.SystemName, s.Institution, s.Timezone, s.Language,
			s.UrgentDaysThreshold, s.WarningDaysThreshold, s.AutoArchive)
		return &updated, err
	}

	query := `
		UPDATE system_settings
		SET system_name = $1, institution = $2, timezone = $3, language = $4,
		    urgent_days_threshold = $5, warning_days_threshold = $6,
		    auto_archive = $7, updated_at = NOW()
		WHERE id = (SELECT id FROM system_settings ORDER BY id ASC LIMIT 1)
		RETURNING id, system_name, institution, timezone, language,
		          urgent_days_threshold, warning_days_threshold, auto_archive, updated_at
	`
	err := r.DB.Get(&updated, query,
		s.SystemName, s.Institution, s.Timezone, s.Language,
		s.UrgentDaysThreshold, s.WarningDaysThreshold, s.AutoArchive)
	return &updated, err
}
