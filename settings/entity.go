package settings

import "time"

// SystemSettings is a singleton row; reads return it, writes upsert it.
type SystemSettings struct {
	ID                   int64     `db:"id" json:"id"`
	SystemName           string    `db:"system_name" json:"system_name"`
	Institution          string    `db:"institution" json:"institution"`
	Timezone             string    `db:"timezone" json:"timezone"`
	Language             string    `db:"language" json:"language"`
	UrgentDaysThreshold  int       `db:"urgent_days_threshold" json:"urgent_days_threshold"`
	WarningDaysThreshold int       `db:"warning_days_threshold" json:"warning_days_threshold"`
	AutoArchive          bool      `db:"auto_archive" json:"auto_archive"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

type UpdateSettingsRequest struct {
	SystemName           string `json:"system_name" binding:"required"`
	Institution          string `json:"institution" binding:"required"`
	Timezone             string `json:"timezone" binding:"required"`
	Language             string `json:"language" binding:"required"`
	UrgentDaysThreshold  int    `json:"urgent_days_threshold" binding:"required,min=1"`
	WarningDaysThreshold int    `json:"warning_days_threshold" binding:"required,min=1"`
	AutoArchive          bool   `json:"auto_archive"`
}
