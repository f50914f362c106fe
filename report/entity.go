package report

import "time"

// DocumentsByType is the four-category distribution. Documents with an
// unrecognized type fall into none of the buckets.
type DocumentsByType struct {
	Certidoes  int `json:"certidoes"`
	Relatorios int `json:"relatorios"`
	Oficios    int `json:"oficios"`
	Extincoes  int `json:"extincoes"`
}

func (d DocumentsByType) Total() int {
	return d.Certidoes + d.Relatorios + d.Oficios + d.Extincoes
}

type DailyProduction struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type MonthlyTrend struct {
	Month     string `json:"month"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type MonthlyProduction struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type UserProductivity struct {
	UserID                int64               `json:"user_id"`
	Name                  string              `json:"name"`
	TotalDocuments        int                 `json:"total_documents"`
	CompletedDocuments    int                 `json:"completed_documents"`
	InProgressDocuments   int                 `json:"in_progress_documents"`
	OverdueDocuments      int                 `json:"overdue_documents"`
	CompletionRate        float64             `json:"completion_rate"`
	AverageCompletionTime float64             `json:"average_completion_time"`
	DocumentsByType       DocumentsByType     `json:"documents_by_type"`
	MonthlyProduction     []MonthlyProduction `json:"monthly_production"`
}

type SystemReport struct {
	TotalDocuments        int                `json:"total_documents"`
	CompletedDocuments    int                `json:"completed_documents"`
	InProgressDocuments   int                `json:"in_progress_documents"`
	OverdueDocuments      int                `json:"overdue_documents"`
	CompletionRate        float64            `json:"completion_rate"`
	AverageCompletionTime float64            `json:"average_completion_time"`
	DocumentsByType       DocumentsByType    `json:"documents_by_type"`
	DailyProduction       []DailyProduction  `json:"daily_production"`
	MonthlyTrends         []MonthlyTrend     `json:"monthly_trends"`
	UserProductivity      []UserProductivity `json:"user_productivity"`
	GeneratedAt           time.Time          `json:"generated_at"`
}

type YearStats struct {
	Year               int     `json:"year"`
	TotalDocuments     int     `json:"total_documents"`
	CompletedDocuments int     `json:"completed_documents"`
	CompletionRate     float64 `json:"completion_rate"`
}

type YearlyComparison struct {
	CurrentYear  YearStats `json:"current_year"`
	PreviousYear YearStats `json:"previous_year"`
	GrowthRate   int       `json:"growth_rate"`
}
