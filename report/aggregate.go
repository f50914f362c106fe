package report

import (
	"math"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"
)

// Portuguese month abbreviations for trend labels (jan/25, fev/25, ...).
var monthAbbrev = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// ComputeSystemReport builds the full productivity report from the
// document universe. It is a pure function: every date comparison uses
// the supplied now, no input slice is mutated, and repeated calls over
// the same data yield the same report (GeneratedAt aside).
//
// Archived documents always count as completed, whatever their stored
// status says; archiving is the terminal confirmation step.
func ComputeSystemReport(activeDocs, archivedDocs []document.Document, users []user.User, now time.Time) SystemReport {
	all := make([]document.Document, 0, len(activeDocs)+len(archivedDocs))
	all = append(all, activeDocs...)
	all = append(all, archivedDocs...)

	totalDocuments := len(all)

	completedDocuments := len(archivedDocs)
	inProgressDocuments := 0
	overdueDocuments := 0
	for _, doc := range activeDocs {
		switch {
		case doc.Status == document.StatusCompleted:
			completedDocuments++
		case doc.Status == document.StatusInProgress:
			inProgressDocuments++
		}
		if doc.Status != document.StatusCompleted && doc.Deadline.Before(now) {
			overdueDocuments++
		}
	}

	report := SystemReport{
		TotalDocuments:        totalDocuments,
		CompletedDocuments:    completedDocuments,
		InProgressDocuments:   inProgressDocuments,
		OverdueDocuments:      overdueDocuments,
		CompletionRate:        percentage(completedDocuments, totalDocuments),
		AverageCompletionTime: averageCompletionDays(activeDocs, archivedDocs),
		DocumentsByType:       countByType(all),
		DailyProduction:       dailyProduction(all, now),
		MonthlyTrends:         monthlyTrends(all, now),
		UserProductivity:      make([]UserProductivity, 0, len(users)),
		GeneratedAt:           now,
	}

	for _, u := range users {
		report.UserProductivity = append(report.UserProductivity, computeUserProductivity(u, activeDocs, archivedDocs, now))
	}

	return report
}

// computeUserProductivity restricts the universe to documents assigned
// to the user and recomputes the same statistics. A user with nothing
// assigned still yields a zero-filled entry.
func computeUserProductivity(u user.User, activeDocs, archivedDocs []document.Document, now time.Time) UserProductivity {
	var userActive, userArchived []document.Document
	for _, doc := range activeDocs {
		if doc.AssignedTo != nil && *doc.AssignedTo == u.ID {
			userActive = append(userActive, doc)
		}
	}
	for _, doc := range archivedDocs {
		if doc.AssignedTo != nil && *doc.AssignedTo == u.ID {
			userArchived = append(userArchived, doc)
		}
	}

	all := make([]document.Document, 0, len(userActive)+len(userArchived))
	all = append(all, userActive...)
	all = append(all, userArchived...)

	total := len(all)
	completed := len(userArchived)
	inProgress := 0
	overdue := 0
	for _, doc := range userActive {
		switch {
		case doc.Status == document.StatusCompleted:
			completed++
		case doc.Status == document.StatusInProgress:
			inProgress++
		}
		if doc.Status != document.StatusCompleted && doc.Deadline.Before(now) {
			overdue++
		}
	}

	return UserProductivity{
		UserID:                u.ID,
		Name:                  u.Name,
		TotalDocuments:        total,
		CompletedDocuments:    completed,
		InProgressDocuments:   inProgress,
		OverdueDocuments:      overdue,
		CompletionRate:        percentage(completed, total),
		AverageCompletionTime: averageCompletionDays(userActive, userArchived),
		DocumentsByType:       countByType(all),
		MonthlyProduction:     monthlyProduction(all, now),
	}
}

// ComputeYearlyComparison partitions documents by creation year into the
// current and previous year and reports growth between them. Growth from
// a zero baseline is a flat 100% when the current year has documents.
func ComputeYearlyComparison(allDocs []document.Document, currentYear int, now time.Time) YearlyComparison {
	previousYear := currentYear - 1

	comparison := YearlyComparison{
		CurrentYear:  yearStats(allDocs, currentYear),
		PreviousYear: yearStats(allDocs, previousYear),
	}

	prev := comparison.PreviousYear.TotalDocuments
	curr := comparison.CurrentYear.TotalDocuments
	switch {
	case prev == 0 && curr > 0:
		comparison.GrowthRate = 100
	case prev == 0:
		comparison.GrowthRate = 0
	default:
		comparison.GrowthRate = int(math.Round(float64(curr-prev) / float64(prev) * 100))
	}

	return comparison
}

func yearStats(docs []document.Document, year int) YearStats {
	stats := YearStats{Year: year}

	for _, doc := range docs {
		if doc.CreatedAt.Year() == year {
			stats.TotalDocuments++
		}
		if doc.Status == document.StatusCompleted && doc.CompletedAt != nil && doc.CompletedAt.Year() == year {
			stats.CompletedDocuments++
		} else if doc.IsArchived && doc.ArchivedAt != nil && doc.ArchivedAt.Year() == year {
			stats.CompletedDocuments++
		}
	}

	stats.CompletionRate = percentage(stats.CompletedDocuments, stats.TotalDocuments)
	return stats
}

// dailyProduction buckets creations and completions over the trailing
// 30 calendar days ending at now, inclusive. Membership is local
// calendar-day equality.
func dailyProduction(docs []document.Document, now time.Time) []DailyProduction {
	series := make([]DailyProduction, 0, 30)

	for i := 29; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		entry := DailyProduction{Date: day.Format("02/01")}

		for _, doc := range docs {
			if sameLocalDay(doc.CreatedAt, day) {
				entry.Created++
			}
			if t := resolutionTime(doc); t != nil && sameLocalDay(*t, day) {
				entry.Completed++
			}
		}

		series = append(series, entry)
	}

	return series
}

// monthlyTrends buckets over the trailing 6 calendar months ending with
// the current month, [monthStart, monthEnd] inclusive.
func monthlyTrends(docs []document.Document, now time.Time) []MonthlyTrend {
	series := make([]MonthlyTrend, 0, 6)

	for i := 5; i >= 0; i-- {
		start, end := monthBounds(now, -i)
		entry := MonthlyTrend{Month: monthLabel(start)}

		for _, doc := range docs {
			if inRange(doc.CreatedAt, start, end) {
				entry.Created++
			}
			if t := resolutionTime(doc); t != nil && inRange(*t, start, end) {
				entry.Completed++
			}
		}

		series = append(series, entry)
	}

	return series
}

func monthlyProduction(docs []document.Document, now time.Time) []MonthlyProduction {
	series := make([]MonthlyProduction, 0, 6)

	for i := 5; i >= 0; i-- {
		start, end := monthBounds(now, -i)
		entry := MonthlyProduction{Month: monthLabel(start)}

		for _, doc := range docs {
			if inRange(doc.CreatedAt, start, end) {
				entry.Total++
			}
			if t := resolutionTime(doc); t != nil && inRange(*t, start, end) {
				entry.Completed++
			}
		}

		series = append(series, entry)
	}

	return series
}

func countByType(docs []document.Document) DocumentsByType {
	var byType DocumentsByType
	for _, doc := range docs {
		switch doc.Type {
		case document.TypeCertidao:
			byType.Certidoes++
		case document.TypeRelatorio:
			byType.Relatorios++
		case document.TypeOficio:
			byType.Oficios++
		case document.TypeExtincao:
			byType.Extincoes++
		}
	}
	return byType
}

// averageCompletionDays averages (resolution - createdAt) in days over
// completed active documents and all archived documents that carry a
// resolution timestamp.
func averageCompletionDays(activeDocs, archivedDocs []document.Document) float64 {
	var totalDays float64
	var count int

	for _, doc := range activeDocs {
		if doc.Status != document.StatusCompleted {
			continue
		}
		if doc.CompletedAt == nil {
			continue
		}
		totalDays += doc.CompletedAt.Sub(doc.CreatedAt).Hours() / 24
		count++
	}

	for _, doc := range archivedDocs {
		t := resolutionTime(doc)
		if t == nil {
			continue
		}
		totalDays += t.Sub(doc.CreatedAt).Hours() / 24
		count++
	}

	if count == 0 {
		return 0
	}
	return round1(totalDays / float64(count))
}

// resolutionTime is the instant a document stopped being pending work:
// its completion timestamp, or the archival timestamp when a document
// was archived without ever recording one.
func resolutionTime(doc document.Document) *time.Time {
	if doc.CompletedAt != nil {
		return doc.CompletedAt
	}
	if doc.IsArchived {
		return doc.ArchivedAt
	}
	return nil
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func monthBounds(now time.Time, offsetMonths int) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, offsetMonths, 0)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func monthLabel(monthStart time.Time) string {
	return monthAbbrev[monthStart.Month()-1] + "/" + monthStart.Format("06")
}
