package report

import (
	"testing"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt64(v int64) *int64        { return &v }

func activeDoc(id int64, docType, status string, deadline, createdAt time.Time, completedAt *time.Time, assignedTo *int64) document.Document {
	return document.Document{
		ID:            id,
		ProcessNumber: "0001234-56.2025",
		PrisonerName:  "Fulano de Tal",
		Type:          docType,
		Status:        status,
		Deadline:      deadline,
		AssignedTo:    assignedTo,
		CreatedAt:     createdAt,
		CompletedAt:   completedAt,
	}
}

func archivedDoc(id int64, docType string, createdAt, archivedAt time.Time, completedAt *time.Time, assignedTo *int64) document.Document {
	return document.Document{
		ID:            id,
		ProcessNumber: "0009876-54.2025",
		PrisonerName:  "Beltrano de Tal",
		Type:          docType,
		Status:        document.StatusArchived,
		Deadline:      createdAt.AddDate(0, 0, 30),
		AssignedTo:    assignedTo,
		CreatedAt:     createdAt,
		CompletedAt:   completedAt,
		IsArchived:    true,
		ArchivedAt:    ptrTime(archivedAt),
	}
}

func TestComputeSystemReportScenario(t *testing.T) {
	created := testNow.AddDate(0, 0, -10)

	active := []document.Document{
		activeDoc(1, document.TypeCertidao, document.StatusCompleted,
			testNow.AddDate(0, 0, 10), created, ptrTime(created.AddDate(0, 0, 5)), nil),
		activeDoc(2, document.TypeRelatorio, document.StatusInProgress,
			testNow.AddDate(0, 0, -1), created, nil, nil),
		activeDoc(3, document.TypeOficio, document.StatusInProgress,
			testNow.AddDate(0, 0, 5), created, nil, nil),
	}
	archivedCreated := testNow.AddDate(0, 0, -20)
	archived := []document.Document{
		archivedDoc(4, document.TypeExtincao, archivedCreated, archivedCreated.AddDate(0, 0, 10), nil, nil),
	}

	report := ComputeSystemReport(active, archived, nil, testNow)

	if report.TotalDocuments != 4 {
		t.Errorf("TotalDocuments = %d, want 4", report.TotalDocuments)
	}
	if report.CompletedDocuments != 2 {
		t.Errorf("CompletedDocuments = %d, want 2", report.CompletedDocuments)
	}
	if report.InProgressDocuments != 2 {
		t.Errorf("InProgressDocuments = %d, want 2", report.InProgressDocuments)
	}
	if report.OverdueDocuments != 1 {
		t.Errorf("OverdueDocuments = %d, want 1", report.OverdueDocuments)
	}
	if report.CompletionRate != 50 {
		t.Errorf("CompletionRate = %v, want 50", report.CompletionRate)
	}
	if report.AverageCompletionTime != 7.5 {
		t.Errorf("AverageCompletionTime = %v, want 7.5", report.AverageCompletionTime)
	}

	byType := report.DocumentsByType
	if byType.Certidoes != 1 || byType.Relatorios != 1 || byType.Oficios != 1 || byType.Extincoes != 1 {
		t.Errorf("DocumentsByType = %+v, want one of each", byType)
	}
}

func TestCompletedDeadlineInPastIsNotOverdue(t *testing.T) {
	active := []document.Document{
		activeDoc(1, document.TypeCertidao, document.StatusCompleted,
			testNow.AddDate(0, 0, -5), testNow.AddDate(0, 0, -10), ptrTime(testNow.AddDate(0, 0, -6)), nil),
	}

	report := ComputeSystemReport(active, nil, nil, testNow)

	if report.OverdueDocuments != 0 {
		t.Errorf("OverdueDocuments = %d, want 0 (completion supersedes lateness)", report.OverdueDocuments)
	}
}

func TestEmptyUniverse(t *testing.T) {
	report := ComputeSystemReport(nil, nil, nil, testNow)

	if report.TotalDocuments != 0 || report.CompletedDocuments != 0 {
		t.Errorf("counts not zero: %+v", report)
	}
	if report.CompletionRate != 0 {
		t.Errorf("CompletionRate = %v, want 0 on empty set", report.CompletionRate)
	}
	if report.AverageCompletionTime != 0 {
		t.Errorf("AverageCompletionTime = %v, want 0 on empty set", report.AverageCompletionTime)
	}
	if len(report.DailyProduction) != 30 {
		t.Errorf("DailyProduction has %d entries, want 30", len(report.DailyProduction))
	}
	if len(report.MonthlyTrends) != 6 {
		t.Errorf("MonthlyTrends has %d entries, want 6", len(report.MonthlyTrends))
	}
}

func TestDailyProductionWindow(t *testing.T) {
	report := ComputeSystemReport(nil, nil, nil, testNow)

	if len(report.DailyProduction) != 30 {
		t.Fatalf("DailyProduction has %d entries, want 30", len(report.DailyProduction))
	}

	first := testNow.AddDate(0, 0, -29).Format("02/01")
	last := testNow.Format("02/01")
	if report.DailyProduction[0].Date != first {
		t.Errorf("first daily bucket = %s, want %s", report.DailyProduction[0].Date, first)
	}
	if report.DailyProduction[29].Date != last {
		t.Errorf("last daily bucket = %s, want %s", report.DailyProduction[29].Date, last)
	}
}

func TestDailyProductionCounts(t *testing.T) {
	created := testNow.AddDate(0, 0, -3)
	completed := testNow.AddDate(0, 0, -1)

	active := []document.Document{
		activeDoc(1, document.TypeCertidao, document.StatusCompleted,
			testNow, created, ptrTime(completed), nil),
	}

	report := ComputeSystemReport(active, nil, nil, testNow)

	for _, entry := range report.DailyProduction {
		switch entry.Date {
		case created.Format("02/01"):
			if entry.Created != 1 {
				t.Errorf("bucket %s Created = %d, want 1", entry.Date, entry.Created)
			}
		case completed.Format("02/01"):
			if entry.Completed != 1 {
				t.Errorf("bucket %s Completed = %d, want 1", entry.Date, entry.Completed)
			}
		default:
			if entry.Created != 0 || entry.Completed != 0 {
				t.Errorf("bucket %s unexpectedly non-zero: %+v", entry.Date, entry)
			}
		}
	}
}

func TestMonthlyTrendsWindow(t *testing.T) {
	created := testNow.AddDate(0, -3, 0)

	active := []document.Document{
		activeDoc(1, document.TypeRelatorio, document.StatusInProgress,
			testNow.AddDate(0, 0, 30), created, nil, nil),
	}

	report := ComputeSystemReport(active, nil, nil, testNow)

	if len(report.MonthlyTrends) != 6 {
		t.Fatalf("MonthlyTrends has %d entries, want 6", len(report.MonthlyTrends))
	}

	// Trailing window ends at the current month.
	wantLast := "jun/25"
	if report.MonthlyTrends[5].Month != wantLast {
		t.Errorf("last month label = %s, want %s", report.MonthlyTrends[5].Month, wantLast)
	}

	found := false
	for _, entry := range report.MonthlyTrends {
		if entry.Month == "mar/25" {
			found = true
			if entry.Created != 1 {
				t.Errorf("mar/25 Created = %d, want 1", entry.Created)
			}
		}
	}
	if !found {
		t.Error("expected a mar/25 bucket in the 6-month window")
	}
}

func TestUnknownTypeIsSilentlyExcluded(t *testing.T) {
	active := []document.Document{
		activeDoc(1, "Alvará", document.StatusInProgress, testNow.AddDate(0, 0, 5), testNow.AddDate(0, 0, -1), nil, nil),
		activeDoc(2, document.TypeCertidao, document.StatusInProgress, testNow.AddDate(0, 0, 5), testNow.AddDate(0, 0, -1), nil, nil),
	}

	report := ComputeSystemReport(active, nil, nil, testNow)

	if report.TotalDocuments != 2 {
		t.Errorf("TotalDocuments = %d, want 2", report.TotalDocuments)
	}
	if got := report.DocumentsByType.Total(); got != 1 {
		t.Errorf("sum of type buckets = %d, want 1 (unknown type excluded)", got)
	}
}

func TestArchivingMovesDocumentToCompleted(t *testing.T) {
	created := testNow.AddDate(0, 0, -10)
	doc := activeDoc(1, document.TypeCertidao, document.StatusInProgress,
		testNow.AddDate(0, 0, -1), created, nil, nil)

	before := ComputeSystemReport([]document.Document{doc}, nil, nil, testNow)
	if before.CompletedDocuments != 0 || before.OverdueDocuments != 1 {
		t.Fatalf("before archive: %+v", before)
	}

	doc.IsArchived = true
	doc.ArchivedAt = ptrTime(testNow)
	doc.Status = document.StatusArchived

	after := ComputeSystemReport(nil, []document.Document{doc}, nil, testNow)
	if after.TotalDocuments != before.TotalDocuments {
		t.Errorf("TotalDocuments changed: %d -> %d", before.TotalDocuments, after.TotalDocuments)
	}
	if after.CompletedDocuments != 1 {
		t.Errorf("CompletedDocuments = %d, want 1 after archive", after.CompletedDocuments)
	}
	if after.OverdueDocuments != 0 {
		t.Errorf("OverdueDocuments = %d, want 0 after archive", after.OverdueDocuments)
	}
	if after.InProgressDocuments != 0 {
		t.Errorf("InProgressDocuments = %d, want 0 after archive", after.InProgressDocuments)
	}
}

func TestUserProductivityZeroAssignments(t *testing.T) {
	users := []user.User{
		{ID: 1, Name: "Maria Souza"},
	}

	active := []document.Document{
		activeDoc(1, document.TypeCertidao, document.StatusInProgress,
			testNow.AddDate(0, 0, 5), testNow.AddDate(0, 0, -1), nil, nil),
	}

	report := ComputeSystemReport(active, nil, users, testNow)

	if len(report.UserProductivity) != 1 {
		t.Fatalf("UserProductivity has %d entries, want 1", len(report.UserProductivity))
	}

	up := report.UserProductivity[0]
	if up.TotalDocuments != 0 || up.CompletedDocuments != 0 || up.OverdueDocuments != 0 {
		t.Errorf("zero-assignment user has non-zero counts: %+v", up)
	}
	if up.CompletionRate != 0 {
		t.Errorf("CompletionRate = %v, want 0", up.CompletionRate)
	}
	if len(up.MonthlyProduction) != 6 {
		t.Errorf("MonthlyProduction has %d entries, want 6 even with no documents", len(up.MonthlyProduction))
	}
}

func TestUserProductivityCounts(t *testing.T) {
	users := []user.User{
		{ID: 1, Name: "Maria Souza"},
		{ID: 2, Name: "João Lima"},
	}

	created := testNow.AddDate(0, 0, -8)
	active := []document.Document{
		activeDoc(1, document.TypeCertidao, document.StatusCompleted,
			testNow.AddDate(0, 0, 2), created, ptrTime(created.AddDate(0, 0, 4)), ptrInt64(1)),
		activeDoc(2, document.TypeRelatorio, document.StatusInProgress,
			testNow.AddDate(0, 0, -1), created, nil, ptrInt64(1)),
	}
	archived := []document.Document{
		archivedDoc(3, document.TypeOficio, created, created.AddDate(0, 0, 6), nil, ptrInt64(2)),
	}

	report := ComputeSystemReport(active, archived, users, testNow)

	var maria, joao UserProductivity
	for _, up := range report.UserProductivity {
		switch up.UserID {
		case 1:
			maria = up
		case 2:
			joao = up
		}
	}

	if maria.TotalDocuments != 2 || maria.CompletedDocuments != 1 || maria.OverdueDocuments != 1 {
		t.Errorf("maria = %+v", maria)
	}
	if maria.CompletionRate != 50 {
		t.Errorf("maria.CompletionRate = %v, want 50", maria.CompletionRate)
	}
	if joao.TotalDocuments != 1 || joao.CompletedDocuments != 1 {
		t.Errorf("joao = %+v", joao)
	}
	if joao.CompletionRate != 100 {
		t.Errorf("joao.CompletionRate = %v, want 100", joao.CompletionRate)
	}
}

func TestReportInvariants(t *testing.T) {
	created := testNow.AddDate(0, 0, -5)
	active := []document.Document{
		activeDoc(1, document.TypeCertidao, document.StatusCompleted, testNow, created, ptrTime(testNow), nil),
		activeDoc(2, document.TypeRelatorio, document.StatusInProgress, testNow.AddDate(0, 0, -2), created, nil, nil),
		activeDoc(3, "Desconhecido", document.StatusInProgress, testNow.AddDate(0, 0, 2), created, nil, nil),
	}
	archived := []document.Document{
		archivedDoc(4, document.TypeOficio, created, testNow, nil, nil),
	}

	report := ComputeSystemReport(active, archived, nil, testNow)

	if report.CompletedDocuments > report.TotalDocuments {
		t.Errorf("CompletedDocuments %d > TotalDocuments %d", report.CompletedDocuments, report.TotalDocuments)
	}
	if report.InProgressDocuments+report.OverdueDocuments > report.TotalDocuments {
		t.Error("in-progress + overdue exceeds total")
	}
	if report.CompletionRate < 0 || report.CompletionRate > 100 {
		t.Errorf("CompletionRate %v out of [0,100]", report.CompletionRate)
	}
	if report.DocumentsByType.Total() > report.TotalDocuments {
		t.Error("type bucket sum exceeds total")
	}
}

func TestYearlyComparisonGrowth(t *testing.T) {
	mkDoc := func(year int) document.Document {
		created := time.Date(year, 3, 1, 10, 0, 0, 0, time.UTC)
		return activeDoc(1, document.TypeCertidao, document.StatusInProgress,
			created.AddDate(0, 1, 0), created, nil, nil)
	}

	t.Run("zero baseline with current documents", func(t *testing.T) {
		var docs []document.Document
		for i := 0; i < 5; i++ {
			docs = append(docs, mkDoc(2025))
		}
		comparison := ComputeYearlyComparison(docs, 2025, testNow)
		if comparison.GrowthRate != 100 {
			t.Errorf("GrowthRate = %d, want 100", comparison.GrowthRate)
		}
	})

	t.Run("both years empty", func(t *testing.T) {
		comparison := ComputeYearlyComparison(nil, 2025, testNow)
		if comparison.GrowthRate != 0 {
			t.Errorf("GrowthRate = %d, want 0", comparison.GrowthRate)
		}
	})

	t.Run("normal growth", func(t *testing.T) {
		var docs []document.Document
		for i := 0; i < 4; i++ {
			docs = append(docs, mkDoc(2024))
		}
		for i := 0; i < 6; i++ {
			docs = append(docs, mkDoc(2025))
		}
		comparison := ComputeYearlyComparison(docs, 2025, testNow)
		if comparison.GrowthRate != 50 {
			t.Errorf("GrowthRate = %d, want 50", comparison.GrowthRate)
		}
		if comparison.CurrentYear.TotalDocuments != 6 || comparison.PreviousYear.TotalDocuments != 4 {
			t.Errorf("year totals = %d/%d, want 6/4",
				comparison.CurrentYear.TotalDocuments, comparison.PreviousYear.TotalDocuments)
		}
	})

	t.Run("archived counts toward completion year", func(t *testing.T) {
		created := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
		docs := []document.Document{
			archivedDoc(1, document.TypeCertidao, created, created.AddDate(0, 0, 20), nil, nil),
		}
		comparison := ComputeYearlyComparison(docs, 2025, testNow)
		if comparison.CurrentYear.CompletedDocuments != 1 {
			t.Errorf("CurrentYear.CompletedDocuments = %d, want 1", comparison.CurrentYear.CompletedDocuments)
		}
	})
}

func TestComputeSystemReportDoesNotMutateInputs(t *testing.T) {
	created := testNow.AddDate(0, 0, -2)
	active := []document.Document{
		activeDoc(1, document.TypeCertidao, document.StatusInProgress, testNow, created, nil, nil),
	}
	orig := active[0]

	_ = ComputeSystemReport(active, nil, nil, testNow)

	if active[0] != orig {
		t.Error("ComputeSystemReport mutated its input slice")
	}
}
