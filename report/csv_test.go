package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"
)

func TestWriteDocumentsCSVRoundTrip(t *testing.T) {
	deadline := time.Date(2025, 7, 1, 23, 59, 0, 0, time.UTC)
	created := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	docs := []document.Document{
		{
			ID:            1,
			ProcessNumber: `0001234-56.2025, vol. "especial"`,
			PrisonerName:  `Silva, José "Zé" da`,
			Type:          document.TypeCertidao,
			Status:        document.StatusInProgress,
			Deadline:      deadline,
			AssignedTo:    ptrInt64(7),
			CreatedAt:     created,
		},
		{
			ID:            2,
			ProcessNumber: "0002222-11.2025",
			PrisonerName:  "Maria Pereira",
			Type:          document.TypeOficio,
			Status:        document.StatusCompleted,
			Deadline:      deadline,
			CreatedAt:     created,
			CompletedAt:   ptrTime(created.AddDate(0, 0, 3)),
		},
	}
	users := []user.User{{ID: 7, Name: "Carlos Andrade"}}

	var buf bytes.Buffer
	if err := WriteDocumentsCSV(&buf, docs, users); err != nil {
		t.Fatalf("WriteDocumentsCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing generated CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}

	row := records[1]
	if row[0] != docs[0].ProcessNumber {
		t.Errorf("process number = %q, want %q", row[0], docs[0].ProcessNumber)
	}
	if row[1] != docs[0].PrisonerName {
		t.Errorf("prisoner name = %q, want %q", row[1], docs[0].PrisonerName)
	}
	if row[2] != document.TypeCertidao {
		t.Errorf("type = %q, want %q", row[2], document.TypeCertidao)
	}
	if row[3] != document.StatusInProgress {
		t.Errorf("status = %q, want %q", row[3], document.StatusInProgress)
	}
	if row[4] != deadline.Format(time.RFC3339) {
		t.Errorf("deadline = %q, want %q", row[4], deadline.Format(time.RFC3339))
	}
	if row[5] != "Carlos Andrade" {
		t.Errorf("assignee = %q, want resolved name", row[5])
	}

	row2 := records[2]
	if row2[5] != UnassignedMarker {
		t.Errorf("assignee = %q, want %q for unassigned document", row2[5], UnassignedMarker)
	}
	if row2[7] == "" {
		t.Error("completed document should carry its completion timestamp")
	}
}

func TestWriteDocumentsCSVEscapesDelimiters(t *testing.T) {
	docs := []document.Document{
		{
			ProcessNumber: "a,b",
			PrisonerName:  `c"d`,
			Type:          document.TypeRelatorio,
			Status:        document.StatusInProgress,
			Deadline:      testNow,
			CreatedAt:     testNow,
		},
	}

	var buf bytes.Buffer
	if err := WriteDocumentsCSV(&buf, docs, nil); err != nil {
		t.Fatalf("WriteDocumentsCSV: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"a,b"`) {
		t.Errorf("field with comma not quoted: %s", out)
	}
	if !strings.Contains(out, `"c""d"`) {
		t.Errorf("field with quote not escaped: %s", out)
	}
}
