package report

import (
	"bytes"
	"testing"

	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"
)

func TestRenderProductivityPDF(t *testing.T) {
	created := testNow.AddDate(0, 0, -10)
	active := []document.Document{
		activeDoc(1, document.TypeCertidao, document.StatusCompleted,
			testNow.AddDate(0, 0, 10), created, ptrTime(created.AddDate(0, 0, 5)), ptrInt64(1)),
		activeDoc(2, document.TypeRelatorio, document.StatusInProgress,
			testNow.AddDate(0, 0, -1), created, nil, ptrInt64(1)),
	}
	users := []user.User{{ID: 1, Name: "Maria Souza"}}

	report := ComputeSystemReport(active, nil, users, testNow)

	payload, err := RenderProductivityPDF(report, "Secretaria de Administração Penitenciária", testNow)
	if err != nil {
		t.Fatalf("RenderProductivityPDF: %v", err)
	}

	if len(payload) == 0 {
		t.Fatal("empty PDF output")
	}
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header: %q", payload[:8])
	}
}
