package document

import (
	"testing"
	"time"
)

func TestDisplayStatusFor(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	completedAt := now.AddDate(0, 0, -1)

	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			name: "in progress with distant deadline",
			doc:  Document{Status: StatusInProgress, Deadline: now.AddDate(0, 0, 30)},
			want: StatusInProgress,
		},
		{
			name: "deadline within urgent threshold",
			doc:  Document{Status: StatusInProgress, Deadline: now.AddDate(0, 0, 2)},
			want: DisplayUrgent,
		},
		{
			name: "deadline in the past",
			doc:  Document{Status: StatusInProgress, Deadline: now.AddDate(0, 0, -1)},
			want: DisplayOverdue,
		},
		{
			name: "completed past deadline is not overdue",
			doc:  Document{Status: StatusCompleted, Deadline: now.AddDate(0, 0, -1), CompletedAt: &completedAt},
			want: StatusCompleted,
		},
		{
			name: "archived always shows archived",
			doc:  Document{Status: StatusInProgress, Deadline: now.AddDate(0, 0, -1), IsArchived: true},
			want: StatusArchived,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayStatusFor(&tt.doc, now, 3); got != tt.want {
				t.Errorf("DisplayStatusFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidType(t *testing.T) {
	for _, valid := range []string{TypeCertidao, TypeRelatorio, TypeOficio, TypeExtincao} {
		if !ValidType(valid) {
			t.Errorf("ValidType(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "Alvará", "certidão"} {
		if ValidType(invalid) {
			t.Errorf("ValidType(%q) = true, want false", invalid)
		}
	}
}
