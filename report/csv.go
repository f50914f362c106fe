package report

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"
)

// UnassignedMarker fills the assignee column when a document has no
// responsible user.
const UnassignedMarker = "Não atribuído"

var csvHeader = []string{
	"Processo",
	"Nome do Apenado",
	"Tipo",
	"Status",
	"Prazo",
	"Responsável",
	"Criado em",
	"Concluído em",
}

// WriteDocumentsCSV writes one row per document. encoding/csv quotes
// fields containing the delimiter or quotes, so round-tripping them is
// lossless.
func WriteDocumentsCSV(w io.Writer, docs []document.Document, users []user.User) error {
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, doc := range docs {
		assignee := UnassignedMarker
		if doc.AssignedTo != nil {
			if name, ok := names[*doc.AssignedTo]; ok {
				assignee = name
			}
		}

		completedAt := ""
		if doc.CompletedAt != nil {
			completedAt = doc.CompletedAt.Format(time.RFC3339)
		}

		row := []string{
			doc.ProcessNumber,
			doc.PrisonerName,
			doc.Type,
			doc.Status,
			doc.Deadline.Format(time.RFC3339),
			assignee,
			doc.CreatedAt.Format(time.RFC3339),
			completedAt,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
