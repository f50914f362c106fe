package report

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	service *ReportService
}

func NewReportHandler(service *ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) GetProductivityReport(ctx *gin.Context) {
	report, err := h.service.GetSystemReport(ctx.Request.Context())
	if err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Productivity report generated successfully", report)
}

func (h *ReportHandler) GetYearlyComparison(ctx *gin.Context) {
	comparison, err := h.service.GetYearlyComparison()
	if err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Yearly comparison generated successfully", comparison)
}

func (h *ReportHandler) GetPDFReport(ctx *gin.Context) {
	payload, err := h.service.GeneratePDF()
	if err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("relatorio_%s.pdf", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, "application/pdf", payload)
}

func (h *ReportHandler) ExportDocuments(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", "json")
	period := ctx.DefaultQuery("period", "all")

	docs, users, err := h.service.ExportDocuments(period)
	if err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	switch format {
	case "json":
		util.SuccessResponse(ctx, "Documents exported successfully", gin.H{
			"documents": docs,
			"total":     len(docs),
			"period":    period,
		})
	case "csv":
		filename := fmt.Sprintf("documentos_%s_%s.csv", period, uuid.New().String()[:8])
		ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		ctx.Header("Content-Type", "text/csv; charset=utf-8")
		ctx.Status(http.StatusOK)
		if err := WriteDocumentsCSV(ctx.Writer, docs, users); err != nil {
			// Headers are already written; nothing useful to send back.
			log.Printf("CSV export failed mid-stream: %v", err)
		}
	default:
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid format. Use json or csv")
	}
}
