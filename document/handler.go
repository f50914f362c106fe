package document

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/settings"
	"github.com/Lazaro2022/LazaroSEG-sub000/util"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	service     *DocumentService
	settingsSvc *settings.SettingsService
}

func NewDocumentHandler(service *DocumentService, settingsSvc *settings.SettingsService) *DocumentHandler {
	return &DocumentHandler{
		service:     service,
		settingsSvc: settingsSvc,
	}
}

func (h *DocumentHandler) urgentDaysThreshold() int {
	s, err := h.settingsSvc.GetSettings()
	if err != nil {
		return 3
	}
	return s.UrgentDaysThreshold
}

func (h *DocumentHandler) CreateDocument(ctx *gin.Context) {
	var req CreateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	document, err := h.service.CreateDocument(&req)
	if err != nil {
		if errors.Is(err, ErrInvalidType) {
			util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid document type")
			return
		}
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.CreatedResponse(ctx, "Document created successfully", document)
}

func (h *DocumentHandler) GetDocuments(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	filter := DocumentFilter{
		Search:        ctx.Query("search"),
		Type:          ctx.Query("type"),
		Status:        ctx.Query("status"),
		Limit:         limit,
		Offset:        offset,
		SortBy:        ctx.Query("sort_by"),
		SortDirection: ctx.Query("sort_direction"),
	}

	if assignedStr := ctx.Query("assigned_to"); assignedStr != "" {
		if assignedID, err := strconv.ParseInt(assignedStr, 10, 64); err == nil {
			filter.AssignedTo = &assignedID
		}
	}

	if startStr := ctx.Query("start_date"); startStr != "" {
		if start, err := time.Parse(time.RFC3339, startStr); err == nil {
			filter.StartDate = &start
		}
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		if end, err := time.Parse(time.RFC3339, endStr); err == nil {
			filter.EndDate = &end
		}
	}

	documents, total, err := h.service.GetAllDocuments(filter, h.urgentDaysThreshold())
	if err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	response := map[string]interface{}{
		"documents": documents,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	}

	util.SuccessResponse(ctx, "Documents retrieved successfully", response)
}

func (h *DocumentHandler) GetArchivedDocuments(ctx *gin.Context) {
	documents, err := h.service.GetArchivedDocuments()
	if err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Archived documents retrieved successfully", documents)
}

func (h *DocumentHandler) GetDocumentByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid document ID")
		return
	}

	document, err := h.service.GetDocumentByID(id)
	if err != nil {
		util.ErrorResponse(ctx, http.StatusNotFound, "Document not found")
		return
	}

	util.SuccessResponse(ctx, "Document retrieved successfully", document)
}

func (h *DocumentHandler) UpdateDocument(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid document ID")
		return
	}

	var req UpdateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	document, err := h.service.UpdateDocument(id, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidType) {
			util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid document type")
			return
		}
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Document updated successfully", document)
}

func (h *DocumentHandler) CompleteDocument(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid document ID")
		return
	}

	document, err := h.service.CompleteDocument(id)
	if err != nil {
		if errors.Is(err, ErrAlreadyCompleted) || errors.Is(err, ErrAlreadyArchived) {
			util.ErrorResponse(ctx, http.StatusConflict, err.Error())
			return
		}
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Document completed successfully", document)
}

func (h *DocumentHandler) ArchiveDocument(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid document ID")
		return
	}

	document, err := h.service.ArchiveDocument(id)
	if err != nil {
		if errors.Is(err, ErrAlreadyArchived) {
			util.ErrorResponse(ctx, http.StatusConflict, err.Error())
			return
		}
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Document archived successfully", document)
}

func (h *DocumentHandler) RestoreDocument(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid document ID")
		return
	}

	document, err := h.service.RestoreDocument(id)
	if err != nil {
		if errors.Is(err, ErrNotArchived) {
			util.ErrorResponse(ctx, http.StatusConflict, err.Error())
			return
		}
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Document restored successfully", document)
}

func (h *DocumentHandler) DeleteDocument(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := h.service.DeleteDocument(id); err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Document deleted successfully", nil)
}
