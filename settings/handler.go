package settings

import (
	"net/http"

	"github.com/Lazaro2022/LazaroSEG-sub000/util"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service *SettingsService
}

func NewSettingsHandler(service *SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetSettings(ctx *gin.Context) {
	settings, err := h.service.GetSettings()
	if err != nil {
		util.ErrorResponse(ctx, http.StatusNotFound, "System settings not found")
		return
	}

	util.SuccessResponse(ctx, "Settings retrieved successfully", settings)
}

func (h *SettingsHandler) UpdateSettings(ctx *gin.Context) {
	var req UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	settings, err := h.service.UpdateSettings(&req)
	if err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Settings updated successfully", settings)
}
