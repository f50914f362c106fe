package productivity

import (
	"net/http"

	"github.com/Lazaro2022/LazaroSEG-sub000/util"
	"github.com/gin-gonic/gin"
)

type ServerHandler struct {
	service *ServerService
}

func NewServerHandler(service *ServerService) *ServerHandler {
	return &ServerHandler{service: service}
}

func (h *ServerHandler) GetServers(ctx *gin.Context) {
	servers, err := h.service.GetServers()
	if err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Productivity snapshots retrieved successfully", servers)
}

func (h *ServerHandler) RefreshSnapshots(ctx *gin.Context) {
	if err := h.service.RefreshSnapshots(); err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	servers, err := h.service.GetServers()
	if err != nil {
		util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(ctx, "Productivity snapshots refreshed successfully", servers)
}
