package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-catalog/internal/services"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/internal/validation"
	"atelier-catalog/pkg/apierrors"
)

type ExportHandler struct {
	service *services.ExportService
}

func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

func (h *ExportHandler) Export(c *gin.Context) {
	var req httpdto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apierrors.Validation("invalid request body"))
		return
	}

	in, err := validation.ParseExportRequest(req)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.Export(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(resp))
}
