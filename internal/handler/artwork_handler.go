package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-catalog/internal/domain/artwork"
	"atelier-catalog/internal/services"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/internal/validation"
	"atelier-catalog/pkg/apierrors"
)

type ArtworkHandler struct {
	service *services.ArtworkService
}

func NewArtworkHandler(service *services.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

func (h *ArtworkHandler) List(c *gin.Context) {
	var status artwork.Status
	if raw := c.Query("status"); raw != "" {
		status = artwork.Status(raw)
		if !status.Valid() {
			c.Error(apierrors.Validation("status must be one of draft, published, archived"))
			return
		}
	}

	artworks, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(artworks))
}

func (h *ArtworkHandler) GetByID(c *gin.Context) {
	id, err := validation.ParseArtworkID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(a))
}

func (h *ArtworkHandler) Update(c *gin.Context) {
	id, err := validation.ParseArtworkID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	var req httpdto.UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apierrors.Validation("invalid request body"))
		return
	}

	patch, err := validation.ParseArtworkUpdate(req)
	if err != nil {
		c.Error(err)
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(a))
}

func (h *ArtworkHandler) Delete(c *gin.Context) {
	id, err := validation.ParseArtworkID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewMessageResponse("artwork deleted"))
}
