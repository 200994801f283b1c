package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-catalog/internal/services"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/internal/validation"
	"atelier-catalog/pkg/apierrors"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload accepts a multipart form with an "image" file and optional title,
// artistNotes, price and status fields.
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.Error(apierrors.Validation("image file is required"))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if err := validation.ValidateImageFile(header.Size, contentType); err != nil {
		c.Error(err)
		return
	}

	fields, err := validation.ParseCreateFields(
		c.PostForm("title"),
		c.PostForm("artistNotes"),
		c.PostForm("price"),
		c.PostForm("status"),
	)
	if err != nil {
		c.Error(err)
		return
	}

	file, err := header.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, validation.MaxFileSize+1))
	if err != nil {
		c.Error(err)
		return
	}
	if int64(len(data)) > validation.MaxFileSize {
		c.Error(apierrors.ErrTooLarge)
		return
	}

	a, err := h.service.Upload(c.Request.Context(), data, header.Filename, fields)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(a))
}

// Constraints tells clients the accepted file sizes and types up front.
func (h *UploadHandler) Constraints(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.UploadConstraints{
		MaxFileSize:  validation.MaxFileSize,
		AllowedTypes: validation.AllowedImageTypes,
	}))
}
