package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-catalog/internal/services"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/internal/validation"
	"atelier-catalog/pkg/apierrors"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req httpdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apierrors.Validation("invalid request body"))
		return
	}

	in, err := validation.ParseChatRequest(req)
	if err != nil {
		c.Error(err)
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ChatResponse{Response: reply}))
}
