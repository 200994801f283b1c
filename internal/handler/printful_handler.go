package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-catalog/internal/printful"
	"atelier-catalog/internal/services"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/internal/validation"
	"atelier-catalog/pkg/apierrors"
)

type PrintfulHandler struct {
	service *services.ProductService
}

func NewPrintfulHandler(service *services.ProductService) *PrintfulHandler {
	return &PrintfulHandler{service: service}
}

// Catalog lists the product types artworks can be pushed to, with suggested
// retail prices.
func (h *PrintfulHandler) Catalog(c *gin.Context) {
	types := printful.AvailableProductTypes()
	items := make([]httpdto.ProductInfo, 0, len(types))
	for _, t := range types {
		items = append(items, httpdto.ProductInfo{
			Type:            t,
			Name:            printful.Products[t].Name,
			SuggestedRetail: printful.SuggestedPrices[t],
		})
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(items))
}

func (h *PrintfulHandler) CreateProducts(c *gin.Context) {
	var req httpdto.CreateProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apierrors.Validation("invalid request body"))
		return
	}

	in, err := validation.ParseCreateProducts(req)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.CreateProducts(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(resp))
}
