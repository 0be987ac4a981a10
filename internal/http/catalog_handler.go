package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syntriq/cart-service/internal/catalog"
	"github.com/syntriq/cart-service/internal/i18n"
)

// CatalogHandler provides HTTP handlers for catalog lookups.
type CatalogHandler struct {
	catalog catalog.Service
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(cat catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListProducts handles GET /api/catalog requests.
//
// @Summary      List catalog products
// @Description  Returns every catalog product in display order. An optional category query parameter filters the list.
// @Tags         Catalog
// @Produce      json
// @Param        category query string false "Category filter" Enums(hardware, software)
// @Success      200 {object} dto.SuccessResponse{data=[]model.Product} "Product list"
// @Router       /api/catalog [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if category := c.Query("category"); category != "" {
		builder.SuccessOK(h.catalog.ProductsByCategory(category))
		return
	}
	builder.SuccessOK(h.catalog.Products())
}

// GetProduct handles GET /api/catalog/:id requests. The path segment
// is matched against product ids first, then slugs.
//
// @Summary      Get catalog product
// @Description  Returns a single product by id or slug.
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Product id or slug"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Product"
// @Failure      404 {object} dto.ErrorResponse "Unknown product"
// @Router       /api/catalog/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	product := h.catalog.ProductByID(id)
	if product == nil {
		product = h.catalog.ProductBySlug(id)
	}
	if product == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
		return
	}

	builder.SuccessOK(product)
}
