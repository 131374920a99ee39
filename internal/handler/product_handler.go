package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/service"
)

// ProductHandler serves catalog lookups for the wizard entry points.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetBySlug handles GET /api/v1/products/:slug
// @Summary Get a product by slug
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} APIResponse{data=domain.Product}
// @Failure 404 {object} APIResponse "Product not found"
// @Router /products/{slug} [get]
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.productService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, product)
}

// Search handles GET /api/v1/products/search?q=...
// The lookup is debounced per caller; a request superseded by a newer
// keystroke from the same caller returns 204 so the client keeps the
// fresher result set.
// @Summary Typeahead product search
// @Tags products
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} APIResponse{data=[]domain.Product}
// @Success 204 "Superseded by a newer query"
// @Router /products/search [get]
func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		RespondOK(c, []interface{}{})
		return
	}

	// Keystrokes from the same browser share one debounce window.
	clientKey := c.GetHeader("X-Search-Client")
	if clientKey == "" {
		clientKey = c.ClientIP()
	}

	results, stale, err := h.productService.Search(c.Request.Context(), clientKey, query)
	if err != nil {
		HandleError(c, err)
		return
	}
	if stale {
		c.Status(http.StatusNoContent)
		return
	}
	RespondOK(c, results)
}
