package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buynary/backend/internal/domain"
	"github.com/buynary/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog    domain.CatalogRepository
	parser     *usecase.TranscriptParser
	comparison *usecase.ComparisonService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog domain.CatalogRepository,
	parser *usecase.TranscriptParser,
	comparison *usecase.ComparisonService,
) *Handler {
	return &Handler{
		catalog:    catalog,
		parser:     parser,
		comparison: comparison,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "buynary-backend",
		"version": "1.0.0",
	})
}

// ListStores returns all stores in the catalog
func (h *Handler) ListStores(c *gin.Context) {
	stores, err := h.catalog.Stores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrCatalogUnavailable.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

type parseRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// ParseTranscript converts a speech transcript into structured grocery items
func (h *Handler) ParseTranscript(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
		return
	}

	items := h.parser.Parse(req.Transcript)

	c.JSON(http.StatusOK, gin.H{"items": items})
}

type compareRequest struct {
	Items      []domain.GroceryItem `json:"items"`
	Transcript string               `json:"transcript"`
	SortBy     domain.SortMode      `json:"sortBy"`
}

// CompareStores runs the full comparison pipeline: optional transcript
// parsing, per-store aggregation, then ranking by the requested criterion.
// Transcript items are appended after manual items, mirroring how the list
// is built up in the client.
func (h *Handler) CompareStores(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
		return
	}

	groceryList := make([]domain.GroceryItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
			return
		}
		groceryList = append(groceryList, item.Normalized())
	}
	if req.Transcript != "" {
		groceryList = append(groceryList, h.parser.Parse(req.Transcript)...)
	}

	if len(groceryList) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrEmptyGroceryList.Error()})
		return
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = domain.SortModePrice
	}

	ctx := c.Request.Context()
	stores, err := h.catalog.Stores(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrCatalogUnavailable.Error()})
		return
	}
	products, err := h.catalog.Products(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrCatalogUnavailable.Error()})
		return
	}

	results, err := h.comparison.Compare(ctx, groceryList, stores, products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ranked, err := usecase.SortResults(results, sortBy)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSortMode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    groceryList,
		"sortedBy": sortBy,
		"results":  ranked,
	})
}
