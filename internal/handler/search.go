package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/service"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	maxLimit      int
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, maxLimit int) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		maxLimit:      maxLimit,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.capOptions(&req)

	response := h.searchService.Search(c.Request.Context(), &req)
	c.JSON(http.StatusOK, response)
}

// Roommates handles POST /api/v1/search/roommates
func (h *SearchHandler) Roommates(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.capOptions(&req)

	response := h.searchService.Roommates(c.Request.Context(), &req)
	c.JSON(http.StatusOK, response)
}

// GetListing handles GET /api/v1/listings/:id
func (h *SearchHandler) GetListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id"})
		return
	}

	listing, priceCtx, ok := h.searchService.GetListing(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listing":       listing,
		"price_context": priceCtx,
	})
}

func (h *SearchHandler) capOptions(req *model.SearchRequest) {
	if req.Options == nil {
		return
	}
	if req.Options.Limit < 0 {
		req.Options.Limit = 0
	}
	if h.maxLimit > 0 && req.Options.Limit > h.maxLimit {
		req.Options.Limit = h.maxLimit
	}
	if req.Options.TopK < 0 {
		req.Options.TopK = 0
	}
}
