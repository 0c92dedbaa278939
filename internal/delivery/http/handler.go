package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowpage/backend/internal/domain"
	"github.com/glowpage/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	parser      *usecase.RecordParser
	pageService *usecase.PageService
}

// NewHandler creates a new HTTP handler
func NewHandler(parser *usecase.RecordParser, pageService *usecase.PageService) *Handler {
	return &Handler{
		parser:      parser,
		pageService: pageService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "glowpage-backend",
		"version": "1.0.0",
	})
}

// GeneratePage handles product page generation requests.
// Accepts the raw labeled product input and returns the assembled page with
// FAQ and comparison sections.
func (h *Handler) GeneratePage(c *gin.Context) {
	if h.pageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "page service not configured",
		})
		return
	}

	var raw domain.RawProductInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	record, err := h.parser.Parse(raw)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedRecord) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "product name is required",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.GeneratePage(c.Request.Context(), record)
	if err != nil {
		log.Printf("[HTTP] Page generation failed: product=%s err=%v", record.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "page generation failed",
		})
		return
	}

	c.JSON(http.StatusOK, page)
}
