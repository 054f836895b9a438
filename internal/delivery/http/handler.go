package http

import (
	"context"
	"net/http"

	"github.com/foodinfo/backend/internal/domain"
	"github.com/foodinfo/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Version is the service version reported by the health endpoint and the
// startup log.
const Version = "1.0.0"

// FoodFinder is the slice of the usecase layer the handlers need
type FoodFinder interface {
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchPage, error)
	Lookup(ctx context.Context, fdcID int64) (*domain.FoodDetail, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	foods FoodFinder
}

// NewHandler creates a new HTTP handler
func NewHandler(foods FoodFinder) *Handler {
	return &Handler{
		foods: foods,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "foodinfo-backend",
		"version": Version,
	})
}

// SearchFoods handles GET /search?query=...&page=...
func (h *Handler) SearchFoods(c *gin.Context) {
	query, err := usecase.ParseSearchQuery(c.Query("query"), c.Query("page"))
	if err != nil {
		writeError(c, err)
		return
	}

	page, err := h.foods.Search(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetFood handles GET /food/:fdcId
func (h *Handler) GetFood(c *gin.Context) {
	fdcID, err := usecase.ParseFdcID(c.Param("fdcId"))
	if err != nil {
		writeError(c, err)
		return
	}

	detail, err := h.foods.Lookup(c.Request.Context(), fdcID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
