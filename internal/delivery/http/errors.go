package http

import (
	"errors"
	"net/http"

	"github.com/foodinfo/backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// errorStatus maps a core error onto its transport status and operator-facing
// message. The taxonomy is closed: every failure leaving the core is one of
// the five variants, and anything else is reported as a plain 500.
func errorStatus(err error) (int, string) {
	var upstream *domain.UpstreamStatusError
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		return http.StatusBadRequest, "invalid query"
	case errors.Is(err, domain.ErrMisconfigured):
		return http.StatusInternalServerError, "server misconfigured"
	case errors.Is(err, domain.ErrFoodNotFound):
		return http.StatusNotFound, "food not found"
	case errors.As(err, &upstream):
		msg := upstream.Message
		if msg == "" {
			msg = "upstream rejected request"
		}
		return upstream.StatusCode, msg
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "upstream request failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// writeError renders a failed request, called once per failure
func writeError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	c.JSON(status, gin.H{"error": msg})
}
