package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "barshift-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// writeError maps service errors to HTTP responses. Eligibility failures
// return the full violation batch so the client can render every problem
// at once.
func writeError(c *gin.Context, err error, fallback string) {
	if eligErr := apperrors.AsEligibility(err); eligErr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "assignment not eligible",
			"violations": eligErr.Violations,
		})
		return
	}

	var fieldErrs validator.ValidationErrors
	switch {
	case apperrors.IsValidation(err), errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// parseUUIDParam parses a UUID path parameter, writing a 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads limit/offset query parameters with defaults
func parsePagination(c *gin.Context) (limit, offset int) {
	limit = queryInt(c, "limit", 20)
	offset = queryInt(c, "offset", 0)
	return limit, offset
}

// parseUUIDQuery parses a UUID query parameter, writing a 400 on failure
func parseUUIDQuery(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return value
}
