package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError translates service failures into JSON responses. Validation
// errors become field-keyed bodies; everything else collapses to a
// generic status.
func writeError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		status := http.StatusBadRequest
		switch ve.Code {
		case domain.CodeListingNotFound:
			status = http.StatusNotFound
		case domain.CodeDuplicateReview:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"errors": gin.H{ve.Field: ve.Message}})
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
