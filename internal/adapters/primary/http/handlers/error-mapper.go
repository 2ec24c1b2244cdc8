package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bank-marketing-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Readiness errors: the caller should retry against a healthy replica.
	case errors.Is(err, domain.ErrServiceUnavailable),
		errors.Is(err, domain.ErrArtifactUnavailable),
		errors.Is(err, domain.ErrArtifactNotFound),
		errors.Is(err, domain.ErrAccessDenied),
		errors.Is(err, domain.ErrModelCorrupt):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
