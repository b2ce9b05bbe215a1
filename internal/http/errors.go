package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"socialhub/internal/service"
)

const internalErrorMessage = "Internal server error"

// writeError converts a service error into a response. Unexpected errors are
// logged with their cause and reported to the caller without detail.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	c.JSON(h.statusFor(c, op, err))
}

func (h *Handler) statusFor(c *gin.Context, op string, err error) (int, gin.H) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, gin.H{"error": err.Error()}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": err.Error()}
	}

	h.logger.WithError(err).WithFields(logrus.Fields{
		"op":   op,
		"path": c.Request.URL.Path,
	}).Error("request failed")
	return http.StatusInternalServerError, gin.H{"error": internalErrorMessage}
}
