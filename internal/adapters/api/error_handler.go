package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "localweather.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case errorspkg.ErrorTypeValidation:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.ErrorTypeNotFound:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ErrorTypePermissionDenied:
		statusCode = http.StatusForbidden
		message = appErr.Message
	case errorspkg.ErrorTypeNetwork, errorspkg.ErrorTypeServiceUnavailable, errorspkg.ErrorTypeLocationUnavailable:
		statusCode = http.StatusServiceUnavailable
		message = "Service unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}
