package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrSessionNotFound),
		errors.Is(err, dto.ErrProfileNotFound),
		errors.Is(err, dto.ErrSchemeNotFound):
		return http.StatusNotFound
	case errors.Is(err, dto.ErrIncompleteProfile):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dto.ErrStaleResult), errors.Is(err, context.Canceled):
		return http.StatusConflict
	case errors.Is(err, dto.ErrUnsupportedFile):
		return http.StatusUnsupportedMediaType
	}
	return http.StatusInternalServerError
}

// sendError sends a structured error response
func sendError(c *gin.Context, statusCode int, code, message string, err error) {
	errorMsg := message
	resp := dto.ErrorResponse{Error: code, Code: statusCode}
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)

		var perr *dto.ProfileError
		if errors.As(err, &perr) {
			resp.Missing = perr.Missing
		}
	}
	resp.Message = errorMsg

	c.JSON(statusCode, resp)
}
