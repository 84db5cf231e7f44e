package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Anything untyped is a store failure and surfaces as 500.
func handleServiceError(c *gin.Context, err error) {
	var validation *services.ValidationError
	var blocked *services.BlockedError

	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrDuplicateEmail):
		resp.BadRequest(c, "email already registered")
	case errors.As(err, &validation):
		resp.BadRequest(c, validation.Error())
	case errors.As(err, &blocked):
		resp.Conflict(c, blocked.Reason)
	default:
		resp.ServerError(c, err)
	}
}
