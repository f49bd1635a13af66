// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flanvo/internal/http/middleware"
	"flanvo/internal/maps"
	"flanvo/internal/modules/flight"
	"flanvo/internal/modules/group"
	"flanvo/internal/modules/payment"
	"flanvo/internal/modules/pricing"
	"flanvo/internal/modules/request"
	"flanvo/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeDomainError maps module sentinels onto HTTP statuses. Provider
// failures are wrapped, so the checks use errors.Is.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, request.ErrBadRequest),
		errors.Is(err, request.ErrUnresolved),
		errors.Is(err, group.ErrBadRequest),
		errors.Is(err, pricing.ErrNoMembers),
		errors.Is(err, payment.ErrInvalidAmount):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, request.ErrNotFound),
		errors.Is(err, flight.ErrNotFound),
		errors.Is(err, group.ErrNotFound),
		errors.Is(err, maps.ErrNotFound),
		errors.Is(err, maps.ErrNoRoute),
		errors.Is(err, payment.ErrSessionNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, group.ErrFlightMismatch):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, maps.ErrProvider), errors.Is(err, payment.ErrProvider):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// currentUser pulls the identity the auth middleware attached.
func currentUser(c *gin.Context) (types.ID, string) {
	return types.ID(c.GetString(middleware.ContextUserID)), c.GetString(middleware.ContextEmail)
}
