package handlers

import (
	"errors"
	"net/http"

	"matchboard/internal/service"

	"github.com/gin-gonic/gin"
)

const errInternal = "internal server error"

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body: " + err.Error()})
		return false
	}
	return true
}

// respondDomainError maps service errors onto the API's error taxonomy:
// validation 400, authn 401, ownership 403, missing rows 404, the rest 500
// with a generic message and the detail only in the log.
func (h *Handler) respondDomainError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrOwnHelp),
		errors.Is(err, service.ErrInvalidHelpStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "you are not allowed to do this"})
	case errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrHelpNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDHeader)}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternal})
	}
}
