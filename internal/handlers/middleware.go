package handlers

import (
	"net/http"
	"strings"

	"matchboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	identityKey     = "identity"
	requestIDHeader = "X-Request-ID"
)

// identityMiddleware requires a valid Bearer token and stores the decoded
// identity in the Gin context. A missing or malformed header is 401; a token
// that fails verification is 403.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "authentication required",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "invalid Authorization header format",
		})
		return
	}

	ident, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message": "invalid or expired token",
		})
		return
	}

	c.Set(identityKey, ident)
	c.Next()
}

// currentIdentity retrieves what identityMiddleware stored.
func currentIdentity(c *gin.Context) (*service.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	ident, ok := v.(*service.Identity)
	return ident, ok
}

// requestIDMiddleware tags every request with a uuid for log correlation,
// honoring an id supplied by the caller.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(requestIDHeader, id)
	c.Set(requestIDHeader, id)
	c.Next()
}
