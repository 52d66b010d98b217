package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login payload. Password is optional on purpose: unknown usernames are
// auto-registered and the stored password may be empty.
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

// @Summary      Log in (auto-registers unknown usernames)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "message, user, token"
// @Success      201  {object}  map[string]interface{}  "message, user, token"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, created, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondDomainError(c, err, "login_failed", "username", input.Username)
		return
	}

	status := http.StatusOK
	message := "login successful"
	if created {
		status = http.StatusCreated
		message = "new user created"
	}
	c.JSON(status, gin.H{
		"message": message,
		"user":    user.Public(),
		"token":   token,
	})
}

// @Summary      Current user info
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "user"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	user, err := h.services.CurrentUser(c.Request.Context(), ident.ID)
	if err != nil {
		h.respondDomainError(c, err, "me_failed", "user_id", ident.ID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
