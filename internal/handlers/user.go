package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Own projects
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "projects"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/me/projects [get]
// @Security     BearerAuth
func (h *Handler) myProjects(c *gin.Context) {
	ident, _ := currentIdentity(c)

	projects, err := h.services.ListByOwner(c.Request.Context(), ident.ID)
	if err != nil {
		h.respondDomainError(c, err, "my_projects_failed", "user_id", ident.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// @Summary      Own help applications
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "helps"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/me/helps [get]
// @Security     BearerAuth
func (h *Handler) myHelps(c *gin.Context) {
	ident, _ := currentIdentity(c)

	helps, err := h.services.ListForUser(c.Request.Context(), ident.ID)
	if err != nil {
		h.respondDomainError(c, err, "my_helps_failed", "user_id", ident.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"helps": helps})
}

// @Summary      Own matches
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "matches"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/me/matches [get]
// @Security     BearerAuth
func (h *Handler) myMatches(c *gin.Context) {
	ident, _ := currentIdentity(c)

	matches, err := h.services.ListMatchesForUser(c.Request.Context(), ident.ID)
	if err != nil {
		h.respondDomainError(c, err, "my_matches_failed", "user_id", ident.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
