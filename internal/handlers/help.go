package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type setHelpStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary      Apply for help on a project
// @Description  Applying twice for the same project returns the original request.
// @Tags         helps
// @Produce      json
// @Param        id  path  int  true  "Project ID"
// @Success      200  {object}  map[string]interface{}  "message, help (already applied)"
// @Success      201  {object}  map[string]interface{}  "message, help"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id}/help [post]
// @Security     BearerAuth
func (h *Handler) applyHelp(c *gin.Context) {
	ident, _ := currentIdentity(c)

	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	help, created, err := h.services.Apply(c.Request.Context(), projectID, ident.ID)
	if err != nil {
		h.respondDomainError(c, err, "help_apply_failed", "project_id", projectID, "user_id", ident.ID)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "already applied", "help": help})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "help request submitted", "help": help})
}

// @Summary      List help requests for a project (owner only)
// @Tags         helps
// @Produce      json
// @Param        id  path  int  true  "Project ID"
// @Success      200  {object}  map[string]interface{}  "helps"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id}/helps [get]
// @Security     BearerAuth
func (h *Handler) listProjectHelps(c *gin.Context) {
	ident, _ := currentIdentity(c)

	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	helps, err := h.services.ListForProject(c.Request.Context(), projectID, ident.ID)
	if err != nil {
		h.respondDomainError(c, err, "helps_list_failed", "project_id", projectID, "user_id", ident.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"helps": helps})
}

// @Summary      Set a help request's status (owner only)
// @Description  Status must be pending, matched, or rejected.
// @Tags         helps
// @Accept       json
// @Produce      json
// @Param        id      path  int                   true  "Project ID"
// @Param        helpId  path  int                   true  "Help ID"
// @Param        body    body  setHelpStatusRequest  true  "New status"
// @Success      200  {object}  map[string]interface{}  "message, help"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id}/helps/{helpId} [put]
// @Security     BearerAuth
func (h *Handler) setHelpStatus(c *gin.Context) {
	ident, _ := currentIdentity(c)

	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	helpID, ok := h.pathID(c, "helpId")
	if !ok {
		return
	}

	var input setHelpStatusRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	help, err := h.services.SetStatus(c.Request.Context(), projectID, helpID, input.Status, ident.ID)
	if err != nil {
		h.respondDomainError(c, err, "help_status_failed",
			"project_id", projectID, "help_id", helpID, "status", input.Status, "user_id", ident.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "help request status updated", "help": help})
}
