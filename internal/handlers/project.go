package handlers

import (
	"net/http"
	"strconv"

	"matchboard/internal/service"

	"github.com/gin-gonic/gin"
)

type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// updateProjectRequest keeps pointers so "field absent" and "field empty" stay
// distinguishable, mirroring the merge-with-defaults update semantics.
type updateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// pathID parses a numeric path parameter, answering 404 on garbage since no
// resource can exist under a non-numeric id.
func (h *Handler) pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return 0, false
	}
	return id, true
}

// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "projects"
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [get]
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.services.List(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, err, "projects_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// @Summary      Get one project
// @Tags         projects
// @Produce      json
// @Param        id  path  int  true  "Project ID"
// @Success      200  {object}  map[string]interface{}  "project"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [get]
func (h *Handler) getProject(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		h.respondDomainError(c, err, "project_get_failed", "project_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body  createProjectRequest  true  "Project fields"
// @Success      201  {object}  map[string]interface{}  "message, project"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [post]
// @Security     BearerAuth
func (h *Handler) createProject(c *gin.Context) {
	ident, _ := currentIdentity(c)

	var input createProjectRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	project, err := h.services.Create(c.Request.Context(), input.Title, input.Description, ident.ID)
	if err != nil {
		h.respondDomainError(c, err, "project_create_failed", "user_id", ident.ID)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "project created", "project": project})
}

// @Summary      Update a project (owner only)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "Project ID"
// @Param        body  body  updateProjectRequest  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}  "message, project"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	ident, _ := currentIdentity(c)

	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input updateProjectRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	patch := service.ProjectPatch{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	}
	project, err := h.services.Update(c.Request.Context(), id, patch, ident.ID)
	if err != nil {
		h.respondDomainError(c, err, "project_update_failed", "project_id", id, "user_id", ident.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project updated", "project": project})
}

// @Summary      Delete a project (owner only)
// @Tags         projects
// @Produce      json
// @Param        id  path  int  true  "Project ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	ident, _ := currentIdentity(c)

	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), id, ident.ID); err != nil {
		h.respondDomainError(c, err, "project_delete_failed", "project_id", id, "user_id", ident.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
