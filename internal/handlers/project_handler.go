package handlers

import (
	"net/http"

	"teamfolio/internal/responses"
	"teamfolio/internal/services"
	"teamfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func projectFormFromRequest(c *gin.Context) (services.ProjectForm, error) {
	thumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		return services.ProjectForm{}, err
	}

	return services.ProjectForm{
		Title:            c.PostForm("title"),
		Description:      c.PostForm("description"),
		GitHubURL:        c.PostForm("github_url"),
		WebsiteURL:       c.PostForm("website_url"),
		Category:         c.PostForm("category"),
		Tags:             utils.SplitTags(c.PostForm("tags")),
		CustomContent:    c.PostForm("custom_content"),
		DeploymentStatus: c.PostForm("deployment_status"),
		IsFeatured:       c.PostForm("is_featured") == "true",
		Thumbnail:        thumbnail,
	}, nil
}

// CreateProject handles POST /api/v1/admin/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	form, err := projectFormFromRequest(c)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid form data")
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), userID.(uuid.UUID), form)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to create project")
		return
	}

	responses.Success(c, http.StatusCreated, project, "Project created successfully")
}

// UpdateProject handles PUT /api/v1/admin/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project ID")
		return
	}

	form, err := projectFormFromRequest(c)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid form data")
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, form)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to update project")
		return
	}

	responses.Success(c, http.StatusOK, project, "Project updated successfully")
}

// DeleteProject handles DELETE /api/v1/admin/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project ID")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to delete project")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Project deleted successfully")
}

// RefreshReadme handles POST /api/v1/admin/projects/:id/refresh-readme
func (h *ProjectHandler) RefreshReadme(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project ID")
		return
	}

	if err := h.projectService.RefreshReadme(c.Request.Context(), id); err != nil {
		responses.Fail(c, http.StatusBadGateway, err, "Failed to refresh README")
		return
	}

	responses.Success(c, http.StatusOK, nil, "README refreshed successfully")
}

// ReorderProjects handles PUT /api/v1/admin/projects/order
func (h *ProjectHandler) ReorderProjects(c *gin.Context) {
	var req struct {
		ProjectIDs []string `json:"project_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.ProjectIDs))
	for _, raw := range req.ProjectIDs {
		id, err := utils.ParseUUID(raw)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid project ID in list")
			return
		}
		ids = append(ids, id)
	}

	if err := h.projectService.Reorder(c.Request.Context(), ids); err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to reorder projects")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Projects reordered successfully")
}

// ListProjects handles GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve projects")
		return
	}

	responses.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// GetProject handles GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project ID")
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Project not found")
		return
	}

	responses.Success(c, http.StatusOK, project, "Project retrieved successfully")
}
