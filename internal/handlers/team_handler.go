package handlers

import (
	"net/http"

	"teamfolio/internal/responses"
	"teamfolio/internal/services"
	"teamfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

func teamMemberFormFromRequest(c *gin.Context) (services.TeamMemberForm, error) {
	thumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		return services.TeamMemberForm{}, err
	}
	background, err := formFile(c, "background_image")
	if err != nil {
		return services.TeamMemberForm{}, err
	}

	var representative *uuid.UUID
	if raw := c.PostForm("representative_project_id"); raw != "" {
		if id, err := utils.ParseUUID(raw); err == nil {
			representative = &id
		}
	}

	return services.TeamMemberForm{
		Name:                    c.PostForm("name"),
		Role:                    c.PostForm("role"),
		Bio:                     c.PostForm("bio"),
		GitHubURL:               c.PostForm("github_url"),
		Tags:                    utils.SplitTags(c.PostForm("tags")),
		OneLineIntro:            c.PostForm("one_line_intro"),
		ShortMessage:            c.PostForm("short_message"),
		BackgroundColor:         c.PostForm("background_color"),
		RepresentativeProjectID: representative,
		RelatedProjectIDs:       utils.ParseUUIDList(c.PostFormArray("related_project_ids")),
		UseGitHubData:           c.PostForm("use_github_data") == "true",
		UseGlassmorphism:        c.PostForm("use_glassmorphism") == "true",
		CustomContent:           c.PostForm("custom_content"),
		Thumbnail:               thumbnail,
		BackgroundImage:         background,
	}, nil
}

// CreateTeamMember handles POST /api/v1/admin/team
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	form, err := teamMemberFormFromRequest(c)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid form data")
		return
	}

	member, err := h.teamService.Create(c.Request.Context(), form)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to create team member")
		return
	}

	responses.Success(c, http.StatusCreated, member, "Team member created successfully")
}

// UpdateTeamMember handles PUT /api/v1/admin/team/:id
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid team member ID")
		return
	}

	form, err := teamMemberFormFromRequest(c)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid form data")
		return
	}

	member, err := h.teamService.Update(c.Request.Context(), id, form)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to update team member")
		return
	}

	responses.Success(c, http.StatusOK, member, "Team member updated successfully")
}

// DeleteTeamMember handles DELETE /api/v1/admin/team/:id
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid team member ID")
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id); err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to delete team member")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Team member deleted successfully")
}

// ListTeamMembers handles GET /api/v1/team
func (h *TeamHandler) ListTeamMembers(c *gin.Context) {
	members, err := h.teamService.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve team members")
		return
	}

	responses.Success(c, http.StatusOK, members, "Team members retrieved successfully")
}

// GetTeamMember handles GET /api/v1/team/:id
func (h *TeamHandler) GetTeamMember(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid team member ID")
		return
	}

	member, err := h.teamService.Get(id)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Team member not found")
		return
	}

	responses.Success(c, http.StatusOK, member, "Team member retrieved successfully")
}
