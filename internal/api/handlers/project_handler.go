package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var filter project.ListFilter
	if v := c.Query("projectType"); v != "" {
		t := project.Type(strings.ToUpper(v))
		if !t.IsValid() {
			response.Error(c, http.StatusBadRequest, "projectType must be one of [INTERNAL EXTERNAL]")
			return
		}
		filter.ProjectType = &t
	}
	filter.Search = strings.TrimSpace(c.Query("search"))
	page := utils.ParsePage(c)

	projects, total, err := h.svc.ListProjects(c.Request.Context(), actor, filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paginated(c, "", projects, response.NewMeta(page, total))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "project")
	if !ok {
		return
	}
	p, err := h.svc.GetProject(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", p)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var input project.CreateProjectDTO
	if !bindJSON(c, &input) {
		return
	}
	p, err := h.svc.CreateProject(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "project created", p)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "project")
	if !ok {
		return
	}
	var input project.UpdateProjectDTO
	if !bindJSON(c, &input) {
		return
	}
	p, err := h.svc.UpdateProject(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "project updated", p)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "project")
	if !ok {
		return
	}
	if err := h.svc.DeleteProject(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "project deleted", nil)
}
