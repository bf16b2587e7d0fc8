package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"feedbackpulse/internal/errors"
	"feedbackpulse/internal/model"
	"feedbackpulse/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectRequest carries the only writable project field.
type ProjectRequest struct {
	Name *string `json:"name"`
}

// CreateProjectResponse is returned when a project is created.
type CreateProjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	ProjectKey  string    `json:"projectKey"`
	EmbedScript string    `json:"embedScript"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectResponse is a project plus its embed snippet.
type ProjectResponse struct {
	model.Project
	EmbedScript string `json:"embedScript"`
}

func (r ProjectRequest) name() (string, error) {
	if r.Name == nil {
		return "", errors.ErrProjectNameRequired
	}
	return *r.Name, nil
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body ProjectRequest true "Project name"
// @Success 201 {object} CreateProjectResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	identity, err := requester(c)
	if err != nil {
		return err
	}

	var req ProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	name, err := req.name()
	if err != nil {
		return fail(c, err)
	}

	project, err := h.projectService.Create(c.Request().Context(), identity, name)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreateProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		ProjectKey:  project.ProjectKey,
		EmbedScript: h.projectService.EmbedScript(project.ProjectKey),
		CreatedAt:   project.CreatedAt,
	})
}

// List godoc
// @Summary List the caller's projects
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	identity, err := requester(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.List(c.Request().Context(), identity)
	if err != nil {
		return fail(c, err)
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return c.JSON(http.StatusOK, projects)
}

// Get godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	identity, err := requester(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", "project")
	if err != nil {
		return err
	}

	project, err := h.projectService.Get(c.Request().Context(), identity, id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, ProjectResponse{
		Project:     *project,
		EmbedScript: h.projectService.EmbedScript(project.ProjectKey),
	})
}

// Update godoc
// @Summary Rename a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body ProjectRequest true "New name"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	identity, err := requester(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", "project")
	if err != nil {
		return err
	}

	var req ProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	name, err := req.name()
	if err != nil {
		return fail(c, err)
	}

	project, err := h.projectService.Rename(c.Request().Context(), identity, id, name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project
// @Description Feedback and labels are removed with it.
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	identity, err := requester(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", "project")
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), identity, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "project deleted successfully"})
}
