package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"feedbackpulse/internal/service"
)

// FeedbackHandler handles public ingestion and owner listing of feedback.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitFeedbackRequest is what the widget posts.
type SubmitFeedbackRequest struct {
	ProjectKey string  `json:"projectKey"`
	Type       string  `json:"type"`
	Message    string  `json:"message"`
	UserName   *string `json:"userName"`
	UserEmail  *string `json:"userEmail"`
}

// SubmitFeedbackResponse acknowledges a stored submission.
type SubmitFeedbackResponse struct {
	Success bool   `json:"success"`
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// Submit godoc
// @Summary Submit feedback from the widget
// @Description Public and CORS-open. Limited per client IP.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body SubmitFeedbackRequest true "Submission"
// @Success 201 {object} SubmitFeedbackResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req SubmitFeedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.feedbackService.Submit(c.Request().Context(), service.SubmitFeedbackInput{
		ProjectKey: req.ProjectKey,
		Type:       req.Type,
		Message:    req.Message,
		UserName:   req.UserName,
		UserEmail:  req.UserEmail,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, SubmitFeedbackResponse{
		Success: true,
		ID:      item.ID,
		Message: "feedback submitted successfully",
	})
}

// List godoc
// @Summary List a project's feedback
// @Description Newest first, each item with its labels.
// @Tags feedback
// @Produce json
// @Param id path int true "Project ID"
// @Param type query string false "bug, feature, other or all"
// @Success 200 {array} model.Feedback
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /projects/{id}/feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	identity, err := requester(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "id", "project")
	if err != nil {
		return err
	}

	items, err := h.feedbackService.ListForProject(c.Request().Context(), identity, projectID, c.QueryParam("type"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
