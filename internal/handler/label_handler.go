package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"feedbackpulse/internal/service"
)

// LabelHandler handles label endpoints.
type LabelHandler struct {
	labelService service.LabelService
}

// NewLabelHandler creates a new label handler.
func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// AddLabelRequest represents a label to attach.
type AddLabelRequest struct {
	Label string `json:"label"`
}

// Add godoc
// @Summary Label a feedback item
// @Tags labels
// @Accept json
// @Produce json
// @Param id path int true "Feedback ID"
// @Param request body AddLabelRequest true "Label"
// @Success 201 {object} model.FeedbackLabel
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /feedback/{id}/labels [post]
func (h *LabelHandler) Add(c echo.Context) error {
	identity, err := requester(c)
	if err != nil {
		return err
	}
	feedbackID, err := pathID(c, "id", "feedback")
	if err != nil {
		return err
	}

	var req AddLabelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	label, err := h.labelService.Add(c.Request().Context(), identity, feedbackID, req.Label)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, label)
}

// Remove godoc
// @Summary Remove a label
// @Tags labels
// @Produce json
// @Param id path int true "Feedback ID"
// @Param labelId path int true "Label ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /feedback/{id}/labels/{labelId} [delete]
func (h *LabelHandler) Remove(c echo.Context) error {
	identity, err := requester(c)
	if err != nil {
		return err
	}
	feedbackID, err := pathID(c, "id", "feedback")
	if err != nil {
		return err
	}
	labelID, err := pathID(c, "labelId", "label")
	if err != nil {
		return err
	}

	if err := h.labelService.Remove(c.Request().Context(), identity, feedbackID, labelID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "label removed successfully"})
}
