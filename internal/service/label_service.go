package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"feedbackpulse/internal/auth"
	"feedbackpulse/internal/errors"
	"feedbackpulse/internal/model"
	"feedbackpulse/internal/repository"
)

const (
	minLabelLength = 2
	maxLabelLength = 50
)

// LabelService manages labels on feedback owned by the requester.
type LabelService interface {
	Add(ctx context.Context, requester auth.Identity, feedbackID uint, label string) (*model.FeedbackLabel, error)
	Remove(ctx context.Context, requester auth.Identity, feedbackID, labelID uint) error
}

type labelService struct {
	repo  repository.LabelRepository
	guard *OwnershipGuard
}

// NewLabelService creates a new label service.
func NewLabelService(repo repository.LabelRepository, guard *OwnershipGuard) LabelService {
	return &labelService{repo: repo, guard: guard}
}

// Add attaches a trimmed label to the feedback.
func (s *labelService) Add(ctx context.Context, requester auth.Identity, feedbackID uint, label string) (*model.FeedbackLabel, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, errors.ErrLabelRequired
	}
	if n := utf8.RuneCountInString(label); n < minLabelLength || n > maxLabelLength {
		return nil, errors.ErrInvalidLabel
	}

	decision, err := s.guard.Feedback(ctx, requester, feedbackID)
	if err != nil {
		return nil, err
	}
	if err := errFor(decision, errors.ErrFeedbackNotFound); err != nil {
		return nil, err
	}

	created := &model.FeedbackLabel{FeedbackID: feedbackID, Label: label}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("create label: %w", err)
	}
	return created, nil
}

// Remove deletes a label that belongs to feedbackID.
func (s *labelService) Remove(ctx context.Context, requester auth.Identity, feedbackID, labelID uint) error {
	decision, err := s.guard.Label(ctx, requester, feedbackID, labelID)
	if err != nil {
		return err
	}
	if err := errFor(decision, errors.ErrLabelNotFound); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, labelID); err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	return nil
}
