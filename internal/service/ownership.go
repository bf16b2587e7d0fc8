package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"feedbackpulse/internal/auth"
	apperrors "feedbackpulse/internal/errors"
	"feedbackpulse/internal/model"
	"feedbackpulse/internal/repository"
)

// Decision is the outcome of an ownership check.
type Decision int

const (
	// DecisionNotFound means the resource or a link in its ownership chain is missing.
	DecisionNotFound Decision = iota
	// DecisionForbidden means the chain resolves to another user.
	DecisionForbidden
	// DecisionAuthorized means the requester owns the resource.
	DecisionAuthorized
)

func (d Decision) String() string {
	switch d {
	case DecisionAuthorized:
		return "authorized"
	case DecisionForbidden:
		return "forbidden"
	default:
		return "not found"
	}
}

// OwnershipGuard traces resources back to the user that owns them.
//
// Projects carry their owner directly and are looked up with the owner in the
// same query, so another tenant's project is indistinguishable from a missing
// one. Feedback and labels are owned through their project; the chain is
// resolved in one join and a foreign owner yields DecisionForbidden.
type OwnershipGuard struct {
	projects repository.ProjectRepository
	feedback repository.FeedbackRepository
	labels   repository.LabelRepository
}

// NewOwnershipGuard creates a guard over the given repositories.
func NewOwnershipGuard(projects repository.ProjectRepository, feedback repository.FeedbackRepository, labels repository.LabelRepository) *OwnershipGuard {
	return &OwnershipGuard{projects: projects, feedback: feedback, labels: labels}
}

// Project returns the project when requester owns it.
func (g *OwnershipGuard) Project(ctx context.Context, requester auth.Identity, projectID uint) (*model.Project, Decision, error) {
	project, err := g.projects.FindOwned(ctx, projectID, requester.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, DecisionNotFound, nil
		}
		return nil, DecisionNotFound, fmt.Errorf("find project: %w", err)
	}
	return project, DecisionAuthorized, nil
}

// Feedback checks feedback -> project -> user.
func (g *OwnershipGuard) Feedback(ctx context.Context, requester auth.Identity, feedbackID uint) (Decision, error) {
	row, err := g.feedback.FindOwnership(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DecisionNotFound, nil
		}
		return DecisionNotFound, fmt.Errorf("resolve feedback owner: %w", err)
	}
	return decide(row.OwnerID, requester), nil
}

// Label checks label -> feedback -> project -> user.
func (g *OwnershipGuard) Label(ctx context.Context, requester auth.Identity, feedbackID, labelID uint) (Decision, error) {
	row, err := g.labels.FindOwnership(ctx, labelID, feedbackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DecisionNotFound, nil
		}
		return DecisionNotFound, fmt.Errorf("resolve label owner: %w", err)
	}
	return decide(row.OwnerID, requester), nil
}

func decide(ownerID uint, requester auth.Identity) Decision {
	if ownerID == requester.UserID {
		return DecisionAuthorized
	}
	return DecisionForbidden
}

// errFor turns a non-authorized decision into the error the handler maps.
func errFor(d Decision, notFound error) error {
	switch d {
	case DecisionAuthorized:
		return nil
	case DecisionForbidden:
		return apperrors.ErrForbidden
	default:
		return notFound
	}
}
