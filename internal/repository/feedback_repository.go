package repository

import (
	"context"

	"gorm.io/gorm"

	"feedbackpulse/internal/model"
)

// FeedbackOwnership is a feedback row joined to the owner of its project.
type FeedbackOwnership struct {
	FeedbackID uint
	ProjectID  uint
	OwnerID    uint
}

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	ListByProject(ctx context.Context, projectID uint, feedbackType model.FeedbackType) ([]model.Feedback, error)
	FindOwnership(ctx context.Context, feedbackID uint) (*FeedbackOwnership, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create creates a new feedback record.
func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Omit("Labels").Create(feedback).Error
}

// ListByProject lists a project's feedback newest first, optionally filtered by type.
func (r *feedbackRepository) ListByProject(ctx context.Context, projectID uint, feedbackType model.FeedbackType) ([]model.Feedback, error) {
	items := []model.Feedback{}
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if feedbackType != "" {
		q = q.Where("type = ?", feedbackType)
	}
	if err := q.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindOwnership resolves feedback -> project -> owner in one join.
func (r *feedbackRepository) FindOwnership(ctx context.Context, feedbackID uint) (*FeedbackOwnership, error) {
	var row FeedbackOwnership
	err := r.db.WithContext(ctx).
		Table("feedback").
		Select("feedback.id AS feedback_id, feedback.project_id AS project_id, projects.user_id AS owner_id").
		Joins("INNER JOIN projects ON projects.id = feedback.project_id").
		Where("feedback.id = ?", feedbackID).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.FeedbackID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
