package repository

import (
	"context"

	"gorm.io/gorm"

	"feedbackpulse/internal/model"
)

// LabelOwnership is a label joined through its feedback to the project owner.
type LabelOwnership struct {
	LabelID    uint
	FeedbackID uint
	OwnerID    uint
}

// LabelRepository defines feedback label persistence operations.
type LabelRepository interface {
	Create(ctx context.Context, label *model.FeedbackLabel) error
	Delete(ctx context.Context, id uint) error
	// ListByFeedbackIDs fetches the labels of many feedback rows in one query.
	ListByFeedbackIDs(ctx context.Context, feedbackIDs []uint) ([]model.FeedbackLabel, error)
	FindOwnership(ctx context.Context, labelID, feedbackID uint) (*LabelOwnership, error)
}

type labelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new label repository.
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) Create(ctx context.Context, label *model.FeedbackLabel) error {
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *labelRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.FeedbackLabel{}, id).Error
}

func (r *labelRepository) ListByFeedbackIDs(ctx context.Context, feedbackIDs []uint) ([]model.FeedbackLabel, error) {
	labels := []model.FeedbackLabel{}
	if len(feedbackIDs) == 0 {
		return labels, nil
	}
	if err := r.db.WithContext(ctx).
		Where("feedback_id IN ?", feedbackIDs).
		Order("created_at ASC").Order("id ASC").
		Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// FindOwnership resolves label -> feedback -> project -> owner in one join.
// The label must belong to feedbackID.
func (r *labelRepository) FindOwnership(ctx context.Context, labelID, feedbackID uint) (*LabelOwnership, error) {
	var row LabelOwnership
	err := r.db.WithContext(ctx).
		Table("feedback_labels").
		Select("feedback_labels.id AS label_id, feedback_labels.feedback_id AS feedback_id, projects.user_id AS owner_id").
		Joins("INNER JOIN feedback ON feedback.id = feedback_labels.feedback_id").
		Joins("INNER JOIN projects ON projects.id = feedback.project_id").
		Where("feedback_labels.id = ? AND feedback_labels.feedback_id = ?", labelID, feedbackID).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.LabelID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
