package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"feedbackpulse/internal/model"
)

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	// FindOwned returns the project only when it belongs to userID.
	FindOwned(ctx context.Context, id, userID uint) (*model.Project, error)
	FindByKey(ctx context.Context, projectKey string) (*model.Project, error)
	KeyExists(ctx context.Context, projectKey string) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Project, error)
	Rename(ctx context.Context, id uint, name string, updatedAt time.Time) error
	Delete(ctx context.Context, id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create creates a new project.
func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindOwned finds a project by ID scoped to its owner in a single query.
func (r *projectRepository) FindOwned(ctx context.Context, id, userID uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByKey finds a project by its public key.
func (r *projectRepository) FindByKey(ctx context.Context, projectKey string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("project_key = ?", projectKey).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// KeyExists reports whether any project already uses projectKey.
func (r *projectRepository) KeyExists(ctx context.Context, projectKey string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("project_key = ?", projectKey).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser lists a user's projects, newest first.
func (r *projectRepository) ListByUser(ctx context.Context, userID uint) ([]model.Project, error) {
	projects := []model.Project{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Rename replaces the project name and refreshes updated_at.
func (r *projectRepository) Rename(ctx context.Context, id uint, name string, updatedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": updatedAt,
		}).Error
}

// Delete removes a project; feedback and labels go with it through the FK cascade.
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}
