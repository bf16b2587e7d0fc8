package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"feedbackpulse/internal/auth"
	"feedbackpulse/internal/errors"
	"feedbackpulse/internal/model"
	"feedbackpulse/internal/projectkey"
	"feedbackpulse/internal/repository"
)

// MaxKeyAttempts bounds the project key collision retry loop.
const MaxKeyAttempts = 5

const maxProjectNameLength = 255

// ProjectService handles project operations for an authenticated owner.
type ProjectService interface {
	Create(ctx context.Context, requester auth.Identity, name string) (*model.Project, error)
	List(ctx context.Context, requester auth.Identity) ([]model.Project, error)
	Get(ctx context.Context, requester auth.Identity, id uint) (*model.Project, error)
	Rename(ctx context.Context, requester auth.Identity, id uint, name string) (*model.Project, error)
	Delete(ctx context.Context, requester auth.Identity, id uint) error
	EmbedScript(projectKey string) string
}

type projectService struct {
	repo    repository.ProjectRepository
	guard   *OwnershipGuard
	cache   Cache
	keys    projectkey.Generator
	baseURL string
	now     func() time.Time
}

// ProjectOption customises a project service.
type ProjectOption func(*projectService)

// WithKeyGenerator replaces the random project key source.
func WithKeyGenerator(gen projectkey.Generator) ProjectOption {
	return func(s *projectService) { s.keys = gen }
}

// WithClock replaces time.Now for updatedAt stamps.
func WithClock(now func() time.Time) ProjectOption {
	return func(s *projectService) { s.now = now }
}

// NewProjectService creates a new project service.
func NewProjectService(
	repo repository.ProjectRepository,
	guard *OwnershipGuard,
	cache Cache,
	baseURL string,
	opts ...ProjectOption,
) ProjectService {
	s := &projectService{
		repo:    repo,
		guard:   guard,
		cache:   orNoCache(cache),
		keys:    projectkey.Generate,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeProjectName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.ErrProjectNameRequired
	}
	if utf8.RuneCountInString(name) > maxProjectNameLength {
		return "", errors.ErrProjectNameTooLong
	}
	return name, nil
}

// Create creates a project with a freshly generated unique key.
func (s *projectService) Create(ctx context.Context, requester auth.Identity, name string) (*model.Project, error) {
	name, err := normalizeProjectName(name)
	if err != nil {
		return nil, err
	}

	key, err := s.uniqueKey(ctx)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		UserID:     requester.UserID,
		Name:       name,
		ProjectKey: key,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// uniqueKey draws keys until one is unused, up to MaxKeyAttempts.
func (s *projectService) uniqueKey(ctx context.Context) (string, error) {
	for attempt := 0; attempt < MaxKeyAttempts; attempt++ {
		key, err := s.keys()
		if err != nil {
			return "", fmt.Errorf("generate project key: %w", err)
		}
		exists, err := s.repo.KeyExists(ctx, key)
		if err != nil {
			return "", fmt.Errorf("check project key: %w", err)
		}
		if !exists {
			return key, nil
		}
	}
	return "", errors.ErrKeyGenerationExhausted
}

// List returns the requester's projects.
func (s *projectService) List(ctx context.Context, requester auth.Identity) ([]model.Project, error) {
	projects, err := s.repo.ListByUser(ctx, requester.UserID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Get returns one of the requester's projects.
func (s *projectService) Get(ctx context.Context, requester auth.Identity, id uint) (*model.Project, error) {
	project, decision, err := s.guard.Project(ctx, requester, id)
	if err != nil {
		return nil, err
	}
	if err := errFor(decision, errors.ErrProjectNotFound); err != nil {
		return nil, err
	}
	return project, nil
}

// Rename replaces the project name and always advances updatedAt.
func (s *projectService) Rename(ctx context.Context, requester auth.Identity, id uint, name string) (*model.Project, error) {
	name, err := normalizeProjectName(name)
	if err != nil {
		return nil, err
	}

	project, err := s.Get(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	updatedAt := s.now()
	if err := s.repo.Rename(ctx, project.ID, name, updatedAt); err != nil {
		return nil, fmt.Errorf("rename project: %w", err)
	}
	project.Name = name
	project.UpdatedAt = updatedAt
	return project, nil
}

// Delete removes the project; the store cascades to feedback and labels.
func (s *projectService) Delete(ctx context.Context, requester auth.Identity, id uint) error {
	project, err := s.Get(ctx, requester, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, project.ID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectKeyCacheKey(project.ProjectKey))
	return nil
}

// EmbedScript returns the snippet a site owner pastes into their pages.
func (s *projectService) EmbedScript(projectKey string) string {
	return fmt.Sprintf(`<script>
  (function() {
    var script = document.createElement('script');
    script.src = '%[1]s/api/widget';
    script.dataset.projectKey = '%[2]s';
    script.dataset.apiUrl = '%[1]s';
    document.head.appendChild(script);
  })();
</script>`, s.baseURL, projectKey)
}
