package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"feedbackpulse/internal/auth"
	apperrors "feedbackpulse/internal/errors"
	"feedbackpulse/internal/model"
	"feedbackpulse/internal/repository"
)

const (
	maxMessageLength = 1000
	maxContactLength = 255
	projectKeyTTL    = 10 * time.Minute
)

// FilterAll lists every feedback type.
const FilterAll = "all"

// SubmitFeedbackInput is a public widget submission.
type SubmitFeedbackInput struct {
	ProjectKey string
	Type       string
	Message    string
	UserName   *string
	UserEmail  *string
}

// FeedbackService handles feedback ingestion and listing.
type FeedbackService interface {
	Submit(ctx context.Context, in SubmitFeedbackInput) (*model.Feedback, error)
	ListForProject(ctx context.Context, requester auth.Identity, projectID uint, filter string) ([]model.Feedback, error)
}

type feedbackService struct {
	projects repository.ProjectRepository
	feedback repository.FeedbackRepository
	labels   repository.LabelRepository
	guard    *OwnershipGuard
	cache    Cache
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(
	projects repository.ProjectRepository,
	feedback repository.FeedbackRepository,
	labels repository.LabelRepository,
	guard *OwnershipGuard,
	cache Cache,
) FeedbackService {
	return &feedbackService{
		projects: projects,
		feedback: feedback,
		labels:   labels,
		guard:    guard,
		cache:    orNoCache(cache),
	}
}

// Submit validates a public submission and stores it under the keyed project.
func (s *feedbackService) Submit(ctx context.Context, in SubmitFeedbackInput) (*model.Feedback, error) {
	key := strings.TrimSpace(in.ProjectKey)
	message := strings.TrimSpace(in.Message)
	if key == "" || in.Type == "" || message == "" {
		return nil, apperrors.ErrMissingFeedbackFields
	}

	feedbackType := model.FeedbackType(in.Type)
	if !feedbackType.Valid() {
		return nil, apperrors.ErrInvalidFeedbackType
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, apperrors.ErrMessageTooLong
	}

	userName, userEmail := optional(in.UserName), optional(in.UserEmail)
	if tooLong(userName) || tooLong(userEmail) {
		return nil, apperrors.ErrContactTooLong
	}

	projectID, cached, err := s.resolveKey(ctx, key)
	if err != nil {
		return nil, err
	}

	item := &model.Feedback{
		ProjectID: projectID,
		Type:      feedbackType,
		Message:   message,
		UserName:  userName,
		UserEmail: userEmail,
	}
	err = s.feedback.Create(ctx, item)
	if cached && errors.Is(err, gorm.ErrForeignKeyViolated) {
		// The cached id outlived its project; drop it and ask the store.
		_ = s.cache.Delete(ctx, projectKeyCacheKey(key))
		if item.ProjectID, err = s.lookupKey(ctx, key); err != nil {
			return nil, err
		}
		err = s.feedback.Create(ctx, item)
	}
	if err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return item, nil
}

// resolveKey maps a public project key to a project id, cache first.
// cached reports whether the id came from the cache.
func (s *feedbackService) resolveKey(ctx context.Context, key string) (id uint, cached bool, err error) {
	if data, _ := s.cache.Get(ctx, projectKeyCacheKey(key)); data != nil {
		if parsed, err := strconv.ParseUint(string(data), 10, 64); err == nil && parsed > 0 {
			return uint(parsed), true, nil
		}
	}
	id, err = s.lookupKey(ctx, key)
	return id, false, err
}

// lookupKey resolves key from the store and refreshes the cache entry.
func (s *feedbackService) lookupKey(ctx context.Context, key string) (uint, error) {
	project, err := s.projects.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrInvalidProjectKey
		}
		return 0, fmt.Errorf("find project by key: %w", err)
	}

	_ = s.cache.Set(ctx, projectKeyCacheKey(key), []byte(strconv.FormatUint(uint64(project.ID), 10)), projectKeyTTL)
	return project.ID, nil
}

// ListForProject returns the project's feedback newest first, each with its labels.
func (s *feedbackService) ListForProject(ctx context.Context, requester auth.Identity, projectID uint, filter string) ([]model.Feedback, error) {
	var feedbackType model.FeedbackType
	if filter != "" && filter != FilterAll {
		feedbackType = model.FeedbackType(filter)
		if !feedbackType.Valid() {
			return nil, apperrors.ErrInvalidFeedbackType
		}
	}

	_, decision, err := s.guard.Project(ctx, requester, projectID)
	if err != nil {
		return nil, err
	}
	if err := errFor(decision, apperrors.ErrProjectNotFound); err != nil {
		return nil, err
	}

	items, err := s.feedback.ListByProject(ctx, projectID, feedbackType)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]uint, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	labels, err := s.labels.ListByFeedbackIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}

	byFeedback := make(map[uint][]model.FeedbackLabel, len(items))
	for _, label := range labels {
		byFeedback[label.FeedbackID] = append(byFeedback[label.FeedbackID], label)
	}
	for i := range items {
		items[i].Labels = byFeedback[items[i].ID]
		if items[i].Labels == nil {
			items[i].Labels = []model.FeedbackLabel{}
		}
	}
	return items, nil
}

// optional trims s and maps blank to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func tooLong(s *string) bool {
	return s != nil && utf8.RuneCountInString(*s) > maxContactLength
}
