package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "feedbackpulse/internal/errors"
	"feedbackpulse/internal/model"
	"feedbackpulse/internal/repository"
)

func newTestLabelService() (LabelService, *MockFeedbackRepository, *MockLabelRepository) {
	feedback := new(MockFeedbackRepository)
	labels := new(MockLabelRepository)
	guard := NewOwnershipGuard(new(MockProjectRepository), feedback, labels)
	return NewLabelService(labels, guard), feedback, labels
}

func TestLabelService_Add(t *testing.T) {
	tests := []struct {
		name          string
		label         string
		setupMock     func(*MockFeedbackRepository, *MockLabelRepository)
		expectedError error
	}{
		{
			name:  "owner adds trimmed label",
			label: "  urgent ",
			setupMock: func(f *MockFeedbackRepository, l *MockLabelRepository) {
				f.On("FindOwnership", mock.Anything, uint(10)).Return(&repository.FeedbackOwnership{FeedbackID: 10, ProjectID: 4, OwnerID: 7}, nil)
				l.On("Create", mock.Anything, mock.MatchedBy(func(label *model.FeedbackLabel) bool {
					return label.FeedbackID == 10 && label.Label == "urgent"
				})).Return(nil)
			},
		},
		{
			name:          "blank label",
			label:         "   ",
			setupMock:     func(*MockFeedbackRepository, *MockLabelRepository) {},
			expectedError: apperrors.ErrLabelRequired,
		},
		{
			name:          "too short",
			label:         "x",
			setupMock:     func(*MockFeedbackRepository, *MockLabelRepository) {},
			expectedError: apperrors.ErrInvalidLabel,
		},
		{
			name:          "too long",
			label:         strings.Repeat("y", 51),
			setupMock:     func(*MockFeedbackRepository, *MockLabelRepository) {},
			expectedError: apperrors.ErrInvalidLabel,
		},
		{
			name:  "feedback missing",
			label: "urgent",
			setupMock: func(f *MockFeedbackRepository, _ *MockLabelRepository) {
				f.On("FindOwnership", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrFeedbackNotFound,
		},
		{
			name:  "feedback owned by someone else",
			label: "urgent",
			setupMock: func(f *MockFeedbackRepository, _ *MockLabelRepository) {
				f.On("FindOwnership", mock.Anything, uint(10)).Return(&repository.FeedbackOwnership{FeedbackID: 10, ProjectID: 8, OwnerID: 99}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, feedback, labels := newTestLabelService()
			tt.setupMock(feedback, labels)

			label, err := svc.Add(context.Background(), owner, 10, tt.label)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				labels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "urgent", label.Label)
			}
			labels.AssertExpectations(t)
		})
	}
}

func TestLabelService_Remove(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockLabelRepository)
		expectedError error
	}{
		{
			name: "owner removes label",
			setupMock: func(l *MockLabelRepository) {
				l.On("FindOwnership", mock.Anything, uint(3), uint(10)).Return(&repository.LabelOwnership{LabelID: 3, FeedbackID: 10, OwnerID: 7}, nil)
				l.On("Delete", mock.Anything, uint(3)).Return(nil)
			},
		},
		{
			name: "label not on that feedback",
			setupMock: func(l *MockLabelRepository) {
				l.On("FindOwnership", mock.Anything, uint(3), uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrLabelNotFound,
		},
		{
			name: "label owned by someone else",
			setupMock: func(l *MockLabelRepository) {
				l.On("FindOwnership", mock.Anything, uint(3), uint(10)).Return(&repository.LabelOwnership{LabelID: 3, FeedbackID: 10, OwnerID: 99}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, labels := newTestLabelService()
			tt.setupMock(labels)

			err := svc.Remove(context.Background(), owner, 10, 3)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				labels.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			labels.AssertExpectations(t)
		})
	}
}
