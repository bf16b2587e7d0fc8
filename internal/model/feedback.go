package model

import "time"

// FeedbackType classifies a feedback submission.
type FeedbackType string

const (
	FeedbackTypeBug     FeedbackType = "bug"
	FeedbackTypeFeature FeedbackType = "feature"
	FeedbackTypeOther   FeedbackType = "other"
)

// FeedbackTypes is the accepted set, in display order.
var FeedbackTypes = []FeedbackType{FeedbackTypeBug, FeedbackTypeFeature, FeedbackTypeOther}

// Valid reports whether t is one of FeedbackTypes.
func (t FeedbackType) Valid() bool {
	for _, known := range FeedbackTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Feedback is a single submission received through the public ingestion endpoint.
type Feedback struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	ProjectID uint         `json:"projectId" gorm:"not null;index"`
	Type      FeedbackType `json:"type" gorm:"type:varchar(50);not null;index"`
	Message   string       `json:"message" gorm:"size:1000;not null"`
	UserName  *string      `json:"userName" gorm:"size:255"`
	UserEmail *string      `json:"userEmail" gorm:"size:255"`
	// Sentiment is reserved; nothing populates it yet.
	Sentiment *string   `json:"sentiment" gorm:"size:50"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`

	// Relations
	Labels []FeedbackLabel `json:"labels" gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the singular table name.
func (Feedback) TableName() string {
	return "feedback"
}

// FeedbackLabel is a free-form tag the project owner attaches to feedback.
type FeedbackLabel struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FeedbackID uint      `json:"feedbackId" gorm:"not null;index"`
	Label      string    `json:"label" gorm:"size:100;not null"`
	CreatedAt  time.Time `json:"createdAt"`
}
