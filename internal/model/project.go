package model

import "time"

// Project is a tenant-owned site that collects feedback through the widget.
type Project struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"not null;index"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	ProjectKey string    `json:"projectKey" gorm:"uniqueIndex;size:16;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relations
	Feedback []Feedback `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
