package model

import "time"

// User represents an authenticated user in the system.
// PasswordHash is nil for accounts created through an OAuth provider.
type User struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Email         string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  *string    `json:"-" gorm:"size:255"` // Never expose in JSON
	Name          *string    `json:"name" gorm:"size:255"`
	Image         *string    `json:"image,omitempty" gorm:"size:512"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	// Relations
	Accounts []Account `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Projects []Project `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
