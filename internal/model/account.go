package model

// Account links a User to an external OAuth identity.
type Account struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	UserID            uint    `json:"userId" gorm:"not null;index"`
	Type              string  `json:"type" gorm:"size:32;not null"`
	Provider          string  `json:"provider" gorm:"size:64;not null;uniqueIndex:idx_account_provider"`
	ProviderAccountID string  `json:"providerAccountId" gorm:"size:255;not null;uniqueIndex:idx_account_provider"`
	RefreshToken      *string `json:"-" gorm:"type:text"`
	AccessToken       *string `json:"-" gorm:"type:text"`
	ExpiresAt         *int64  `json:"-"`
	TokenType         *string `json:"-" gorm:"size:64"`
	Scope             *string `json:"-" gorm:"size:512"`
	IDToken           *string `json:"-" gorm:"type:text"`
	SessionState      *string `json:"-" gorm:"size:255"`
}
