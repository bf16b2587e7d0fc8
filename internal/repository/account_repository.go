package repository

import (
	"context"

	"gorm.io/gorm"

	"feedbackpulse/internal/model"
)

// AccountRepository defines OAuth account link persistence operations.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByProvider(ctx context.Context, provider, providerAccountID string) (*model.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create links a new provider account.
func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// FindByProvider finds the account for a provider identity.
func (r *accountRepository) FindByProvider(ctx context.Context, provider, providerAccountID string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
