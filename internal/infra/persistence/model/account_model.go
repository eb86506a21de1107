package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. One row per user per streaming
// provider, holding the OAuth token set.
type AccountModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_accounts_user_provider"`
	Provider          string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_accounts_user_provider"`
	ProviderAccountID string    `gorm:"type:varchar(64);not null"`
	AccessToken       string    `gorm:"type:text;not null"`
	RefreshToken      string    `gorm:"type:text;not null"`
	ExpiresAt         time.Time `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
