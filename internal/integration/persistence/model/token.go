// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenPurpose identifies what a one-time token may be used for.
type TokenPurpose string

const (
	TokenPurposePasswordReset     TokenPurpose = "password_reset"
	TokenPurposeEmailVerification TokenPurpose = "email_verification"
)

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// OneTimeTokenModel represents the one_time_tokens table holding
// password reset and email verification tokens.
type OneTimeTokenModel struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Token     string       `gorm:"type:varchar(500);uniqueIndex;not null"`
	Purpose   TokenPurpose `gorm:"type:varchar(30);index;not null"`
	UserID    uuid.UUID    `gorm:"type:uuid;index;not null"`
	Email     string       `gorm:"type:varchar(255);not null"`
	Used      bool         `gorm:"default:false"`
	UsedAt    *time.Time   `gorm:"type:timestamptz"`
	ExpiresAt time.Time    `gorm:"not null"`
	CreatedAt time.Time    `gorm:"not null"`
}

// TableName returns the table name for the OneTimeTokenModel.
func (OneTimeTokenModel) TableName() string {
	return "one_time_tokens"
}
