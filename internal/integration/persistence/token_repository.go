package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// TokenRepository defines the interface for token persistence operations.
type TokenRepository interface {
	// SaveRefreshToken saves a refresh token to the database.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenValid checks if a refresh token exists, is not invalidated and has not expired.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// InvalidateRefreshToken marks a refresh token as invalidated.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// InvalidateAllUserRefreshTokens invalidates all refresh tokens for a user.
	InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error

	// SaveOneTimeToken stores a password reset or email verification token.
	SaveOneTimeToken(ctx context.Context, purpose model.TokenPurpose, token string, userID uuid.UUID, email string, expiresAt time.Time) error

	// GetOneTimeToken returns an unused token of the given purpose, or nil when none matches.
	GetOneTimeToken(ctx context.Context, purpose model.TokenPurpose, token string) (*model.OneTimeTokenModel, error)

	// UseOneTimeToken marks a token as used.
	UseOneTimeToken(ctx context.Context, token string) error
}

// tokenRepository implements the TokenRepository interface.
type tokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// SaveRefreshToken saves a refresh token to the database.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: r.now(),
	}).Error
}

// IsRefreshTokenValid checks if a refresh token exists, is not invalidated and has not expired.
func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ? AND invalidated = ? AND expires_at > ?", token, false, r.now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InvalidateRefreshToken marks a refresh token as invalidated.
func (r *tokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ?", token).
		Update("invalidated", true).Error
}

// InvalidateAllUserRefreshTokens invalidates all refresh tokens for a user.
func (r *tokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND invalidated = ?", userID, false).
		Update("invalidated", true).Error
}

// SaveOneTimeToken stores a password reset or email verification token.
func (r *tokenRepository) SaveOneTimeToken(
	ctx context.Context,
	purpose model.TokenPurpose,
	token string,
	userID uuid.UUID,
	email string,
	expiresAt time.Time,
) error {
	return r.db.WithContext(ctx).Create(&model.OneTimeTokenModel{
		ID:        uuid.New(),
		Token:     token,
		Purpose:   purpose,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
		CreatedAt: r.now(),
	}).Error
}

// GetOneTimeToken returns an unused token of the given purpose, or nil when none matches.
func (r *tokenRepository) GetOneTimeToken(ctx context.Context, purpose model.TokenPurpose, token string) (*model.OneTimeTokenModel, error) {
	var m model.OneTimeTokenModel
	err := r.db.WithContext(ctx).
		Where("token = ? AND purpose = ? AND used = ?", token, purpose, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// UseOneTimeToken marks a token as used.
func (r *tokenRepository) UseOneTimeToken(ctx context.Context, token string) error {
	now := r.now()
	return r.db.WithContext(ctx).
		Model(&model.OneTimeTokenModel{}).
		Where("token = ?", token).
		Updates(map[string]any{
			"used":    true,
			"used_at": &now,
		}).Error
}
