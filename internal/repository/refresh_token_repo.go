package repository

import (
	"context"
	"time"

	"bookstore/internal/domain"

	"gorm.io/gorm"
)

// RefreshTokenRepository provides DB access for refresh tokens.
//
// Rows are append-only from the service's point of view: revocation flips
// the Revoked flag, nothing here deletes (cmd/auth_cleanup purges dead rows
// out of band).
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindActiveByHash returns the non-revoked record for the hash, if any.
// Expiry is deliberately NOT filtered here: the auth service checks it
// lazily so an expired-but-presented token can be revoked and reported
// distinctly from an unknown one.
func (r *RefreshTokenRepository) FindActiveByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = ?", hash, false).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *RefreshTokenRepository) RevokeByHash(ctx context.Context, hash string) error {
	return r.db.WithContext(ctx).Model(&domain.RefreshToken{}).
		Where("token_hash = ? AND revoked = ?", hash, false).
		Update("revoked", true).Error
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&domain.RefreshToken{}).Error
}
