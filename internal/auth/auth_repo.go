package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*Session, error)
	FindByRefreshHash(ctx context.Context, hash string) (*Session, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, s *Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	var s Session
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByRefreshHash(ctx context.Context, hash string) (*Session, error) {
	var s Session
	if err := r.db.WithContext(ctx).Where("refresh_token_hash = ?", hash).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Revoke reports false when the session was already revoked, which lets
// refresh rotation detect a concurrent reuse of the same token.
func (r *repository) Revoke(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at)
	return res.RowsAffected == 1, res.Error
}

func (r *repository) RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Session{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", at)
	return res.RowsAffected, res.Error
}

func (r *repository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at < ?", before, before).
		Delete(&Session{})
	return res.RowsAffected, res.Error
}
