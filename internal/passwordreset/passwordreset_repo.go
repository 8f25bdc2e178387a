package passwordreset

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=passwordreset_repo.go -destination=mock/passwordreset_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	DeleteUnusedForUser(ctx context.Context, userID uuid.UUID) error
	Create(ctx context.Context, t *Token) error
	FindByHash(ctx context.Context, hash string) (*Token, error)
	FindByHashForUpdate(ctx context.Context, hash string) (*Token, error)
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	PurgeStale(ctx context.Context, before time.Time) (int64, error)
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

func (r *repository) DeleteUnusedForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND is_used = false", userID).
		Delete(&Token{}).Error
}

func (r *repository) Create(ctx context.Context, t *Token) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByHash(ctx context.Context, hash string) (*Token, error) {
	var t Token
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByHashForUpdate(ctx context.Context, hash string) (*Token, error) {
	var t Token
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token_hash = ?", hash).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkUsed flips is_used only if nobody else did first.
func (r *repository) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Token{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]any{"is_used": true, "used_at": at})
	return res.RowsAffected == 1, res.Error
}

// PurgeStale removes tokens that were used or expired before the cutoff.
func (r *repository) PurgeStale(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ? OR (is_used = ? AND used_at < ?)", before, true, before).
		Delete(&Token{})
	return res.RowsAffected, res.Error
}
