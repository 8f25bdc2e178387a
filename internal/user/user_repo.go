package user

import (
	"context"
	"strings"
	"time"

	"go-logbook/internal/policy"
	"go-logbook/internal/shared/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	Roles          []policy.Role
	Search         string
	IncludeDeleted bool
	Page           int
	PageSize       int
}

// Repository has two read paths. The plain finders exclude soft-deleted
// users; the IncludingDeleted variants are for conflict checks and restore.
//
//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDIncludingDeletedForUpdate(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailIncludingDeleted(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, f ListFilter) ([]User, int64, error)
	SetPassword(ctx context.Context, id uuid.UUID, hash string, reactivate bool) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
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

func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// updatableColumns excludes identity, timestamps owned by other flows and
// last_login_at, so an edit never writes back a stale snapshot of them.
var updatableColumns = []string{
	"email", "password_hash", "full_name", "phone", "role",
	"is_active", "is_staff", "is_superuser", "is_deleted", "deleted_at", "updated_at",
}

// Update writes the mutable columns of u. Callers load u with a
// ForUpdate finder in the same transaction.
func (r *repository) Update(ctx context.Context, u *User) error {
	res := r.db.WithContext(ctx).Model(u).Select(updatableColumns).Updates(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(notDeleted).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByIDIncludingDeletedForUpdate(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&u, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmailIncludingDeleted(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]User, int64, error) {
	q := r.db.WithContext(ctx).Model(&User{})
	if !f.IncludeDeleted {
		q = q.Scopes(notDeleted)
	}
	if len(f.Roles) > 0 {
		q = q.Where("role IN ?", f.Roles)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(email) LIKE ? OR LOWER(full_name) LIKE ?)", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []User
	err := q.Order("created_at DESC").
		Scopes(database.Paginate(f.Page, f.PageSize)).
		Find(&users).Error
	return users, total, err
}

func (r *repository) SetPassword(ctx context.Context, id uuid.UUID, hash string, reactivate bool) error {
	updates := map[string]any{"password_hash": hash}
	if reactivate {
		updates["is_active"] = true
	}
	res := r.db.WithContext(ctx).Model(&User{}).
		Scopes(notDeleted).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
