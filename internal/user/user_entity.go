package user

import (
	"time"

	"go-logbook/internal/policy"

	"github.com/google/uuid"
)

type Lifecycle string

const (
	LifecycleActive  Lifecycle = "active"
	LifecycleDeleted Lifecycle = "deleted"
)

type User struct {
	ID           uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string      `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash string      `gorm:"column:password_hash;type:varchar(255);not null"`
	FullName     string      `gorm:"column:full_name;type:varchar(255)"`
	Phone        string      `gorm:"column:phone;type:varchar(20)"`
	Role         policy.Role `gorm:"column:role;type:varchar(20);not null;index"`
	IsActive     bool        `gorm:"column:is_active;not null"`
	IsStaff      bool        `gorm:"column:is_staff;not null"`
	IsSuperuser  bool        `gorm:"column:is_superuser;not null"`
	IsDeleted    bool        `gorm:"column:is_deleted;not null;index"`
	DeletedAt    *time.Time  `gorm:"column:deleted_at"`
	LastLoginAt  *time.Time  `gorm:"column:last_login_at"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Lifecycle() Lifecycle {
	if u.IsDeleted {
		return LifecycleDeleted
	}
	return LifecycleActive
}

// CanAuthenticate is false for deleted or deactivated accounts.
func (u *User) CanAuthenticate() bool {
	return u.Lifecycle() == LifecycleActive && u.IsActive
}

func (u *User) MarkDeleted(at time.Time) {
	u.IsDeleted = true
	u.IsActive = false
	u.DeletedAt = &at
}

func (u *User) Restore() {
	u.IsDeleted = false
	u.IsActive = true
	u.DeletedAt = nil
}

func (u *User) Actor() *policy.Actor {
	return &policy.Actor{ID: u.ID, Role: u.Role, Email: u.Email, Name: u.FullName}
}
