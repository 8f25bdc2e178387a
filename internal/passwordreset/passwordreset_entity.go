package passwordreset

import (
	"time"

	"github.com/google/uuid"
)

type Token struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	TokenHash string     `gorm:"column:token_hash;type:char(64);not null;uniqueIndex:uq_password_reset_tokens_hash"`
	CreatedAt time.Time  `gorm:"column:created_at;not null"`
	ExpiresAt time.Time  `gorm:"column:expires_at;not null;index"`
	IsUsed    bool       `gorm:"column:is_used;not null"`
	UsedAt    *time.Time `gorm:"column:used_at"`
}

func (Token) TableName() string {
	return "password_reset_tokens"
}

// IsValid is strict at the boundary: a token is dead at exactly expires_at.
func (t *Token) IsValid(now time.Time) bool {
	return !t.IsUsed && now.Before(t.ExpiresAt)
}
