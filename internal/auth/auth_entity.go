package auth

import (
	"time"

	"github.com/google/uuid"
)

// Session backs one refresh token. Access tokens carry its id so that
// revoking the session invalidates them on the next request.
type Session struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	RefreshTokenHash string     `gorm:"column:refresh_token_hash;type:char(64);not null;uniqueIndex:uq_auth_sessions_refresh"`
	UserAgent        string     `gorm:"column:user_agent;type:varchar(255)"`
	IP               string     `gorm:"column:ip;type:varchar(64)"`
	ExpiresAt        time.Time  `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time `gorm:"column:revoked_at"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Session) TableName() string {
	return "auth_sessions"
}

func (s *Session) Live(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
