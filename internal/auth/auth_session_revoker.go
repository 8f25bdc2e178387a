package auth

import (
	"context"
	"time"

	"go-logbook/internal/shared/telemetry"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionRevoker ends every live session of a user, inside the caller's
// transaction when one is given.
type SessionRevoker struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewSessionRevoker(repo Repository, logger ...*zap.Logger) *SessionRevoker {
	l := zap.L().Named("auth.revoker")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.revoker")
	}
	return &SessionRevoker{repo: repo, now: func() time.Time { return time.Now().UTC() }, logger: l}
}

func (r *SessionRevoker) RevokeAllSessions(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	repo := r.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	n, err := repo.RevokeAllForUser(ctx, userID, r.now())
	if err != nil {
		return err
	}

	telemetry.AuthEvents.WithLabelValues("sessions_revoked").Add(float64(n))
	r.logger.Info("sessions revoked", zap.String("user_id", userID.String()), zap.Int64("count", n))
	return nil
}
