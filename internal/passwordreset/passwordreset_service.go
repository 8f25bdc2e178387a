package passwordreset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	passwordreseterrors "go-logbook/internal/passwordreset/errors"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/password"
	"go-logbook/internal/shared/securetoken"
	"go-logbook/internal/shared/telemetry"
	"go-logbook/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	mailSubject     = "Reset your LogBook account password"
	mailSendTimeout = 30 * time.Second
)

// SessionRevoker ends every live session of a user within tx.
//
//go:generate mockgen -source=passwordreset_service.go -destination=mock/passwordreset_service_mock.go -package=mock
type SessionRevoker interface {
	RevokeAllSessions(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type Service interface {
	ForgotPassword(ctx context.Context, email string) error
	ValidateToken(ctx context.Context, raw string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type Config struct {
	TokenTTL        time.Duration
	FrontendBaseURL string
}

type service struct {
	db       *gorm.DB
	repo     Repository
	users    user.Repository
	sessions SessionRevoker
	mailer   Mailer
	cfg      Config
	now      func() time.Time
	dispatch func(func())
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, users user.Repository, sessions SessionRevoker, mailer Mailer, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("passwordreset.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("passwordreset.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		users:    users,
		sessions: sessions,
		mailer:   mailer,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		dispatch: func(f func()) { go f() },
		logger:   l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

// ForgotPassword never reveals whether the email exists. Both paths mint and
// hash a token; only the known-user path persists and mails it.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	log := s.log(ctx)
	email = user.NormalizeEmail(email)

	raw, hash, err := securetoken.New()
	if err != nil {
		return err
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			telemetry.PasswordResetEvents.WithLabelValues("unknown_email").Inc()
			return nil
		}
		log.Error("forgot password user lookup failed", zap.Error(err))
		return err
	}
	if !u.CanAuthenticate() {
		telemetry.PasswordResetEvents.WithLabelValues("inactive_user").Inc()
		return nil
	}

	now := s.now()
	token := &Token{
		ID:        uuid.New(),
		UserID:    u.ID,
		TokenHash: hash,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.DeleteUnusedForUser(ctx, u.ID); err != nil {
			return err
		}
		return qtx.Create(ctx, token)
	})
	if err != nil {
		log.Error("forgot password token persist failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return err
	}

	telemetry.PasswordResetEvents.WithLabelValues("requested").Inc()
	log.Info("password reset token issued", zap.String("user_id", u.ID.String()))

	to, body := u.Email, s.mailBody(raw)
	mailCtx := context.WithoutCancel(ctx)
	s.dispatch(func() {
		sendCtx, cancel := context.WithTimeout(mailCtx, mailSendTimeout)
		defer cancel()
		if err := s.mailer.Send(sendCtx, to, mailSubject, body); err != nil {
			telemetry.PasswordResetEvents.WithLabelValues("mail_failed").Inc()
			s.logger.Error("password reset mail failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		}
	})
	return nil
}

func (s *service) ValidateToken(ctx context.Context, raw string) error {
	if raw == "" {
		return passwordreseterrors.ErrInvalidOrExpiredToken
	}

	t, err := s.repo.FindByHash(ctx, securetoken.Hash(raw))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return passwordreseterrors.ErrInvalidOrExpiredToken
		}
		return err
	}
	if !t.IsValid(s.now()) {
		return passwordreseterrors.ErrInvalidOrExpiredToken
	}
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	log := s.log(ctx)

	if req.NewPassword != req.ConfirmPassword {
		return passwordreseterrors.ErrPasswordMismatch
	}
	if err := password.Validate(req.NewPassword); err != nil {
		return apperror.FieldError("new_password", err.Error())
	}
	newHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	var userID uuid.UUID
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		t, err := qtx.FindByHashForUpdate(ctx, securetoken.Hash(req.Token))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return passwordreseterrors.ErrInvalidOrExpiredToken
			}
			return err
		}

		now := s.now()
		if !t.IsValid(now) {
			return passwordreseterrors.ErrInvalidOrExpiredToken
		}
		marked, err := qtx.MarkUsed(ctx, t.ID, now)
		if err != nil {
			return err
		}
		if !marked {
			return passwordreseterrors.ErrInvalidOrExpiredToken
		}

		if err := s.users.WithTx(tx).SetPassword(ctx, t.UserID, newHash, true); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return passwordreseterrors.ErrInvalidOrExpiredToken
			}
			return err
		}
		userID = t.UserID
		return s.sessions.RevokeAllSessions(ctx, tx, t.UserID)
	})
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			log.Error("reset password failed", zap.Error(err))
		}
		return err
	}

	telemetry.PasswordResetEvents.WithLabelValues("completed").Inc()
	log.Info("password reset completed", zap.String("user_id", userID.String()))
	return nil
}

func (s *service) PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := s.repo.PurgeStale(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log(ctx).Info("purged stale reset tokens", zap.Int64("count", n))
	}
	return n, nil
}

func (s *service) resetURL(raw string) string {
	return fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.cfg.FrontendBaseURL, "/"), raw)
}

func (s *service) mailBody(raw string) string {
	return "You (or someone else) requested a password reset for your LogBook account.\n\n" +
		"To set a new password, open the link below in your browser:\n\n" + s.resetURL(raw) + "\n\n" +
		fmt.Sprintf("This link will expire in %d minutes and can be used only once.\n\n", int(s.cfg.TokenTTL.Minutes())) +
		"If you did not request this, you can safely ignore this email."
}
