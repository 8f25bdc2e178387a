package auth

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	autherrors "go-logbook/internal/auth/errors"
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/password"
	"go-logbook/internal/shared/securetoken"
	"go-logbook/internal/shared/telemetry"
	"go-logbook/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest, meta ClientMeta) (AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string, meta ClientMeta) (AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, actor *policy.Actor) (user.UserResponse, error)
	Authenticate(ctx context.Context, accessToken string) (*policy.Actor, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	users      user.Repository
	tokens     *TokenManager
	refreshTTL time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, users user.Repository, tokens *TokenManager, refreshTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		users:      users,
		tokens:     tokens,
		refreshTTL: refreshTTL,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     l,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnPasswordCheck keeps unknown-email logins as slow as wrong-password ones.
func burnPasswordCheck(plain string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = password.Hash("logbook-timing-equalizer")
	})
	password.Matches(dummyHash, plain)
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) Login(ctx context.Context, req LoginRequest, meta ClientMeta) (AuthResponse, error) {
	log := s.log(ctx)
	email := user.NormalizeEmail(req.Email)

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("login user lookup failed", zap.Error(err))
			return AuthResponse{}, err
		}
		burnPasswordCheck(req.Password)
		telemetry.AuthEvents.WithLabelValues("login_failed").Inc()
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !password.Matches(u.PasswordHash, req.Password) {
		telemetry.AuthEvents.WithLabelValues("login_failed").Inc()
		log.Info("login rejected", zap.String("user_id", u.ID.String()))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.CanAuthenticate() {
		telemetry.AuthEvents.WithLabelValues("login_inactive").Inc()
		return AuthResponse{}, autherrors.ErrAccountInactive
	}

	resp, err := s.openSession(ctx, s.repo, u, meta)
	if err != nil {
		return AuthResponse{}, err
	}

	now := s.now()
	if err := s.users.TouchLastLogin(ctx, u.ID, now); err != nil {
		log.Warn("login touch last_login failed", zap.String("user_id", u.ID.String()), zap.Error(err))
	}
	u.LastLoginAt = &now
	resp.User = user.ToResponse(*u)

	telemetry.AuthEvents.WithLabelValues("login").Inc()
	log.Info("login success", zap.String("user_id", u.ID.String()), zap.String("role", string(u.Role)))
	return resp, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string, meta ClientMeta) (AuthResponse, error) {
	log := s.log(ctx)
	if refreshToken == "" {
		return AuthResponse{}, autherrors.ErrRefreshTokenRequired
	}

	current, err := s.repo.FindByRefreshHash(ctx, securetoken.Hash(refreshToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return AuthResponse{}, err
	}
	if !current.Live(s.now()) {
		return AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.users.FindByID(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return AuthResponse{}, err
	}
	if !u.CanAuthenticate() {
		return AuthResponse{}, autherrors.ErrAccountInactive
	}

	var resp AuthResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		revoked, err := qtx.Revoke(ctx, current.ID, s.now())
		if err != nil {
			return err
		}
		if !revoked {
			// Lost a race against another refresh of the same token.
			return autherrors.ErrInvalidRefreshToken
		}
		resp, err = s.openSession(ctx, qtx, u, meta)
		return err
	})
	if err != nil {
		return AuthResponse{}, err
	}

	resp.User = user.ToResponse(*u)
	telemetry.AuthEvents.WithLabelValues("refresh").Inc()
	log.Debug("refresh rotated session", zap.String("user_id", u.ID.String()))
	return resp, nil
}

// Logout is idempotent; unknown or already revoked tokens are not an error.
func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return autherrors.ErrRefreshTokenRequired
	}

	sess, err := s.repo.FindByRefreshHash(ctx, securetoken.Hash(refreshToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if _, err := s.repo.Revoke(ctx, sess.ID, s.now()); err != nil {
		return err
	}

	telemetry.AuthEvents.WithLabelValues("logout").Inc()
	s.log(ctx).Info("logout", zap.String("user_id", sess.UserID.String()))
	return nil
}

func (s *service) Me(ctx context.Context, actor *policy.Actor) (user.UserResponse, error) {
	if !actor.Authenticated() {
		return user.UserResponse{}, autherrors.ErrInvalidToken
	}
	u, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, autherrors.ErrInvalidToken
		}
		return user.UserResponse{}, err
	}
	return user.ToResponse(*u), nil
}

func (s *service) Authenticate(ctx context.Context, accessToken string) (*policy.Actor, error) {
	claims, err := s.tokens.Parse(accessToken)
	if err != nil {
		return nil, err
	}

	sid, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	sess, err := s.repo.FindByID(ctx, sid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrInvalidToken
		}
		return nil, err
	}
	if sess.UserID != uid || !sess.Live(s.now()) {
		return nil, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrInvalidToken
		}
		return nil, err
	}
	if !u.CanAuthenticate() {
		return nil, autherrors.ErrAccountInactive
	}

	// Role comes from the row, not the token, so role changes apply at once.
	return u.Actor(), nil
}

func (s *service) openSession(ctx context.Context, repo Repository, u *user.User, meta ClientMeta) (AuthResponse, error) {
	raw, hash, err := securetoken.New()
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	sess := &Session{
		ID:               uuid.New(),
		UserID:           u.ID,
		RefreshTokenHash: hash,
		UserAgent:        truncate(meta.UserAgent, 255),
		IP:               truncate(meta.IP, 64),
		ExpiresAt:        s.now().Add(s.refreshTTL),
	}
	if err := repo.Create(ctx, sess); err != nil {
		s.log(ctx).Error("open session failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return AuthResponse{}, err
	}

	access, err := s.tokens.Issue(u.ID, u.Role, sess.ID)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		TokenPair: TokenPair{
			AccessToken:  access,
			RefreshToken: raw,
			ExpiresIn:    int64(s.tokens.TTL().Seconds()),
		},
	}, nil
}

// truncate caps s at n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
