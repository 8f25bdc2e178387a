package passwordreset_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-logbook/internal/passwordreset"
	passwordreseterrors "go-logbook/internal/passwordreset/errors"
	mock_pr "go-logbook/internal/passwordreset/mock"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/securetoken"
	"go-logbook/internal/shared/testutil"
	"go-logbook/internal/user"
	mock_user "go-logbook/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type resetDeps struct {
	repo     *mock_pr.MockRepository
	users    *mock_user.MockRepository
	sessions *mock_pr.MockSessionRevoker
	mailer   *mock_pr.MockMailer
	sqlMock  sqlmock.Sqlmock
	now      time.Time
	svc      passwordreset.Service
}

func setupResetTest(t *testing.T) *resetDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := &resetDeps{
		repo:     mock_pr.NewMockRepository(ctrl),
		users:    mock_user.NewMockRepository(ctrl),
		sessions: mock_pr.NewMockSessionRevoker(ctrl),
		mailer:   mock_pr.NewMockMailer(ctrl),
		now:      time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
	}
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users).AnyTimes()

	db, mock := testutil.NewGormMock(t)
	deps.sqlMock = mock
	deps.svc = passwordreset.NewService(db, deps.repo, deps.users, deps.sessions, deps.mailer, passwordreset.Config{
		TokenTTL:        15 * time.Minute,
		FrontendBaseURL: "https://logbook.example.com/",
	})
	passwordreset.SetClock(deps.svc, func() time.Time { return deps.now })
	passwordreset.SendMailInline(deps.svc)
	return deps
}

func TestForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("known user gets a single fresh token and a mail", func(t *testing.T) {
		deps := setupResetTest(t)
		u := &user.User{ID: uuid.New(), Email: "op@plant.test", IsActive: true}
		var stored *passwordreset.Token

		deps.users.EXPECT().FindByEmail(gomock.Any(), "op@plant.test").Return(u, nil)
		testutil.ExpectTx(t, deps.sqlMock, true)
		gomock.InOrder(
			deps.repo.EXPECT().DeleteUnusedForUser(gomock.Any(), u.ID).Return(nil),
			deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, tok *passwordreset.Token) error {
				stored = tok
				return nil
			}),
		)
		deps.mailer.EXPECT().Send(gomock.Any(), "op@plant.test", "Reset your LogBook account password", gomock.Any()).
			DoAndReturn(func(ctx context.Context, to, subject, body string) error {
				require.NotNil(t, stored)
				i := strings.Index(body, "https://logbook.example.com/reset-password?token=")
				require.GreaterOrEqual(t, i, 0, body)
				raw := strings.Fields(body[i+len("https://logbook.example.com/reset-password?token="):])[0]
				assert.Equal(t, stored.TokenHash, securetoken.Hash(raw))
				assert.Contains(t, body, "expire in 15 minutes")
				return nil
			})

		err := deps.svc.ForgotPassword(ctx, "  OP@plant.test ")

		require.NoError(t, err)
		assert.Equal(t, deps.now.Add(15*time.Minute), stored.ExpiresAt)
		assert.False(t, stored.IsUsed)
		assert.Len(t, stored.TokenHash, 64)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown email looks identical to the caller", func(t *testing.T) {
		deps := setupResetTest(t)
		deps.users.EXPECT().FindByEmail(gomock.Any(), "ghost@plant.test").Return(nil, gorm.ErrRecordNotFound)

		err := deps.svc.ForgotPassword(ctx, "ghost@plant.test")

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("inactive user gets nothing", func(t *testing.T) {
		deps := setupResetTest(t)
		deps.users.EXPECT().FindByEmail(gomock.Any(), "off@plant.test").Return(&user.User{ID: uuid.New(), IsActive: false}, nil)

		assert.NoError(t, deps.svc.ForgotPassword(ctx, "off@plant.test"))
	})

	t.Run("mail failure is swallowed", func(t *testing.T) {
		deps := setupResetTest(t)
		u := &user.User{ID: uuid.New(), Email: "op@plant.test", IsActive: true}
		deps.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(u, nil)
		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().DeleteUnusedForUser(gomock.Any(), u.ID).Return(nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		assert.NoError(t, deps.svc.ForgotPassword(ctx, "op@plant.test"))
	})
}

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	raw, hash, err := securetoken.New()
	require.NoError(t, err)

	tests := []struct {
		name    string
		offset  time.Duration
		used    bool
		wantErr bool
	}{
		{"one second before expiry", -time.Second, false, false},
		{"exactly at expiry", 0, false, true},
		{"after expiry", time.Minute, false, true},
		{"used", -time.Minute, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupResetTest(t)
			tok := &passwordreset.Token{ID: uuid.New(), TokenHash: hash, ExpiresAt: deps.now.Add(-tt.offset), IsUsed: tt.used}
			deps.repo.EXPECT().FindByHash(gomock.Any(), hash).Return(tok, nil)

			err := deps.svc.ValidateToken(ctx, raw)

			if tt.wantErr {
				assert.ErrorIs(t, err, passwordreseterrors.ErrInvalidOrExpiredToken)
				assert.Equal(t, "Invalid or expired token.", apperror.ToHTTP(err).Details["token"])
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("unknown token", func(t *testing.T) {
		deps := setupResetTest(t)
		deps.repo.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.svc.ValidateToken(ctx, "nope"), passwordreseterrors.ErrInvalidOrExpiredToken)
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatch", func(t *testing.T) {
		deps := setupResetTest(t)
		err := deps.svc.ResetPassword(ctx, passwordreset.ResetPasswordRequest{Token: "x", NewPassword: "Chiller#2024", ConfirmPassword: "Chiller#2025"})

		assert.ErrorIs(t, err, passwordreseterrors.ErrPasswordMismatch)
		assert.Equal(t, "Passwords do not match.", apperror.ToHTTP(err).Details["confirm_password"])
	})

	t.Run("weak password reported on new_password", func(t *testing.T) {
		deps := setupResetTest(t)
		err := deps.svc.ResetPassword(ctx, passwordreset.ResetPasswordRequest{Token: "x", NewPassword: "short", ConfirmPassword: "short"})

		assert.Contains(t, apperror.ToHTTP(err).Details, "new_password")
	})

	t.Run("success sets password, reactivates and revokes sessions in one tx", func(t *testing.T) {
		deps := setupResetTest(t)
		raw, hash, _ := securetoken.New()
		tok := &passwordreset.Token{ID: uuid.New(), UserID: uuid.New(), TokenHash: hash, ExpiresAt: deps.now.Add(time.Minute)}

		testutil.ExpectTx(t, deps.sqlMock, true)
		gomock.InOrder(
			deps.repo.EXPECT().FindByHashForUpdate(gomock.Any(), hash).Return(tok, nil),
			deps.repo.EXPECT().MarkUsed(gomock.Any(), tok.ID, deps.now).Return(true, nil),
			deps.users.EXPECT().SetPassword(gomock.Any(), tok.UserID, gomock.Any(), true).
				DoAndReturn(func(ctx context.Context, id uuid.UUID, h string, reactivate bool) error {
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("Chiller#2024")))
					return nil
				}),
			deps.sessions.EXPECT().RevokeAllSessions(gomock.Any(), gomock.Not(gomock.Nil()), tok.UserID).Return(nil),
		)

		err := deps.svc.ResetPassword(ctx, passwordreset.ResetPasswordRequest{Token: raw, NewPassword: "Chiller#2024", ConfirmPassword: "Chiller#2024"})

		require.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("token consumed by a concurrent reset", func(t *testing.T) {
		deps := setupResetTest(t)
		raw, hash, _ := securetoken.New()
		tok := &passwordreset.Token{ID: uuid.New(), UserID: uuid.New(), TokenHash: hash, ExpiresAt: deps.now.Add(time.Minute)}

		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByHashForUpdate(gomock.Any(), hash).Return(tok, nil)
		deps.repo.EXPECT().MarkUsed(gomock.Any(), tok.ID, deps.now).Return(false, nil)

		err := deps.svc.ResetPassword(ctx, passwordreset.ResetPasswordRequest{Token: raw, NewPassword: "Chiller#2024", ConfirmPassword: "Chiller#2024"})

		assert.ErrorIs(t, err, passwordreseterrors.ErrInvalidOrExpiredToken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("expired token", func(t *testing.T) {
		deps := setupResetTest(t)
		raw, hash, _ := securetoken.New()
		tok := &passwordreset.Token{ID: uuid.New(), TokenHash: hash, ExpiresAt: deps.now}

		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByHashForUpdate(gomock.Any(), hash).Return(tok, nil)

		err := deps.svc.ResetPassword(ctx, passwordreset.ResetPasswordRequest{Token: raw, NewPassword: "Chiller#2024", ConfirmPassword: "Chiller#2024"})

		assert.ErrorIs(t, err, passwordreseterrors.ErrInvalidOrExpiredToken)
	})

	t.Run("session revocation failure rolls back", func(t *testing.T) {
		deps := setupResetTest(t)
		raw, hash, _ := securetoken.New()
		tok := &passwordreset.Token{ID: uuid.New(), UserID: uuid.New(), TokenHash: hash, ExpiresAt: deps.now.Add(time.Minute)}

		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByHashForUpdate(gomock.Any(), hash).Return(tok, nil)
		deps.repo.EXPECT().MarkUsed(gomock.Any(), tok.ID, deps.now).Return(true, nil)
		deps.users.EXPECT().SetPassword(gomock.Any(), tok.UserID, gomock.Any(), true).Return(nil)
		deps.sessions.EXPECT().RevokeAllSessions(gomock.Any(), gomock.Any(), tok.UserID).Return(errors.New("db down"))

		err := deps.svc.ResetPassword(ctx, passwordreset.ResetPasswordRequest{Token: raw, NewPassword: "Chiller#2024", ConfirmPassword: "Chiller#2024"})

		assert.EqualError(t, err, "db down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPurgeStale(t *testing.T) {
	deps := setupResetTest(t)
	deps.repo.EXPECT().PurgeStale(gomock.Any(), deps.now.Add(-24*time.Hour)).Return(int64(3), nil)

	n, err := deps.svc.PurgeStale(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
