package auth

import (
	"testing"
	"time"

	autherrors "go-logbook/internal/auth/errors"
	"go-logbook/internal/policy"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 15*time.Minute)
	uid, sid := uuid.New(), uuid.New()

	signed, err := m.Issue(uid, policy.RoleSupervisor, sid)
	require.NoError(t, err)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, uid.String(), claims.UserID)
	assert.Equal(t, sid.String(), claims.SessionID)
	assert.Equal(t, "supervisor", claims.Role)
	assert.Equal(t, tokenTypeAccess, claims.Type)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	issuedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	signed, err := m.Issue(uuid.New(), policy.RoleOperator, uuid.New())
	require.NoError(t, err)

	m.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	signed, err := NewTokenManager("secret-a", time.Minute).Issue(uuid.New(), policy.RoleOperator, uuid.New())
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Minute).Parse(signed)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestTokenManager_RejectsOtherTypesAndAlgorithms(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)

	refreshLike := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: uuid.NewString(),
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := refreshLike.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Type: tokenTypeAccess})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Parse(unsigned)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}
