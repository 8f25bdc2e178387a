package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-logbook/internal/auth"
	autherrors "go-logbook/internal/auth/errors"
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/response"
	"go-logbook/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

type fakeAuthService struct {
	LoginFn        func(ctx context.Context, req auth.LoginRequest, meta auth.ClientMeta) (auth.AuthResponse, error)
	RefreshFn      func(ctx context.Context, refresh string, meta auth.ClientMeta) (auth.AuthResponse, error)
	LogoutFn       func(ctx context.Context, refresh string) error
	MeFn           func(ctx context.Context, actor *policy.Actor) (user.UserResponse, error)
	AuthenticateFn func(ctx context.Context, access string) (*policy.Actor, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest, meta auth.ClientMeta) (auth.AuthResponse, error) {
	return f.LoginFn(ctx, req, meta)
}
func (f *fakeAuthService) Refresh(ctx context.Context, refresh string, meta auth.ClientMeta) (auth.AuthResponse, error) {
	return f.RefreshFn(ctx, refresh, meta)
}
func (f *fakeAuthService) Logout(ctx context.Context, refresh string) error {
	return f.LogoutFn(ctx, refresh)
}
func (f *fakeAuthService) Me(ctx context.Context, actor *policy.Actor) (user.UserResponse, error) {
	return f.MeFn(ctx, actor)
}
func (f *fakeAuthService) Authenticate(ctx context.Context, access string) (*policy.Actor, error) {
	return f.AuthenticateFn(ctx, access)
}

var cookies = auth.CookieConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}

func post(h gin.HandlerFunc, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	h(c)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &fakeAuthService{
		LoginFn: func(ctx context.Context, req auth.LoginRequest, meta auth.ClientMeta) (auth.AuthResponse, error) {
			if req.Password != "Chiller#2024" {
				return auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			}
			return auth.AuthResponse{TokenPair: auth.TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 900}}, nil
		},
	}
	h := auth.NewHandler(svc, cookies)

	t.Run("web client gets cookies", func(t *testing.T) {
		w := post(h.Login, `{"email":"op@plant.test","password":"Chiller#2024"}`, map[string]string{"X-Client-Type": "web"})

		assert.Equal(t, http.StatusOK, w.Code)
		setCookies := w.Result().Cookies()
		require.Len(t, setCookies, 2)
		assert.Equal(t, "access_token", setCookies[0].Name)
		assert.Equal(t, "acc", setCookies[0].Value)
		assert.True(t, setCookies[0].HttpOnly)
	})

	t.Run("api client gets body only", func(t *testing.T) {
		w := post(h.Login, `{"email":"op@plant.test","password":"Chiller#2024"}`, map[string]string{"User-Agent": "curl/8"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
		var env response.ApiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		data := env.Data.(map[string]any)
		assert.Equal(t, "acc", data["access"])
		assert.Equal(t, "ref", data["refresh"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := post(h.Login, `{"email":"op@plant.test","password":"wrong"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := post(h.Login, `{}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_RefreshReadsBodyThenCookie(t *testing.T) {
	var got string
	svc := &fakeAuthService{
		RefreshFn: func(ctx context.Context, refresh string, meta auth.ClientMeta) (auth.AuthResponse, error) {
			got = refresh
			return auth.AuthResponse{}, nil
		},
	}
	h := auth.NewHandler(svc, cookies)

	post(h.Refresh, `{"refresh":"from-body"}`, nil)
	assert.Equal(t, "from-body", got)

	post(h.Refresh, ``, map[string]string{"Cookie": "refresh_token=from-cookie"})
	assert.Equal(t, "from-cookie", got)
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &fakeAuthService{
		LogoutFn: func(ctx context.Context, refresh string) error {
			assert.Equal(t, "ref", refresh)
			return nil
		},
	}

	w := post(auth.NewHandler(svc, cookies).Logout, `{"refresh":"ref"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Equal(t, -1, c.MaxAge)
	}
}
