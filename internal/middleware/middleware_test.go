package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type authenticatorFunc func(ctx context.Context, token string) (*policy.Actor, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (*policy.Actor, error) {
	return f(ctx, token)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAuthMiddleware(t *testing.T) {
	actor := &policy.Actor{ID: uuid.New(), Role: policy.RoleOperator}
	auth := authenticatorFunc(func(ctx context.Context, token string) (*policy.Actor, error) {
		if token == "good" {
			return actor, nil
		}
		return nil, apperror.New(apperror.CodeInvalidToken, "Given token not valid for any token type", http.StatusUnauthorized)
	})

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me", AuthMiddleware(auth), func(c *gin.Context) {
			got := ActorFrom(c)
			assert.Equal(t, actor, got)
			assert.Equal(t, actor.ID.String(), contextutil.GetUserID(c.Request.Context()))
			c.Status(http.StatusNoContent)
		})
		return r
	}

	t.Run("bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "good"})
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeUnauthorized, env.Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer revoked")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperror.CodeInvalidToken, decodeEnvelope(t, w).Error.Code)
	})
}

func TestAuthorize(t *testing.T) {
	engine := policy.MustNewEngine()

	run := func(actor *policy.Actor, action policy.Action) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/x", func(c *gin.Context) {
			if actor != nil {
				c.Set(contextutil.GinActorKey, actor)
			}
		}, Authorize(engine, action), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
		return w
	}

	assert.Equal(t, http.StatusNoContent, run(&policy.Actor{ID: uuid.New(), Role: policy.RoleSupervisor}, policy.ActionEntryApprove).Code)
	assert.Equal(t, http.StatusForbidden, run(&policy.Actor{ID: uuid.New(), Role: policy.RoleOperator}, policy.ActionEntryApprove).Code)
	assert.Equal(t, http.StatusForbidden, run(&policy.Actor{ID: uuid.New(), Role: policy.RoleClient}, policy.ActionUserManage).Code)
	assert.Equal(t, http.StatusUnauthorized, run(nil, policy.ActionReportView).Code)
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimitByIP(PerMinute(1), 2), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestKeyedRateLimiter_EvictsIdleKeys(t *testing.T) {
	k := NewKeyedRateLimiter(PerMinute(1), 2)
	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	k.now = func() time.Time { return now }
	k.lastSweep = now

	first := k.GetLimiter("10.0.0.1")
	k.GetLimiter("10.0.0.2")
	require.Equal(t, 2, k.Len())

	now = now.Add(6 * time.Minute)
	assert.Same(t, first, k.GetLimiter("10.0.0.1"))

	// 10.0.0.2 has been idle past the window; the next lookup sweeps it.
	now = now.Add(5 * time.Minute)
	k.GetLimiter("10.0.0.3")
	assert.Equal(t, 2, k.Len())

	now = now.Add(time.Hour)
	k.Sweep()
	assert.Equal(t, 0, k.Len())
	assert.NotSame(t, first, k.GetLimiter("10.0.0.1"))
}

func TestKeyedRateLimiter_IdleCoversRefill(t *testing.T) {
	assert.Equal(t, minLimiterIdle, NewKeyedRateLimiter(PerMinute(60), 5).idle)
	assert.InDelta(t, float64(20*time.Minute), float64(NewKeyedRateLimiter(PerMinute(1), 20).idle), float64(time.Millisecond))
	assert.Equal(t, minLimiterIdle, NewKeyedRateLimiter(PerMinute(0), 5).idle)
}

func TestPerMinute(t *testing.T) {
	assert.Equal(t, PerMinute(0), PerMinute(-3))
	assert.InDelta(t, 1.0, float64(PerMinute(60)), 0.0001)
}

func TestRequestIDAndContextLogger(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequestID(), ContextLogger(zap.NewNop()), func(c *gin.Context) {
		assert.Equal(t, "rid-1", contextutil.GetRequestID(c.Request.Context()))
		assert.NotNil(t, contextutil.GetLogger(c.Request.Context(), nil))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-1", w.Header().Get(RequestIDHeader))
}

func TestIdempotency(t *testing.T) {
	const ttl = 24 * time.Hour
	cacheKey := "idemp:/entries:u-1:key-1"
	lockKey := cacheKey + ":lock"
	body := []byte(`{"ok":true,"data":{"id":"e-1"}}`)

	newRouter := func(rdbHandler gin.HandlerFunc, calls *int) *gin.Engine {
		r := gin.New()
		r.POST("/entries", func(c *gin.Context) {
			c.Set(contextutil.GinUserIDKey, "u-1")
		}, rdbHandler, func(c *gin.Context) {
			*calls++
			c.Data(http.StatusCreated, "application/json; charset=utf-8", body)
		})
		return r
	}

	post := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/entries", nil)
		req.Header.Set(IdempotencyHeader, "key-1")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("first request stores response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		payload, _ := json.Marshal(cachedResponse{Status: http.StatusCreated, Body: body})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, payload, ttl).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		calls := 0
		w := post(newRouter(Idempotency(rdb, ttl, zap.NewNop()), &calls))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips handler", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		payload, _ := json.Marshal(cachedResponse{Status: http.StatusCreated, Body: body})
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		calls := 0
		w := post(newRouter(Idempotency(rdb, ttl, zap.NewNop()), &calls))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, calls)
		assert.Equal(t, "true", w.Header().Get(idempotencyReplayed))
		assert.JSONEq(t, string(body), w.Body.String())
	})

	t.Run("in flight duplicate", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(false)

		calls := 0
		w := post(newRouter(Idempotency(rdb, ttl, zap.NewNop()), &calls))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("redis down passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetErr(errors.New("connection refused"))

		calls := 0
		w := post(newRouter(Idempotency(rdb, ttl, zap.NewNop()), &calls))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
	})
}
