package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader   = "Idempotency-Key"
	idempotencyLockTTL  = 30 * time.Second
	idempotencyReplayed = "Idempotent-Replayed"
)

var errIdempotencyInFlight = apperror.New(
	apperror.CodeConflict,
	"A request with this Idempotency-Key is still being processed.",
	http.StatusConflict,
)

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the first successful response for a repeated
// Idempotency-Key on POST requests. Keys are scoped by route and user.
func Idempotency(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID := c.GetString(contextutil.GinUserIDKey)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached cachedResponse
			if err := json.Unmarshal(val, &cached); err == nil {
				c.Header(idempotencyReplayed, "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			// Redis being down must not block writes.
			log.Warn("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.AbortWithError(c, errIdempotencyInFlight)
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status >= 200 && status < 300 && rec.buf.Len() > 0 {
			payload, _ := json.Marshal(cachedResponse{Status: status, Body: rec.buf.Bytes()})
			if err := rdb.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
				log.Warn("idempotency store failed", zap.Error(err))
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			log.Warn("idempotency unlock failed", zap.Error(err))
		}
	}
}
