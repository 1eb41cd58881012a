package ratelimit

import (
	"context"
	"net/http"
	"time"

	"github.com/areto-app/areto/config"
	"github.com/areto-app/areto/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Message is the fixed advisory returned to over-limit callers, whatever the
// endpoint.
const Message = "Too many requests, please try again later."

const keyPrefix = "ratelimit:"

// NewRedisClient builds the redis client backing the limiter counters.
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// Limiter is a fixed-window request counter backed by redis.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewLimiter(rdb *redis.Client, cfg *config.Config) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  cfg.RateLimit.Requests,
		window: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	}
}

// Allow counts one request for key and reports whether it fits the current
// window. The window starts with the first request and expires as a whole.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := keyPrefix + key
	count, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.limit), nil
}

// Middleware rejects over-limit requests with 429. A counter failure aborts
// with 500: the limiter fails closed rather than letting traffic through
// unmetered.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		allowed, err := l.Allow(ctx.Request.Context(), ctx.ClientIP())
		if err != nil {
			log.Error().Err(err).Msg("Rate limit check failed")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error"})
			return
		}
		if !allowed {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{Message: Message})
			return
		}
		ctx.Next()
	}
}
