package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/homechef/backend/internal/testhelpers"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/orders", func(c *gin.Context) {
		c.Set(AccountIDKey, int64(11))
		c.Next()
	}, rl.RateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func post(router *gin.Engine) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", nil)
	router.ServeHTTP(rr, req)
	return rr
}

func TestRateLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Minute, Limit: 1, KeyPrefix: "test"}, quietLogger())

	rr := post(limitedRouter(rl))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "rate limit check failed", rr.Header().Get("X-RateLimit-Error"))
}

func TestRateLimiterRequiresAccount(t *testing.T) {
	rl := NewRateLimiter(nil, RateLimitConfig{Window: time.Minute, Limit: 1}, quietLogger())
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/orders", rl.RateLimitMiddleware())

	rr := post(router)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRateLimiterWithRedis(t *testing.T) {
	url := testhelpers.StartRedis(t)
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Hour, Limit: 2, KeyPrefix: "rate_limit:test"}, quietLogger())
	router := limitedRouter(rl)

	assert.Equal(t, http.StatusCreated, post(router).Code)
	second := post(router)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := post(router)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), "rate limit exceeded")

	remaining, err := rl.Remaining(context.Background(), "11")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	fresh, err := rl.Remaining(context.Background(), "12")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh)
}
