package cache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/bookstore-backend/pkg/logger"
)

const keyPrefix = "cache:catalog:"

// ResponseCache caches successful GET responses in Redis. A nil
// *ResponseCache is valid and disables caching, so call sites do not
// need to branch on whether Redis is configured.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a response cache. ttl <= 0 defaults to 5 minutes.
func New(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// recorder buffers the response so it can be stored after serving
type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Middleware serves GET responses from Redis when present and stores
// 200 responses on miss.
func (c *ResponseCache) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c == nil || c.client == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := cacheKey(r)
		ctx := r.Context()

		if cached, err := c.client.Get(ctx, key).Bytes(); err == nil && len(cached) > 0 {
			logger.Logger.Debug().Str("path", r.URL.Path).Msg("cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		rec := &recorder{ResponseWriter: w, status: http.StatusOK}
		rec.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusOK {
			if err := c.client.Set(ctx, key, rec.body.Bytes(), c.ttl).Err(); err != nil {
				logger.Logger.Warn().Err(err).Str("key", key).Msg("failed to cache response")
			}
		}
	}
}

// Invalidate drops every cached catalog response. Called after any
// mutation that changes what catalog reads would return: admin CRUD,
// favorite add/remove (favorites_count, is_favorite).
func (c *ResponseCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
		logger.Logger.Debug().Int("count", len(keys)).Msg("catalog cache invalidated")
	}
	return nil
}

// cacheKey hashes method, path, query and the caller's identity, so
// per-user annotations like is_favorite never bleed across users.
func cacheKey(r *http.Request) string {
	components := fmt.Sprintf("%s:%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
		r.Header.Get("Authorization"),
	)
	hash := sha256.Sum256([]byte(components))
	return keyPrefix + hex.EncodeToString(hash[:])
}
