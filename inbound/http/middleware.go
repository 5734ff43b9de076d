package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/model"
	"event-ticket/outbound/sqlgen"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const apiKeyContextKey contextKey = "api_key"

// ApiKeyFromContext returns the caller's key as stored by ApiKeyMiddleware,
// or the empty string on unauthenticated paths.
func ApiKeyFromContext(ctx context.Context) string {
	key, _ := ctx.Value(apiKeyContextKey).(string)
	return key
}

var openPaths = map[string]bool{
	"/health":            true,
	"/api/request":       true,
	"/api/documentation": true,
}

// ApiKeyMiddleware rejects requests whose Authorization header does not
// carry a known key. Known keys are cached in redis so the database is
// only hit on cache misses.
func ApiKeyMiddleware(querier *sqlgen.Queries, cache *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if openPaths[r.URL.Path] || strings.HasPrefix(r.URL.Path, "/api/download-tickets/") {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

			apiKey, ok := extractBearerToken(r)
			if !ok {
				writeJSONResponse(w, http.StatusUnauthorized, model.ErrorResponse{Message: "Unauthorized"})
				return
			}

			cacheKey := fmt.Sprintf(constant.ApiKeyCacheKey, apiKey)
			cached, err := cache.Get(ctx, cacheKey).Result()
			if err != nil && err != redis.Nil {
				slog.ErrorContext(ctx, "failed to get api key from cache", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			}

			if cached != "1" {
				exists, err := querier.ApiKeyExists(ctx, apiKey)
				if err != nil {
					slog.ErrorContext(ctx, "failed to check api key", traceIdAttr, slog.Any(constant.LogFieldErr, err))
					writeErrorResponse(w, err)
					return
				}

				if !exists {
					writeJSONResponse(w, http.StatusUnauthorized, model.ErrorResponse{Message: "Unauthorized"})
					return
				}

				err = cache.Set(ctx, cacheKey, "1", constant.ApiKeyCacheDefaultTTL).Err()
				if err != nil {
					slog.ErrorContext(ctx, "failed to cache api key", traceIdAttr, slog.Any(constant.LogFieldErr, err))
				}
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, apiKeyContextKey, apiKey)))
		})
	}
}

func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, "request timeout")
	}
}

func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
