package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// CacheInvalidator drops cached search candidates after a write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

const invalidateAttempts = 2

// refreshCache invalidates the candidate cache after a committed write. When
// every attempt fails it answers 500 and returns false.
func refreshCache(w http.ResponseWriter, r *http.Request, cache CacheInvalidator, logr *zap.Logger) bool {
	if cache == nil {
		return true
	}
	var err error
	for attempt := 1; attempt <= invalidateAttempts; attempt++ {
		if err = cache.Invalidate(r.Context()); err == nil {
			return true
		}
		logr.Warn("failed to invalidate candidate cache", zap.Error(err), zap.Int("attempt", attempt))
	}
	logr.Error("candidate cache is stale after write", zap.Error(err), zap.String("path", r.URL.Path))
	writeError(w, http.StatusInternalServerError, "Change saved, but the search cache could not be refreshed")
	return false
}
