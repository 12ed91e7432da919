package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
)

// UsageHandler exposes the usage tracker to the routes.
type UsageHandler struct {
	tracker *usage.Tracker
}

// NewUsageHandler wires the usage tracker.
func NewUsageHandler(tracker *usage.Tracker) *UsageHandler {
	return &UsageHandler{tracker: tracker}
}

// Snapshot returns a copy of the current usage statistics.
func (h *UsageHandler) Snapshot() usage.Snapshot {
	return h.tracker.Snapshot()
}

// Count returns a middleware that records one call of the operation before
// the route runs, whatever its outcome.
func (h *UsageHandler) Count(increment func(*usage.Tracker)) gin.HandlerFunc {
	return func(c *gin.Context) {
		increment(h.tracker)
		c.Next()
	}
}
