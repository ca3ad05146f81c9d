package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCors,
	NewLogger,
	NewRecovery,
	NewTraceEntry,
	NewAPIKey,
	NewRateLimit,
	NewAdmin,
	NewResponse,
)

// requestLatency 從 TraceEntry 放進 context 的起始時間換算耗時
func requestLatency(c *gin.Context) time.Duration {
	if raw, exists := c.Get("requestDuration"); exists {
		if startTime, ok := raw.(time.Time); ok {
			return time.Since(startTime)
		}
	}
	return 0
}
