package middleware

import (
	"patentgate/internal/core"
	"patentgate/internal/database/mongodb/model"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/pkg/response"
	"patentgate/internal/service"
	"patentgate/internal/telemetry"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RateLimit struct {
	trace            *telemetry.Trace
	metric           *telemetry.Metric
	rateLimitService *service.RateLimitService
	usageService     *service.UsageService
}

func NewRateLimit(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	rateLimitService *service.RateLimitService,
	usageService *service.UsageService,
) *RateLimit {
	return &RateLimit{
		trace:            trace,
		metric:           metric,
		rateLimitService: rateLimitService,
		usageService:     usageService,
	}
}

func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRateLimitMiddleware))
		// 從 APIKey middleware 放進 gin.Context 的資訊
		raw, ok := c.Get("partnerKey")
		if !ok {
			err := cErr.Unauthorized("missing or invalid API Key")
			response.AbortWithError(c, err)
			end(err)
			return
		}
		partnerKey, ok := raw.(*model.PartnerKey)
		if !ok {
			err := cErr.InternalServer("invalid partner key data")
			response.AbortWithError(c, err)
			end(err)
			return
		}

		verdict := middleware.rateLimitService.Admit(ctx, partnerKey)

		middleware.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
			KeyID:   partnerKey.ID.Hex(),
			Window:  string(verdict.Window),
			Limit:   verdict.Limit,
			Count:   verdict.Count,
			Blocked: !verdict.Allowed,
		})

		if !verdict.Allowed {
			// 寫入回應標頭，方便呼叫端與排錯
			c.Header("X-RateLimit-Limit", strconv.Itoa(verdict.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			retryAfter := int64(verdict.Window.TTL().Seconds())
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))

			if middleware.metric.RateLimitedTotal != nil {
				middleware.metric.RateLimitedTotal.WithLabelValues(string(verdict.Window)).Inc()
			}
			// 被擋下的請求也要入帳（結果數 0、費用 0），帳務才對得起流量
			middleware.usageService.Record(ctx, partnerKey, service.UsageEntry{
				Endpoint:    c.FullPath(),
				Method:      c.Request.Method,
				QueryParams: c.Request.URL.RawQuery,
				Status:      429,
				Latency:     requestLatency(c),
			})

			err := cErr.RateLimitExceeded("rate limit exceeded")
			response.AbortWithError(c, err)
			end(err)
			return
		}

		// 放行後才把兩個視窗各 +1
		middleware.rateLimitService.Record(ctx, partnerKey)
		end(nil)
		c.Next()
	}
}
