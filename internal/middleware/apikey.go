package middleware

import (
	"fmt"
	"patentgate/internal/core"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/pkg/response"
	"patentgate/internal/service"
	"patentgate/internal/telemetry"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIKey struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	partnerKeyService *service.PartnerKeyService
}

func NewAPIKey(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	partnerKeyService *service.PartnerKeyService,
) *APIKey {
	return &APIKey{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		partnerKeyService: partnerKeyService,
	}
}

func (middleware *APIKey) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAPIKeyMiddleware))
		var cause error = nil
		token, from := middleware.readPartnerKey(c)
		meta := core.TraceAPIKeyMiddlewareMeta{
			Where:    from,
			ClientIP: c.ClientIP(),
		}

		if token == "" {
			meta.Status = "missing_api_key"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause = cErr.UnauthorizedApiKey("Missing API Key")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		// 驗證 partner key（格式、存在與狀態）
		partnerKey, err := middleware.partnerKeyService.Validate(ctx, token)
		if err != nil {
			meta.Status = "invalid_api_key"
			middleware.trace.ApplyTraceAttributes(span, meta)
			response.AbortWithError(c, cErr.UnauthorizedApiKey("Invalid API Key"))
			end(err)
			return
		}

		keyID := partnerKey.ID.Hex()
		meta.KeyID = keyID
		meta.Partner = partnerKey.PartnerName
		meta.Status = "success"
		middleware.trace.ApplyTraceAttributes(span, meta)

		// 記錄授權成功的日誌
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()
		middleware.logger.Info("[APIKey Authenticated]",
			zap.String("keyID", keyID),
			zap.String("partner", partnerKey.PartnerName),
			zap.String("from", from),
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)
		end(cause)

		// 最後使用時間為 best-effort，不阻斷請求
		middleware.partnerKeyService.UpdateLastUsed(ctx, partnerKey.ID)

		// 設定給下游（ratelimit、handler 會用到）
		c.Set("partnerKey", partnerKey)
		c.Set("partnerKeyID", keyID)
		c.Set("partnerName", partnerKey.PartnerName)
		c.Set("brandingEnabled", partnerKey.BrandingEnabled)
		c.Next()
	}
}

func (middleware *APIKey) readPartnerKey(c *gin.Context) (key string, from string) {
	// 1) Authorization: Bearer <partner_key>
	if auth := strings.TrimSpace(c.GetHeader("Authorization")); auth != "" {
		if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			tok := strings.TrimSpace(auth[len("Bearer "):])
			return tok, "bearer"
		}
	}

	// 2) X-API-Key
	if x := strings.TrimSpace(c.GetHeader("X-API-Key")); x != "" {
		return x, "x-api-key"
	}
	return "", ""
}
