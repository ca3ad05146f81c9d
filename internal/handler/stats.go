package handler

import (
	"patentgate/internal/dto"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/pkg/response"
	"patentgate/internal/service"
	"patentgate/internal/telemetry"
	"patentgate/utils/validate"

	"github.com/gin-gonic/gin"
)

type UsageStatsHandler struct {
	trace        *telemetry.Trace
	usageService *service.UsageService
}

func NewUsageStatsHandler(
	trace *telemetry.Trace,
	usageService *service.UsageService,
) *UsageStatsHandler {
	return &UsageStatsHandler{trace: trace, usageService: usageService}
}

// Stats 取得自己的用量統計
// @Summary 查詢認證 key 在指定期間的請求數、結果數與累計費用
// @Tags Usage
// @Security ApiKeyAuth
// @Produce json
// @Param from query string false "起日（YYYY-MM-DD，預設為迄日往前一個月）"
// @Param to query string false "迄日（YYYY-MM-DD，預設為今天）"
// @Success 200 {object} dto.UsageStatsResponseDto
// @Failure 400 {object} map[string]string
// @Router /api/v1/usage/stats [get]
func (h *UsageStatsHandler) Stats(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	partnerKey := partnerKeyFromContext(c)
	if partnerKey == nil {
		response.AbortWithError(c, cErr.Unauthorized("missing partner key context"))
		return
	}

	var req dto.UsageStatsQueryDto
	if err := c.ShouldBindQuery(&req); err != nil {
		end(err)
		response.AbortWithError(c, cErr.ValidateErr(validate.ValidationErrorResponse(c, &req, err)))
		return
	}

	stats, err := h.usageService.Stats(ctx, partnerKey.ID, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, stats)
}
