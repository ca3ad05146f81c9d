package handler

import (
	"net/http"
	"time"

	"patentgate/internal/core"
	"patentgate/internal/database/mongodb/model"
	"patentgate/internal/dto"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/pkg/response"
	"patentgate/internal/service"
	"patentgate/internal/telemetry"
	"patentgate/utils/validate"

	"github.com/gin-gonic/gin"
)

type ExpirationHandler struct {
	trace             *telemetry.Trace
	expirationService *service.ExpirationService
	usageService      *service.UsageService
}

func NewExpirationHandler(
	trace *telemetry.Trace,
	expirationService *service.ExpirationService,
	usageService *service.UsageService,
) *ExpirationHandler {
	return &ExpirationHandler{
		trace:             trace,
		expirationService: expirationService,
		usageService:      usageService,
	}
}

// Query 查詢即將到期的專利
// @Summary 查詢指定區間內到期的專利，附帶摘要、分類與相關性分數
// @Tags Patents
// @Security ApiKeyAuth
// @Produce json
// @Param date_range query string false "區間代號：next_7_days / next_30_days / next_90_days / next_365_days / custom"
// @Param start_date query string false "自訂起日（YYYY-MM-DD，date_range=custom 時必填）"
// @Param end_date query string false "自訂迄日（YYYY-MM-DD，date_range=custom 時必填）"
// @Param industry query string false "產業別（biotech / electronics / software / medical / automotive）"
// @Param keywords query string false "逗號分隔關鍵字（industry 未提供時使用）"
// @Param limit query int false "回傳上限（預設 100，最大 1000）"
// @Param offset query int false "排序後跳過的筆數（預設 0）"
// @Success 200 {object} dto.ExpirationResponseDto
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/patents/expirations [get]
func (h *ExpirationHandler) Query(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	partnerKey := partnerKeyFromContext(c)
	if partnerKey == nil {
		response.AbortWithError(c, cErr.Unauthorized("missing partner key context"))
		return
	}

	var req dto.ExpirationQueryDto
	if err := c.ShouldBindQuery(&req); err != nil {
		end(err)
		response.AbortWithError(c, cErr.ValidateErr(validate.ValidationErrorResponse(c, &req, err)))
		return
	}
	if req.DateRange != "" && !validate.IsValidDateRange(req.DateRange) {
		err := cErr.InvalidDateRange("invalid date_range: " + req.DateRange)
		end(err)
		response.AbortWithError(c, err)
		return
	}

	result, err := h.expirationService.Query(ctx, &req)
	if err != nil {
		// 失敗的查詢也入帳（零結果、零費用），讓流量報表完整
		status := http.StatusInternalServerError
		if appErr, ok := err.(*cErr.Error); ok {
			status = appErr.HttpCode()
		}
		h.usageService.Record(ctx, partnerKey, usageEntryFor(c, status, 0))
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.trace.ApplyTraceAttributes(span, core.TraceExpirationQueryMeta{
		KeyID:       partnerKey.ID.Hex(),
		DateRange:   result.DateRange,
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		Industry:    result.Industry,
		Keywords:    len(result.Keywords),
		Source:      result.Source,
		CacheHit:    result.CacheHit,
		ResultCount: result.TotalCount,
	})

	// 成功查詢依回傳筆數計費
	h.usageService.Record(ctx, partnerKey, usageEntryFor(c, http.StatusOK, result.TotalCount))

	response.Success(c, result)
}

// GetByID 查詢單一專利的到期資訊
// @Summary 依專利號查到期日與濃縮欄位，結果快取 24 小時
// @Tags Patents
// @Security ApiKeyAuth
// @Produce json
// @Param patentID path string true "專利號"
// @Success 200 {object} dto.PatentDto
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /api/v1/patents/expirations/{patentID} [get]
func (h *ExpirationHandler) GetByID(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	partnerKey := partnerKeyFromContext(c)
	if partnerKey == nil {
		response.AbortWithError(c, cErr.Unauthorized("missing partner key context"))
		return
	}

	patentID := c.Param("patentID")
	if patentID == "" {
		response.AbortWithError(c, cErr.BadRequestParams("patentID is required"))
		return
	}

	result, err := h.expirationService.GetByID(ctx, patentID)
	if err != nil {
		status := http.StatusInternalServerError
		if appErr, ok := err.(*cErr.Error); ok {
			status = appErr.HttpCode()
		}
		h.usageService.Record(ctx, partnerKey, usageEntryFor(c, status, 0))
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.usageService.Record(ctx, partnerKey, usageEntryFor(c, http.StatusOK, 1))
	response.Success(c, result)
}

// usageEntryFor 從 gin context 組一筆帳務內容
func usageEntryFor(c *gin.Context, status, resultCount int) service.UsageEntry {
	var latency time.Duration
	if raw, exists := c.Get("requestDuration"); exists {
		if startTime, ok := raw.(time.Time); ok {
			latency = time.Since(startTime)
		}
	}
	return service.UsageEntry{
		Endpoint:    c.FullPath(),
		Method:      c.Request.Method,
		QueryParams: c.Request.URL.RawQuery,
		Status:      status,
		ResultCount: resultCount,
		Latency:     latency,
	}
}

// partnerKeyFromContext 取出 APIKey middleware 放進來的 partner key
func partnerKeyFromContext(c *gin.Context) *model.PartnerKey {
	raw, ok := c.Get("partnerKey")
	if !ok {
		return nil
	}
	partnerKey, ok := raw.(*model.PartnerKey)
	if !ok {
		return nil
	}
	return partnerKey
}
