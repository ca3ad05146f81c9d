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

type WebhookHandler struct {
	trace          *telemetry.Trace
	webhookService *service.WebhookService
}

func NewWebhookHandler(
	trace *telemetry.Trace,
	webhookService *service.WebhookService,
) *WebhookHandler {
	return &WebhookHandler{trace: trace, webhookService: webhookService}
}

// Create 註冊 webhook
// @Summary 為認證 key 註冊一個 webhook 端點
// @Tags Webhooks
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateWebhookDto true "Webhook 設定"
// @Success 201 {object} dto.WebhookResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/webhooks [post]
func (h *WebhookHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	partnerKey := partnerKeyFromContext(c)
	if partnerKey == nil {
		response.AbortWithError(c, cErr.Unauthorized("missing partner key context"))
		return
	}

	var req dto.CreateWebhookDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	created, err := h.webhookService.Create(ctx, partnerKey.ID, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, created)
}

// List 列出自己的 webhook
// @Summary 列出認證 key 註冊的所有 webhook
// @Tags Webhooks
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.WebhookResponseDto
// @Router /api/v1/webhooks [get]
func (h *WebhookHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	partnerKey := partnerKeyFromContext(c)
	if partnerKey == nil {
		response.AbortWithError(c, cErr.Unauthorized("missing partner key context"))
		return
	}

	webhooks, err := h.webhookService.List(ctx, partnerKey.ID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, webhooks)
}

// Update 啟用 / 停用 webhook
// @Summary 切換 webhook 的啟用狀態
// @Tags Webhooks
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param webhookID path string true "Webhook ID"
// @Param body body dto.UpdateWebhookDto true "啟用狀態"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/webhooks/{webhookID} [patch]
func (h *WebhookHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	partnerKey := partnerKeyFromContext(c)
	if partnerKey == nil {
		response.AbortWithError(c, cErr.Unauthorized("missing partner key context"))
		return
	}

	webhookID, cause, respErr := validate.ParseObjectID(c, "webhookID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateWebhookDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.webhookService.Update(ctx, partnerKey.ID, webhookID, &req); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "webhook updated"})
}

// Delete 移除 webhook
// @Summary 移除認證 key 的 webhook
// @Tags Webhooks
// @Security ApiKeyAuth
// @Produce json
// @Param webhookID path string true "Webhook ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/webhooks/{webhookID} [delete]
func (h *WebhookHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	partnerKey := partnerKeyFromContext(c)
	if partnerKey == nil {
		response.AbortWithError(c, cErr.Unauthorized("missing partner key context"))
		return
	}

	webhookID, cause, respErr := validate.ParseObjectID(c, "webhookID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.webhookService.Delete(ctx, partnerKey.ID, webhookID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "webhook deleted"})
}
