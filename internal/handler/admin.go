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

type AdminAuthHandler struct {
	trace        *telemetry.Trace
	adminService *service.AdminService
}

func NewAdminAuthHandler(trace *telemetry.Trace, adminService *service.AdminService) *AdminAuthHandler {
	return &AdminAuthHandler{trace: trace, adminService: adminService}
}

// Login 管理員登入
// @Summary 管理員登入取得 JWT
// @Tags Admin-Auth
// @Accept json
// @Produce json
// @Param body body dto.AdminLoginDto true "帳號密碼"
// @Success 200 {object} dto.AdminTokenResponseDto
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminAuthHandler) Login(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.AdminLoginDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	token, err := h.adminService.Login(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, token)
}

// Overview 後台儀表板摘要
// @Summary 取得服務版本、uptime 與核心 counter 彙總
// @Tags Admin-Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AdminOverviewDto
// @Failure 500 {object} map[string]string
// @Router /admin/overview [get]
func (h *AdminAuthHandler) Overview(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	overview, err := h.adminService.Overview(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, overview)
}

type AdminPartnerKeyHandler struct {
	trace             *telemetry.Trace
	partnerKeyService *service.PartnerKeyService
}

func NewAdminPartnerKeyHandler(
	trace *telemetry.Trace,
	partnerKeyService *service.PartnerKeyService,
) *AdminPartnerKeyHandler {
	return &AdminPartnerKeyHandler{trace: trace, partnerKeyService: partnerKeyService}
}

// Create 發行 partner key
// @Summary 為合作夥伴發行一把 API key（token 只在這次回應出現）
// @Tags Admin-PartnerKey
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreatePartnerKeyDto true "合作夥伴資訊"
// @Success 201 {object} dto.PartnerKeyResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/keys [post]
func (h *AdminPartnerKeyHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreatePartnerKeyDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	created, err := h.partnerKeyService.Create(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, created)
}

// List partner key 列表
// @Summary 取得所有 partner key（不含 token）
// @Tags Admin-PartnerKey
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.PartnerKeyResponseDto
// @Failure 500 {object} map[string]string
// @Router /admin/keys [get]
func (h *AdminPartnerKeyHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	keys, err := h.partnerKeyService.List(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.InternalServer(err.Error()))
		return
	}
	response.Success(c, keys)
}

// Get 取得單一 partner key
// @Summary 取得單一 partner key 資訊（不含 token）
// @Tags Admin-PartnerKey
// @Security BearerAuth
// @Produce json
// @Param keyID path string true "Partner Key ID"
// @Success 200 {object} dto.PartnerKeyResponseDto
// @Failure 404 {object} map[string]string
// @Router /admin/keys/{keyID} [get]
func (h *AdminPartnerKeyHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	keyID, cause, respErr := validate.ParseObjectID(c, "keyID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	key, err := h.partnerKeyService.Get(ctx, keyID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, key)
}

// UpdateRateLimits 調整限流額度
// @Summary 調整 partner key 的分鐘 / 日限流額度
// @Tags Admin-PartnerKey
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param keyID path string true "Partner Key ID"
// @Param body body dto.UpdateRateLimitsDto true "限流額度"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/keys/{keyID}/limits [put]
func (h *AdminPartnerKeyHandler) UpdateRateLimits(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	keyID, cause, respErr := validate.ParseObjectID(c, "keyID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateRateLimitsDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.partnerKeyService.UpdateRateLimits(ctx, keyID, &req); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "rate limits updated"})
}

// Revoke 撤銷 partner key
// @Summary 撤銷 partner key（立即失效，可再刪除）
// @Tags Admin-PartnerKey
// @Security BearerAuth
// @Produce json
// @Param keyID path string true "Partner Key ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/keys/{keyID}/revoke [patch]
func (h *AdminPartnerKeyHandler) Revoke(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	keyID, cause, respErr := validate.ParseObjectID(c, "keyID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.partnerKeyService.Revoke(ctx, keyID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "key revoked"})
}

// Delete 刪除 partner key
// @Summary 刪除 partner key 與其 webhook、用量紀錄
// @Tags Admin-PartnerKey
// @Security BearerAuth
// @Produce json
// @Param keyID path string true "Partner Key ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/keys/{keyID} [delete]
func (h *AdminPartnerKeyHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	keyID, cause, respErr := validate.ParseObjectID(c, "keyID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.partnerKeyService.Delete(ctx, keyID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "key deleted"})
}
