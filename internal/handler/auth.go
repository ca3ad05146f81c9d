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

// AuthKeyHandler 合作夥伴自助申請 / 撤銷 API key。
// 與 AdminPartnerKeyHandler 走同一個 service，差別在這裡不需要管理員 JWT。
type AuthKeyHandler struct {
	trace             *telemetry.Trace
	partnerKeyService *service.PartnerKeyService
}

func NewAuthKeyHandler(
	trace *telemetry.Trace,
	partnerKeyService *service.PartnerKeyService,
) *AuthKeyHandler {
	return &AuthKeyHandler{trace: trace, partnerKeyService: partnerKeyService}
}

// Create 自助申請 API key
// @Summary 合作夥伴自助申請一把 API key（token 只在這次回應出現）
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.CreatePartnerKeyDto true "合作夥伴資訊"
// @Success 201 {object} dto.PartnerKeyResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/auth/keys [post]
func (h *AuthKeyHandler) Create(c *gin.Context) {
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

// RevokeOwn 撤銷自己手上這把 key
// @Summary 撤銷目前認證使用的 API key（立即失效）
// @Tags Auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/auth/keys [delete]
func (h *AuthKeyHandler) RevokeOwn(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	partnerKey := partnerKeyFromContext(c)
	if partnerKey == nil {
		response.AbortWithError(c, cErr.Unauthorized("missing partner key context"))
		return
	}

	if err := h.partnerKeyService.Revoke(ctx, partnerKey.ID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "key revoked"})
}
