package router

import (
	"patentgate/internal/handler"
	"patentgate/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AdminRouter struct {
	authHandler       *handler.AdminAuthHandler
	partnerKeyHandler *handler.AdminPartnerKeyHandler
	adminMiddleware   *middleware.Admin
}

func NewAdminRouter(
	authHandler *handler.AdminAuthHandler,
	partnerKeyHandler *handler.AdminPartnerKeyHandler,
	adminMiddleware *middleware.Admin,
) *AdminRouter {
	return &AdminRouter{
		authHandler:       authHandler,
		partnerKeyHandler: partnerKeyHandler,
		adminMiddleware:   adminMiddleware,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.Engine) {
	// 登入不需要 JWT
	r.POST("/admin/login", ar.authHandler.Login)

	admin := r.Group("/admin")
	admin.Use(ar.adminMiddleware.Handler())
	{
		admin.GET("/overview", ar.authHandler.Overview)

		keys := admin.Group("/keys")
		keys.GET("", ar.partnerKeyHandler.List)
		keys.POST("", ar.partnerKeyHandler.Create)
		keys.GET("/:keyID", ar.partnerKeyHandler.Get)
		keys.PUT("/:keyID/limits", ar.partnerKeyHandler.UpdateRateLimits)
		keys.PATCH("/:keyID/revoke", ar.partnerKeyHandler.Revoke)
		keys.DELETE("/:keyID", ar.partnerKeyHandler.Delete)
	}
}
