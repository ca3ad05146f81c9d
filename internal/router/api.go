package router

import (
	"patentgate/internal/handler"
	"patentgate/internal/middleware"

	"github.com/gin-gonic/gin"
)

type APIRouter struct {
	authKeyHandler      *handler.AuthKeyHandler
	expirationHandler   *handler.ExpirationHandler
	usageStatsHandler   *handler.UsageStatsHandler
	webhookHandler      *handler.WebhookHandler
	apiKeyMiddleware    *middleware.APIKey
	ratelimitMiddleware *middleware.RateLimit
}

func NewAPIRouter(
	authKeyHandler *handler.AuthKeyHandler,
	expirationHandler *handler.ExpirationHandler,
	usageStatsHandler *handler.UsageStatsHandler,
	webhookHandler *handler.WebhookHandler,
	apiKeyMiddleware *middleware.APIKey,
	ratelimitMiddleware *middleware.RateLimit,
) *APIRouter {
	return &APIRouter{
		authKeyHandler:      authKeyHandler,
		expirationHandler:   expirationHandler,
		usageStatsHandler:   usageStatsHandler,
		webhookHandler:      webhookHandler,
		apiKeyMiddleware:    apiKeyMiddleware,
		ratelimitMiddleware: ratelimitMiddleware,
	}
}

func (apiRouter *APIRouter) RegisterRoutes(engine *gin.Engine) {
	// 申請 key 是唯一不用帶 key 的端點
	engine.POST("/api/v1/auth/keys", apiRouter.authKeyHandler.Create)

	router := engine.Group("/api/v1")
	router.Use(apiRouter.apiKeyMiddleware.Handler())
	router.Use(apiRouter.ratelimitMiddleware.Guard())

	router.DELETE("/auth/keys", apiRouter.authKeyHandler.RevokeOwn)

	patents := router.Group("/patents")
	{
		patents.GET("/expirations", apiRouter.expirationHandler.Query)
		patents.GET("/expirations/:patentID", apiRouter.expirationHandler.GetByID)
	}

	usage := router.Group("/usage")
	{
		usage.GET("/stats", apiRouter.usageStatsHandler.Stats)
	}

	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("", apiRouter.webhookHandler.Create)
		webhooks.GET("", apiRouter.webhookHandler.List)
		webhooks.PATCH("/:webhookID", apiRouter.webhookHandler.Update)
		webhooks.DELETE("/:webhookID", apiRouter.webhookHandler.Delete)
	}
}
