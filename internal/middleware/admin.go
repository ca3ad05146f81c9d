package middleware

import (
	"patentgate/internal/core"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/pkg/response"
	"patentgate/internal/service"
	"patentgate/internal/telemetry"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Admin struct {
	logger       *zap.Logger
	trace        *telemetry.Trace
	adminService *service.AdminService
}

func NewAdmin(
	logger *zap.Logger,
	trace *telemetry.Trace,
	adminService *service.AdminService,
) *Admin {
	return &Admin{
		logger:       logger,
		trace:        trace,
		adminService: adminService,
	}
}

// Handler 驗證管理端的 Bearer JWT，通過後把 username 放進 context
func (middleware *Admin) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAdminMiddleware))

		auth := strings.TrimSpace(c.GetHeader("Authorization"))
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			middleware.trace.ApplyTraceAttributes(span, core.TraceAdminMiddlewareMeta{
				Status: "missing_bearer_token",
			})
			err := cErr.Unauthorized("missing bearer token")
			response.AbortWithError(c, err)
			end(err)
			return
		}
		tokenString := strings.TrimSpace(auth[len("Bearer "):])

		claims, err := middleware.adminService.VerifyToken(tokenString)
		if err != nil {
			middleware.trace.ApplyTraceAttributes(span, core.TraceAdminMiddlewareMeta{
				Status: "invalid_token",
			})
			response.AbortWithError(c, err)
			end(err)
			return
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceAdminMiddlewareMeta{
			Username: claims.Username,
			Status:   "success",
		})
		middleware.logger.Info("[Admin Authenticated]",
			zap.String("username", claims.Username),
		)
		c.Set("adminUsername", claims.Username)
		end(nil)
		c.Next()
	}
}
