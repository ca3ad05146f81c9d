package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"patentgate/config"
	"patentgate/internal/database/client"
	"patentgate/internal/database/fluentd/repository"
	"patentgate/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestResponseMiddleware(t *testing.T) *Response {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)

	conf := &config.Configuration{}
	conf.App.Name = "patentgate"

	// Fluentd host 留空 → 轉送靜默停用
	fluentdClient, err := client.NewFluentdClient(zap.NewNop(), conf)
	require.NoError(t, err)
	logRepo := repository.NewLogRepository(conf, fluentdClient)

	return NewResponse(zap.NewNop(), trace, telemetry.NewMetric(nil), conf, logRepo)
}

func TestFormatHandlerBrandingIsPerKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestResponseMiddleware(t)

	// brandingEnabled 由 APIKey middleware 依 partner key 的設定放進 context
	run := func(branding bool) *httptest.ResponseRecorder {
		router := gin.New()
		router.Use(m.FormatHandler())
		router.GET("/api/v1/demo", func(c *gin.Context) {
			c.Set("brandingEnabled", branding)
			c.Set("data", map[string]any{"ok": true})
		})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/demo", nil))
		return recorder
	}

	withBranding := run(true)
	assert.Equal(t, http.StatusOK, withBranding.Code)
	assert.Equal(t, "patentgate", withBranding.Header().Get("X-Powered-By"))

	withoutBranding := run(false)
	assert.Equal(t, http.StatusOK, withoutBranding.Code)
	assert.Empty(t, withoutBranding.Header().Get("X-Powered-By"))
}
