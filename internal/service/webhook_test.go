package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"patentgate/config"
	"patentgate/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWebhookService(t *testing.T, conf *config.Configuration, sleeps *[]time.Duration) *WebhookService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	if conf == nil {
		conf = &config.Configuration{}
	}
	return &WebhookService{
		trace:      trace,
		metric:     telemetry.NewMetric(nil),
		httpClient: http.DefaultClient,
		config:     conf,
		logger:     zap.NewNop(),
		sleep: func(d time.Duration) {
			if sleeps != nil {
				*sleeps = append(*sleeps, d)
			}
		},
	}
}

func TestSign(t *testing.T) {
	body := []byte(`{"event":"patent.expired"}`)
	secret := "whsec_test_secret"

	signature := Sign(body, secret)
	require.True(t, strings.HasPrefix(signature, "sha256="))

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	assert.Equal(t, "sha256="+hex.EncodeToString(mac.Sum(nil)), signature)

	// 不同密鑰產生不同簽章
	assert.NotEqual(t, signature, Sign(body, "whsec_other"))
}

func TestSendDeliversOnFirstSuccess(t *testing.T) {
	var requests int
	var receivedBody []byte
	var receivedSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		receivedBody, _ = io.ReadAll(r.Body)
		receivedSignature = r.Header.Get(SignatureHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := newTestWebhookService(t, nil, nil)
	body := []byte(`{"event":"patent.expired","data":{"patentID":"7000001"}}`)
	secret := "whsec_test_secret"

	delivered, lastStatus, attempts := s.send(context.Background(), server.URL, body, Sign(body, secret))
	assert.True(t, delivered)
	assert.Equal(t, http.StatusOK, lastStatus)
	// 回報實際打出的次數，不是重試上限
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, requests)

	// 收端拿自己的密鑰對收到的 bytes 重算即可驗章
	assert.Equal(t, body, receivedBody)
	assert.Equal(t, Sign(receivedBody, secret), receivedSignature)
}

func TestSendRetriesWithExponentialBackoff(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	var sleeps []time.Duration
	s := newTestWebhookService(t, nil, &sleeps)
	body := []byte(`{}`)

	delivered, lastStatus, attempts := s.send(context.Background(), server.URL, body, Sign(body, "whsec_x"))
	assert.False(t, delivered)
	assert.Equal(t, http.StatusBadGateway, lastStatus)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, requests)
	// 5s → 10s，最後一次失敗後不再等
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second}, sleeps)
}

func TestSendHonorsConfiguredRetryPolicy(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	conf := &config.Configuration{}
	conf.Webhook.RetryAttempts = 2
	conf.Webhook.RetryDelay = 1

	var sleeps []time.Duration
	s := newTestWebhookService(t, conf, &sleeps)
	body := []byte(`{}`)

	delivered, _, attempts := s.send(context.Background(), server.URL, body, Sign(body, "whsec_x"))
	assert.False(t, delivered)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 2, requests)
	assert.Equal(t, []time.Duration{1 * time.Second}, sleeps)
}

func TestSendRecoversAfterFailedAttempt(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	var sleeps []time.Duration
	s := newTestWebhookService(t, nil, &sleeps)
	body := []byte(`{}`)

	delivered, lastStatus, attempts := s.send(context.Background(), server.URL, body, Sign(body, "whsec_x"))
	assert.True(t, delivered)
	assert.Equal(t, http.StatusNoContent, lastStatus)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 2, requests)
	assert.Equal(t, []time.Duration{5 * time.Second}, sleeps)
}

func TestSendSkipsSignatureWhenNoSecret(t *testing.T) {
	var signaturePresent bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, signaturePresent = r.Header[SignatureHeader]
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := newTestWebhookService(t, nil, nil)

	// 沒給 secret 的訂閱：投遞照常，但不帶簽章標頭
	delivered, _, _ := s.send(context.Background(), server.URL, []byte(`{}`), "")
	assert.True(t, delivered)
	assert.False(t, signaturePresent)
}
