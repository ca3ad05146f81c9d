package service

import (
	"net/http"
	"time"

	"patentgate/config"
	redisDb "patentgate/internal/database/redis/repository"
	"patentgate/internal/service/summarizer"
	"patentgate/internal/service/uspto"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	ProvideHTTPClient,
	ProvideCounterStore,
	ProvideQueryCache,
	uspto.NewPatentsViewService,
	uspto.NewBulkDataService,
	summarizer.NewGeminiService,
	NewEnrichmentService,
	NewExpirationService,
	NewPartnerKeyService,
	NewRateLimitService,
	NewUsageService,
	NewWebhookService,
	NewAdminService,
	NewHealthService,
)

// ProvideHTTPClient 共用的 outbound HTTP client
func ProvideHTTPClient(conf *config.Configuration) *http.Client {
	timeout := 30 * time.Second
	if conf.USPTO.Timeout > 0 {
		timeout = time.Duration(conf.USPTO.Timeout) * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// ProvideCounterStore Redis 限流計數器綁到介面
func ProvideCounterStore(repo *redisDb.RateLimiterRepository) CounterStore {
	return repo
}

// ProvideQueryCache Redis 查詢快取綁到介面
func ProvideQueryCache(repo *redisDb.QueryCacheRepository) QueryCache {
	return repo
}
