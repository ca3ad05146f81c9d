package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patentgate/config"
	"patentgate/internal/dto"
	"patentgate/internal/service/summarizer"
	"patentgate/internal/service/uspto"
	"patentgate/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeQueryCache 以記憶體 map 模擬 Redis 查詢快取
type fakeQueryCache struct {
	store   map[string][]byte
	lastTTL time.Duration
	getErr  error
}

func newFakeQueryCache() *fakeQueryCache {
	return &fakeQueryCache{store: map[string][]byte{}}
}

func (f *fakeQueryCache) Get(ctx context.Context, cacheKey string, dest any) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}
	raw, ok := f.store[cacheKey]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeQueryCache) Set(ctx context.Context, cacheKey string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[cacheKey] = raw
	f.lastTTL = ttl
	return nil
}

func newTestExpirationService(t *testing.T, patentsViewURL string, cache QueryCache) *ExpirationService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	metric := telemetry.NewMetric(nil)

	conf := &config.Configuration{}
	conf.USPTO.PatentsViewURL = patentsViewURL

	primary := uspto.NewPatentsViewService(trace, http.DefaultClient, conf)
	fallback := uspto.NewBulkDataService(trace, http.DefaultClient, conf, zap.NewNop())
	enrichment := NewEnrichmentService(trace, summarizer.NewNoopService(), zap.NewNop())
	return NewExpirationService(trace, metric, primary, fallback, enrichment, cache, nil, conf, zap.NewNop())
}

func TestResolveWindow(t *testing.T) {
	s := newTestExpirationService(t, "", newFakeQueryCache())
	now := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("defaults to next 90 days", func(t *testing.T) {
		start, end, err := s.ResolveWindow(&dto.ExpirationQueryDto{}, now)
		require.NoError(t, err)
		assert.Equal(t, today, start)
		assert.Equal(t, today.AddDate(0, 0, 90), end)
	})

	t.Run("named range", func(t *testing.T) {
		start, end, err := s.ResolveWindow(&dto.ExpirationQueryDto{DateRange: "next_7_days"}, now)
		require.NoError(t, err)
		assert.Equal(t, today, start)
		assert.Equal(t, today.AddDate(0, 0, 7), end)
	})

	t.Run("unknown range rejected", func(t *testing.T) {
		_, _, err := s.ResolveWindow(&dto.ExpirationQueryDto{DateRange: "next_fortnight"}, now)
		require.Error(t, err)
	})

	t.Run("custom range", func(t *testing.T) {
		start, end, err := s.ResolveWindow(&dto.ExpirationQueryDto{
			DateRange: "custom",
			StartDate: "2026-06-01",
			EndDate:   "2026-06-30",
		}, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("custom requires both dates", func(t *testing.T) {
		_, _, err := s.ResolveWindow(&dto.ExpirationQueryDto{
			DateRange: "custom",
			StartDate: "2026-06-01",
		}, now)
		require.Error(t, err)
	})

	t.Run("custom end before start rejected", func(t *testing.T) {
		_, _, err := s.ResolveWindow(&dto.ExpirationQueryDto{
			DateRange: "custom",
			StartDate: "2026-06-30",
			EndDate:   "2026-06-01",
		}, now)
		require.Error(t, err)
	})
}

func TestResolveKeywords(t *testing.T) {
	s := newTestExpirationService(t, "", newFakeQueryCache())

	// industry 優先於 keywords
	keywords := s.ResolveKeywords(&dto.ExpirationQueryDto{Industry: "biotech", Keywords: "solar"})
	assert.Contains(t, keywords, "pharmaceutical")
	assert.NotContains(t, keywords, "solar")

	keywords = s.ResolveKeywords(&dto.ExpirationQueryDto{Keywords: " solar , battery ,, "})
	assert.Equal(t, []string{"solar", "battery"}, keywords)

	assert.Nil(t, s.ResolveKeywords(&dto.ExpirationQueryDto{}))
}

func TestCacheKey(t *testing.T) {
	s := newTestExpirationService(t, "", newFakeQueryCache())
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	// 關鍵字順序不影響 key
	assert.Equal(t,
		s.cacheKey(start, end, []string{"solar", "battery"}, 100, 0),
		s.cacheKey(start, end, []string{"battery", "solar"}, 100, 0),
	)
	assert.NotEqual(t,
		s.cacheKey(start, end, []string{"solar"}, 100, 0),
		s.cacheKey(start, end, []string{"solar"}, 50, 0),
	)
	assert.NotEqual(t,
		s.cacheKey(start, end, []string{"solar"}, 100, 0),
		s.cacheKey(start, end, []string{"solar"}, 100, 10),
	)
	assert.NotEqual(t,
		s.cacheKey(start, end, nil, 100, 0),
		s.cacheKey(start, end.AddDate(0, 0, 1), nil, 100, 0),
	)
}

func patentsViewFixture() string {
	return `{
		"error": false,
		"count": 2,
		"total_hits": 2,
		"patents": [
			{
				"patent_id": "7000001",
				"patent_title": "Solar battery pack",
				"patent_abstract": "A rechargeable battery charged by solar cells",
				"patent_date": "2006-06-15",
				"patent_type": "utility",
				"assignees": [{"assignee_organization": "Acme Energy Inc."}],
				"inventors": [{"inventor_last_name": "Doe", "inventor_first_name": "John"}]
			},
			{
				"patent_id": "7000002",
				"patent_title": "Improved umbrella",
				"patent_abstract": "An umbrella with a curved handle",
				"patent_date": "2006-06-20",
				"patent_type": "",
				"assignees": []
			}
		]
	}`
}

func TestQuery(t *testing.T) {
	var requests int
	var lastQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		lastQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(patentsViewFixture()))
	}))
	defer server.Close()

	cache := newFakeQueryCache()
	s := newTestExpirationService(t, server.URL, cache)

	query := &dto.ExpirationQueryDto{
		DateRange: "custom",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
		Keywords:  "solar",
		Limit:     5,
	}

	result, err := s.Query(context.Background(), query)
	require.NoError(t, err)
	require.Equal(t, 1, requests)

	// 到期視窗回推 20 年成授權日視窗
	assert.Contains(t, lastQuery, "2006-06-01")
	assert.Contains(t, lastQuery, "2006-06-30")
	assert.Contains(t, lastQuery, "solar")

	assert.Equal(t, "patentsview", result.Source)
	assert.False(t, result.CacheHit)
	assert.Equal(t, 2, result.TotalCount)
	require.Len(t, result.Results, 2)
	// 命中關鍵字的排前面
	assert.Equal(t, "7000001", result.Results[0].PatentID)
	assert.Equal(t, "Acme Energy Inc.", result.Results[0].AssigneeName)
	assert.Equal(t, "Doe, John", result.Results[0].Inventor)
	assert.Equal(t, "2026-06-15", result.Results[0].ExpirationDate)
	assert.Equal(t, "utility", result.Results[1].PatentType)

	// 第二次同參數查詢吃快取，不打上游
	cached, err := s.Query(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.True(t, cached.CacheHit)
	assert.Equal(t, "patentsview", cached.Source)
	assert.Equal(t, 2, cached.TotalCount)
}

func TestQueryAppliesOffsetAfterRanking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(patentsViewFixture()))
	}))
	defer server.Close()

	s := newTestExpirationService(t, server.URL, newFakeQueryCache())

	result, err := s.Query(context.Background(), &dto.ExpirationQueryDto{
		DateRange: "custom",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
		Keywords:  "solar",
		Limit:     5,
		Offset:    1,
	})
	require.NoError(t, err)

	// 排序後跳過第一筆，只剩沒命中關鍵字的那筆
	assert.Equal(t, 1, result.Offset)
	assert.Equal(t, 1, result.TotalCount)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "7000002", result.Results[0].PatentID)

	// offset 超出範圍回空集合
	empty, err := s.Query(context.Background(), &dto.ExpirationQueryDto{
		DateRange: "custom",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
		Limit:     5,
		Offset:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalCount)
	assert.Empty(t, empty.Results)
}

func TestQueryWindowEdgesAreInclusive(t *testing.T) {
	// 2004-01-01 授權 → 2024-01-01 到期
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"error": false,
			"count": 1,
			"total_hits": 1,
			"patents": [
				{
					"patent_id": "6700001",
					"patent_title": "Edge case widget",
					"patent_abstract": "A widget",
					"patent_date": "2004-01-01",
					"patent_type": "utility",
					"assignees": []
				}
			]
		}`))
	}))
	defer server.Close()

	t.Run("expiration on the window edge is included", func(t *testing.T) {
		s := newTestExpirationService(t, server.URL, newFakeQueryCache())
		result, err := s.Query(context.Background(), &dto.ExpirationQueryDto{
			DateRange: "custom",
			StartDate: "2024-01-01",
			EndDate:   "2024-01-01",
		})
		require.NoError(t, err)
		require.Len(t, result.Results, 1)
		assert.Equal(t, "2024-01-01", result.Results[0].ExpirationDate)
	})

	t.Run("expiration one day past the window is dropped", func(t *testing.T) {
		s := newTestExpirationService(t, server.URL, newFakeQueryCache())
		result, err := s.Query(context.Background(), &dto.ExpirationQueryDto{
			DateRange: "custom",
			StartDate: "2023-12-31",
			EndDate:   "2023-12-31",
		})
		require.NoError(t, err)
		assert.Empty(t, result.Results)
	})
}

func TestQueryFallsBackWhenPrimaryFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	s := newTestExpirationService(t, server.URL, newFakeQueryCache())

	result, err := s.Query(context.Background(), &dto.ExpirationQueryDto{
		DateRange: "custom",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
	})
	require.NoError(t, err)
	assert.Equal(t, "bulkdata", result.Source)
	assert.Equal(t, 0, result.TotalCount)
}

func TestQueryTreatsCacheErrorAsMiss(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(patentsViewFixture()))
	}))
	defer server.Close()

	cache := newFakeQueryCache()
	cache.getErr = errors.New("redis down")
	s := newTestExpirationService(t, server.URL, cache)

	result, err := s.Query(context.Background(), &dto.ExpirationQueryDto{
		DateRange: "custom",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.False(t, result.CacheHit)
	assert.Equal(t, "patentsview", result.Source)
}

func TestGetByIDCachesWithOwnTTL(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"error": false,
			"count": 1,
			"total_hits": 1,
			"patents": [
				{
					"patent_id": "7000001",
					"patent_title": "Solar battery pack",
					"patent_abstract": "A rechargeable battery charged by solar cells",
					"patent_date": "2006-06-15",
					"patent_type": "utility",
					"assignees": [{"assignee_organization": "Acme Energy Inc."}],
					"inventors": [{"inventor_last_name": "Doe", "inventor_first_name": "John"}]
				}
			]
		}`))
	}))
	defer server.Close()

	cache := newFakeQueryCache()
	s := newTestExpirationService(t, server.URL, cache)
	// 調短區間查詢 TTL 不該影響單筆快取
	s.config.Redis.QueryCacheTTL = 30

	result, err := s.GetByID(context.Background(), "7000001")
	require.NoError(t, err)
	assert.Equal(t, "7000001", result.PatentID)
	assert.Equal(t, "Doe, John", result.Inventor)
	assert.Equal(t, "2026-06-15", result.ExpirationDate)
	assert.Equal(t, 24*time.Hour, cache.lastTTL)

	// 單筆 TTL 有自己的設定
	s2 := newTestExpirationService(t, server.URL, newFakeQueryCache())
	s2.config.Redis.PatentCacheTTL = 600
	cache2, ok := s2.cache.(*fakeQueryCache)
	require.True(t, ok)
	_, err = s2.GetByID(context.Background(), "7000001")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cache2.lastTTL)

	// 第二次同號查詢吃快取，不打上游
	before := requests
	cached, err := s2.GetByID(context.Background(), "7000001")
	require.NoError(t, err)
	assert.Equal(t, before, requests)
	assert.Equal(t, "7000001", cached.PatentID)
}
