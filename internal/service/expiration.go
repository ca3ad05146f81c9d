package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"patentgate/config"
	"patentgate/internal/core"
	"patentgate/internal/database/mongodb/model"
	mongoDb "patentgate/internal/database/mongodb/repository"
	"patentgate/internal/dto"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/service/uspto"
	"patentgate/internal/telemetry"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// QueryCache 查詢快取的最小介面，測試時可注入假實作
type QueryCache interface {
	Get(ctx context.Context, cacheKey string, dest any) (bool, error)
	Set(ctx context.Context, cacheKey string, value any, ttl time.Duration) error
}

// ExpirationService 到期查詢的調度者：
// 解析視窗 → 展開關鍵字 → 查快取 → 主來源 → 備援 → 濃縮 → 回寫快取。
type ExpirationService struct {
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	primary    *uspto.PatentsViewService
	fallback   *uspto.BulkDataService
	enrichment *EnrichmentService
	cache      QueryCache
	patentRepo *mongoDb.PatentRecordRepository
	config     *config.Configuration
	logger     *zap.Logger
}

func NewExpirationService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	primary *uspto.PatentsViewService,
	fallback *uspto.BulkDataService,
	enrichment *EnrichmentService,
	cache QueryCache,
	patentRepo *mongoDb.PatentRecordRepository,
	config *config.Configuration,
	logger *zap.Logger,
) *ExpirationService {
	return &ExpirationService{
		trace:      trace,
		metric:     metric,
		primary:    primary,
		fallback:   fallback,
		enrichment: enrichment,
		cache:      cache,
		patentRepo: patentRepo,
		config:     config,
		logger:     logger,
	}
}

// ResolveWindow 把 query 參數換算成到期日視窗。
// custom 必須同時帶 start_date 與 end_date，否則 400。
func (s *ExpirationService) ResolveWindow(query *dto.ExpirationQueryDto, now time.Time) (start, end time.Time, err error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	dateRange := core.DateRange(query.DateRange)
	if query.DateRange == "" {
		dateRange = core.DateRangeNext90Days
	}

	if days, ok := dateRange.DaysAhead(); ok {
		return today, today.AddDate(0, 0, days), nil
	}

	if dateRange != core.DateRangeCustom {
		return time.Time{}, time.Time{}, cErr.InvalidDateRange("unknown date_range: " + query.DateRange)
	}
	if query.StartDate == "" || query.EndDate == "" {
		return time.Time{}, time.Time{}, cErr.InvalidDateRange("custom range requires both start_date and end_date")
	}

	start, parseErr := time.Parse(dateLayout, query.StartDate)
	if parseErr != nil {
		return time.Time{}, time.Time{}, cErr.InvalidDateRange("invalid start_date")
	}
	end, parseErr = time.Parse(dateLayout, query.EndDate)
	if parseErr != nil {
		return time.Time{}, time.Time{}, cErr.InvalidDateRange("invalid end_date")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, cErr.InvalidDateRange("end_date must not be before start_date")
	}
	return start, end, nil
}

// ResolveKeywords industry 優先展開，否則用逗號分隔的 keywords
func (s *ExpirationService) ResolveKeywords(query *dto.ExpirationQueryDto) []string {
	if query.Industry != "" {
		return s.enrichment.ExpandIndustry(query.Industry)
	}
	if query.Keywords == "" {
		return nil
	}
	var keywords []string
	for _, keyword := range strings.Split(query.Keywords, ",") {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

// cacheKey 正規化參數後取 SHA-256，參數順序不影響 key
func (s *ExpirationService) cacheKey(start, end time.Time, keywords []string, limit, offset int) string {
	sorted := make([]string, len(keywords))
	copy(sorted, keywords)
	sort.Strings(sorted)

	h := sha256.New()
	h.Write([]byte(start.Format(dateLayout)))
	h.Write([]byte("|"))
	h.Write([]byte(end.Format(dateLayout)))
	h.Write([]byte("|"))
	h.Write([]byte(strings.Join(sorted, ",")))
	h.Write([]byte("|"))
	h.Write([]byte(strconv.Itoa(limit)))
	h.Write([]byte("|"))
	h.Write([]byte(strconv.Itoa(offset)))
	return hex.EncodeToString(h.Sum(nil))
}

// Query 到期查詢主流程
func (s *ExpirationService) Query(ctx context.Context, query *dto.ExpirationQueryDto) (*dto.ExpirationResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanExpirationQuery))
	defer end(nil)

	startDate, endDate, err := s.ResolveWindow(query, time.Now().UTC())
	if err != nil {
		end(err)
		return nil, err
	}
	keywords := s.ResolveKeywords(query)

	limit := query.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	response := &dto.ExpirationResponseDto{
		DateRange: string(core.DateRange(query.DateRange)),
		StartDate: startDate.Format(dateLayout),
		EndDate:   endDate.Format(dateLayout),
		Industry:  query.Industry,
		Keywords:  keywords,
		Offset:    offset,
	}
	if response.DateRange == "" {
		response.DateRange = string(core.DateRangeNext90Days)
	}

	traceMetadata := core.TraceExpirationQueryMeta{
		DateRange: response.DateRange,
		StartDate: response.StartDate,
		EndDate:   response.EndDate,
		Industry:  query.Industry,
		Keywords:  len(keywords),
	}

	// 1) 快取
	cacheKey := s.cacheKey(startDate, endDate, keywords, limit, offset)
	var cached dto.ExpirationResponseDto
	hit, cacheError := s.cache.Get(ctx, cacheKey, &cached)
	if cacheError != nil {
		// 快取壞掉當 miss 處理
		s.logger.Warn("query cache read failed", zap.Error(cacheError))
	}
	if hit {
		if s.metric.CacheHitTotal != nil {
			s.metric.CacheHitTotal.WithLabelValues("expirations").Inc()
		}
		cached.CacheHit = true
		traceMetadata.CacheHit = true
		traceMetadata.Source = cached.Source
		traceMetadata.ResultCount = cached.TotalCount
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		return &cached, nil
	}
	if s.metric.CacheMissTotal != nil {
		s.metric.CacheMissTotal.WithLabelValues("expirations").Inc()
	}

	// 2) 主來源：到期視窗回推 20 年成授權日視窗。
	// 上游只支援 size 不支援 offset，所以多抓 offset 筆、排序後本地切頁。
	upstreamLimit := limit + offset
	if upstreamLimit > 1000 {
		upstreamLimit = 1000
	}
	upstreamQuery := uspto.Query{
		GrantDateFrom: startDate.AddDate(-core.PatentTermYears, 0, 0),
		GrantDateTo:   endDate.AddDate(-core.PatentTermYears, 0, 0),
		Keywords:      keywords,
		Limit:         upstreamLimit,
	}

	source := s.primary.Name()
	patents, upstreamError := s.primary.SearchByGrantDate(ctx, upstreamQuery)
	if upstreamError != nil {
		if s.metric.UpstreamFailTotal != nil {
			s.metric.UpstreamFailTotal.WithLabelValues(s.primary.Name(), "request").Inc()
		}
		s.logger.Warn("primary patent source failed, trying fallback", zap.Error(upstreamError))

		source = s.fallback.Name()
		patents, upstreamError = s.fallback.SearchByGrantDate(ctx, upstreamQuery)
		if upstreamError != nil {
			if s.metric.UpstreamFailTotal != nil {
				s.metric.UpstreamFailTotal.WithLabelValues(s.fallback.Name(), "request").Inc()
			}
			end(upstreamError)
			return nil, cErr.From(upstreamError)
		}
	}
	if s.metric.UpstreamSuccessTotal != nil {
		s.metric.UpstreamSuccessTotal.WithLabelValues(source).Inc()
	}

	// 3) 保險絲：只留到期日真的落在查詢視窗內的
	filtered := patents[:0]
	for _, patent := range patents {
		expiration := patent.GrantDate.AddDate(core.PatentTermYears, 0, 0)
		if expiration.Before(startDate) || expiration.After(endDate) {
			continue
		}
		filtered = append(filtered, patent)
	}

	// 4) 濃縮 + 評分排序，之後才套 offset 切頁
	enriched := s.enrichment.Enrich(ctx, filtered, keywords)
	if offset >= len(enriched) {
		enriched = []dto.PatentDto{}
	} else {
		upper := offset + limit
		if upper > len(enriched) {
			upper = len(enriched)
		}
		enriched = enriched[offset:upper]
	}
	response.Results = enriched
	response.Source = source
	response.TotalCount = len(response.Results)

	traceMetadata.Source = source
	traceMetadata.ResultCount = response.TotalCount
	s.trace.ApplyTraceAttributes(span, traceMetadata)

	// 5) 回寫快取
	ttl := time.Hour
	if s.config.Redis.QueryCacheTTL > 0 {
		ttl = time.Duration(s.config.Redis.QueryCacheTTL) * time.Second
	}
	if cacheError := s.cache.Set(ctx, cacheKey, response, ttl); cacheError != nil {
		s.logger.Warn("query cache write failed", zap.Error(cacheError))
	}

	return response, nil
}

// GetByID 依專利號查單筆到期資訊。單筆查詢快取 24 小時：
// 專利授權後欄位幾乎不變，比區間查詢放得更久。
func (s *ExpirationService) GetByID(ctx context.Context, patentID string) (*dto.PatentDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanExpirationQuery))
	defer end(nil)

	cacheKey := "patent:" + patentID
	var cached dto.PatentDto
	hit, cacheError := s.cache.Get(ctx, cacheKey, &cached)
	if cacheError != nil {
		s.logger.Warn("patent cache read failed", zap.Error(cacheError))
	}
	if hit {
		if s.metric.CacheHitTotal != nil {
			s.metric.CacheHitTotal.WithLabelValues("patent_by_id").Inc()
		}
		s.trace.ApplyTraceAttributes(span, core.TraceExpirationQueryMeta{CacheHit: true, ResultCount: 1})
		return &cached, nil
	}
	if s.metric.CacheMissTotal != nil {
		s.metric.CacheMissTotal.WithLabelValues("patent_by_id").Inc()
	}

	patent, err := s.primary.GetByID(ctx, patentID)
	if err != nil {
		if s.metric.UpstreamFailTotal != nil {
			s.metric.UpstreamFailTotal.WithLabelValues(s.primary.Name(), "request").Inc()
		}
		s.logger.Warn("primary patent source failed, trying fallback",
			zap.String("patentID", patentID), zap.Error(err))

		patent, err = s.fallback.GetByID(ctx, patentID)
		if err != nil {
			end(err)
			return nil, cErr.From(err)
		}
	}

	enriched := s.enrichment.Enrich(ctx, []uspto.Patent{*patent}, nil)
	if len(enriched) == 0 {
		return nil, cErr.NotFound("patent not found: " + patentID)
	}
	result := enriched[0]

	ttl := 24 * time.Hour
	if s.config.Redis.PatentCacheTTL > 0 {
		ttl = time.Duration(s.config.Redis.PatentCacheTTL) * time.Second
	}
	if cacheError := s.cache.Set(ctx, cacheKey, &result, ttl); cacheError != nil {
		s.logger.Warn("patent cache write failed", zap.Error(cacheError))
	}
	return &result, nil
}

// RefreshStore 每日排程：抓未來 90 天內到期的專利寫進 Mongo，
// 供 sweep 與離線報表使用。
func (s *ExpirationService) RefreshStore(ctx context.Context) error {
	ctx, _, end := s.trace.WithSpan(ctx, string(core.SpanCacheRefresh))
	defer end(nil)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	endDate := today.AddDate(0, 0, 90)

	patents, err := s.primary.SearchByGrantDate(ctx, uspto.Query{
		GrantDateFrom: today.AddDate(-core.PatentTermYears, 0, 0),
		GrantDateTo:   endDate.AddDate(-core.PatentTermYears, 0, 0),
		Limit:         1000,
	})
	if err != nil {
		end(err)
		return err
	}

	stored := 0
	for _, patent := range patents {
		patentType := patent.PatentType
		if patentType == "" {
			patentType = core.PatentTypeUtility
		}
		record := &model.PatentRecord{
			PatentID:       patent.PatentID,
			Title:          patent.Title,
			Abstract:       patent.Abstract,
			AssigneeName:   patent.AssigneeName,
			Inventor:       patent.Inventor,
			PatentType:     patentType,
			GrantDate:      patent.GrantDate,
			ExpirationDate: patent.GrantDate.AddDate(core.PatentTermYears, 0, 0),
			TechnologyArea: s.enrichment.Classify(patent.Title, patent.Abstract),
		}
		if upsertError := s.patentRepo.Upsert(ctx, record); upsertError != nil {
			s.logger.Warn("failed to upsert patent record",
				zap.String("patentID", patent.PatentID), zap.Error(upsertError))
			continue
		}
		stored++
	}

	s.logger.Info("expiration store refreshed",
		zap.Int("fetched", len(patents)),
		zap.Int("stored", stored),
	)
	return nil
}
