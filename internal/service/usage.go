package service

import (
	"context"
	"errors"
	"math"
	"time"

	"patentgate/config"
	"patentgate/internal/core"
	fluentdModel "patentgate/internal/database/fluentd/model"
	fluentdRepo "patentgate/internal/database/fluentd/repository"
	"patentgate/internal/database/mongodb/model"
	mongoDb "patentgate/internal/database/mongodb/repository"
	"patentgate/internal/dto"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UsageService 計費帳本。每個通過認證的請求都要落一筆，
// 含被限流擋下的（status 429、cost 0），帳才對得起來。
type UsageService struct {
	trace     *telemetry.Trace
	metric    *telemetry.Metric
	usageRepo *mongoDb.UsageRecordRepository
	logRepo   *fluentdRepo.LogRepository
	config    *config.Configuration
	logger    *zap.Logger
}

func NewUsageService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	usageRepo *mongoDb.UsageRecordRepository,
	logRepo *fluentdRepo.LogRepository,
	config *config.Configuration,
	logger *zap.Logger,
) *UsageService {
	return &UsageService{
		trace:     trace,
		metric:    metric,
		usageRepo: usageRepo,
		logRepo:   logRepo,
		config:    config,
		logger:    logger,
	}
}

// Cost 每筆結果的計費：resultCount × 單價，四捨五入到小數兩位。
// 設定檔沒給單價時用內建預設，避免整條計費帳都算成 0。
func (s *UsageService) Cost(resultCount int) float64 {
	price := s.config.Billing.CostPerResult
	if price <= 0 {
		price = core.DefaultCostPerResult
	}
	return math.Round(float64(resultCount)*price*100) / 100
}

// UsageEntry 一次請求要入帳的內容
type UsageEntry struct {
	Endpoint    string
	Method      string
	QueryParams string
	Status      int
	ResultCount int
	Latency     time.Duration
}

// Record 落一筆用量。絕不回錯誤：計量失敗不應該砸掉已經成功的請求，
// 失敗時記 log 等人工對帳。
func (s *UsageService) Record(ctx context.Context, key *model.PartnerKey, entry UsageEntry) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanUsageWrite))
	defer end(nil)

	cost := s.Cost(entry.ResultCount)
	record := &model.UsageRecord{
		KeyID:          key.ID,
		Endpoint:       entry.Endpoint,
		Method:         entry.Method,
		QueryParams:    entry.QueryParams,
		ResponseStatus: entry.Status,
		ResultCount:    entry.ResultCount,
		CostUSD:        cost,
		LatencyMs:      entry.Latency.Milliseconds(),
		CreatedAt:      time.Now().UTC(),
	}

	s.trace.ApplyTraceAttributes(span, core.TraceUsageWriteMeta{
		KeyID:       key.ID.Hex(),
		Endpoint:    entry.Endpoint,
		ResultCount: entry.ResultCount,
		Cost:        cost,
	})

	if _, err := s.usageRepo.Create(ctx, record); err != nil {
		s.logger.Error("failed to persist usage record, billing data lost",
			zap.String("keyID", key.ID.Hex()),
			zap.String("endpoint", entry.Endpoint),
			zap.Float64("costUSD", cost),
			zap.Error(err),
		)
	}

	if s.metric.UsageCostTotal != nil {
		s.metric.UsageCostTotal.WithLabelValues(entry.Endpoint).Add(cost)
	}

	// 同步一份到 Fluentd 帳務流
	if err := s.logRepo.LogUsage(ctx, fluentdModel.APIUsageLog{
		KeyID:       key.ID.Hex(),
		PartnerName: key.PartnerName,
		ProjectName: s.config.App.Name,
		Endpoint:    entry.Endpoint,
		StatusCode:  entry.Status,
		ResultCount: entry.ResultCount,
		CostUSD:     cost,
		LatencyMs:   entry.Latency.Milliseconds(),
	}); err != nil {
		s.logger.Warn("failed to forward usage log to fluentd", zap.Error(err))
	}
}

// Stats 彙總某 key 在時間區間內的用量（partner 自查帳單用）
func (s *UsageService) Stats(ctx context.Context, keyID primitive.ObjectID, query *dto.UsageStatsQueryDto) (*dto.UsageStatsResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	to := time.Now().UTC()
	from := to.AddDate(0, -1, 0) // 預設近 30 天
	var parseError error
	if query.From != "" {
		if from, parseError = time.Parse("2006-01-02", query.From); parseError != nil {
			return nil, cErr.BadRequestParams("invalid from date")
		}
	}
	if query.To != "" {
		if to, parseError = time.Parse("2006-01-02", query.To); parseError != nil {
			return nil, cErr.BadRequestParams("invalid to date")
		}
		// 含當天整天
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return nil, cErr.BadRequestParams("to must not be before from")
	}

	stats, err := s.usageRepo.Aggregate(ctx, keyID, from, to)
	if err != nil && !errors.Is(err, context.Canceled) {
		return nil, cErr.DatabaseError("mongodb aggregate usage failed")
	}

	endpointStats, err := s.usageRepo.AggregateByEndpoint(ctx, keyID, from, to)
	if err != nil {
		return nil, cErr.DatabaseError("mongodb aggregate usage by endpoint failed")
	}
	endpoints := make([]dto.EndpointUsageDto, 0, len(endpointStats))
	for _, endpointStat := range endpointStats {
		endpoints = append(endpoints, dto.EndpointUsageDto{
			Endpoint: endpointStat.Endpoint,
			Requests: endpointStat.Requests,
		})
	}

	// 近 7 天的日線（與查詢區間無關，固定看最近一週）
	now := time.Now().UTC()
	weekAgo := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -6)
	dailyStats, err := s.usageRepo.DailySeries(ctx, keyID, weekAgo, now)
	if err != nil {
		return nil, cErr.DatabaseError("mongodb aggregate daily usage failed")
	}
	daily := make([]dto.DailyUsageDto, 0, len(dailyStats))
	for _, dayStat := range dailyStats {
		daily = append(daily, dto.DailyUsageDto{
			Date:     dayStat.Date,
			Requests: dayStat.Requests,
			CostUSD:  math.Round(dayStat.CostUSD*100) / 100,
		})
	}

	return &dto.UsageStatsResponseDto{
		KeyID:         keyID.Hex(),
		From:          from.Format("2006-01-02"),
		To:            to.Format("2006-01-02"),
		TotalRequests: stats.TotalRequests,
		TotalResults:  stats.TotalResults,
		TotalCostUSD:  math.Round(stats.TotalCostUSD*100) / 100,
		AvgLatencyMs:  math.Round(stats.AvgLatencyMs*100) / 100,
		Endpoints:     endpoints,
		Daily:         daily,
	}, nil
}
