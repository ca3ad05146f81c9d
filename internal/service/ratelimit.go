package service

import (
	"context"

	"patentgate/internal/core"
	"patentgate/internal/database/mongodb/model"
	"patentgate/internal/telemetry"

	"go.uber.org/zap"
)

// CounterStore 限流計數器的最小介面，測試時可注入假實作
type CounterStore interface {
	GetCount(ctx context.Context, token string, window core.RateWindow) (int, error)
	Incr(ctx context.Context, token string, window core.RateWindow) error
}

// Verdict 限流判定結果
type Verdict struct {
	Allowed bool
	Window  core.RateWindow // 被哪個視窗擋下（Allowed=false 時有值）
	Count   int             // 該視窗當下計數
	Limit   int             // 該視窗配額
}

// RateLimitService 固定視窗限流：先查兩個視窗計數，都沒超才放行，
// 放行後兩個視窗各 +1。查與加之間沒有原子性，尖峰時可能多放個位數請求，
// 這裡接受這個誤差換取簡單。計數器掛掉時 fail-open。
type RateLimitService struct {
	trace  *telemetry.Trace
	store  CounterStore
	logger *zap.Logger
}

func NewRateLimitService(
	trace *telemetry.Trace,
	store CounterStore,
	logger *zap.Logger,
) *RateLimitService {
	return &RateLimitService{
		trace:  trace,
		store:  store,
		logger: logger,
	}
}

// Admit 檢查兩個視窗是否都還有額度。不遞增計數，Record 才會。
func (s *RateLimitService) Admit(ctx context.Context, key *model.PartnerKey) Verdict {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	windows := []struct {
		window core.RateWindow
		limit  int
	}{
		{core.RateWindowMinute, key.RateLimitPerMinute},
		{core.RateWindowDay, key.RateLimitPerDay},
	}

	for _, w := range windows {
		count, err := s.store.GetCount(ctx, key.Token, w.window)
		if err != nil {
			// 計數器掛掉就放行：寧可短暫超賣也不要整個 API 跟著倒
			s.logger.Warn("rate limit store unavailable, failing open",
				zap.String("window", string(w.window)), zap.Error(err))
			s.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
				KeyID:     key.ID.Hex(),
				Window:    string(w.window),
				StoreDown: true,
			})
			return Verdict{Allowed: true}
		}
		if count >= w.limit {
			s.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
				KeyID:   key.ID.Hex(),
				Window:  string(w.window),
				Limit:   w.limit,
				Count:   count,
				Blocked: true,
			})
			return Verdict{Allowed: false, Window: w.window, Count: count, Limit: w.limit}
		}
	}
	return Verdict{Allowed: true}
}

// Record 放行後把兩個視窗各 +1。失敗僅記 log，不影響已放行的請求。
func (s *RateLimitService) Record(ctx context.Context, key *model.PartnerKey) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	for _, window := range []core.RateWindow{core.RateWindowMinute, core.RateWindowDay} {
		if err := s.store.Incr(ctx, key.Token, window); err != nil {
			s.logger.Warn("failed to increment rate limit counter",
				zap.String("window", string(window)), zap.Error(err))
		}
	}
}
