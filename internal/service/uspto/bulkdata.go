package uspto

import (
	"context"
	"net/http"

	"patentgate/config"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/telemetry"

	"go.uber.org/zap"
)

// BulkDataService 備援來源。PatentsView 掛掉時頂上，
// 目前只回空集合讓查詢優雅降級，不提供真正的 bulk 檔解析。
type BulkDataService struct {
	HTTPClient *http.Client
	trace      *telemetry.Trace
	logger     *zap.Logger
	baseURL    string
}

func NewBulkDataService(
	trace *telemetry.Trace,
	client *http.Client,
	conf *config.Configuration,
	logger *zap.Logger,
) *BulkDataService {
	return &BulkDataService{
		HTTPClient: client,
		trace:      trace,
		logger:     logger,
		baseURL:    conf.USPTO.BulkDataURL,
	}
}

func (s *BulkDataService) Name() string { return "bulkdata" }

// SearchByGrantDate 備援查詢。回空集合而不回錯誤：
// 呼叫端已經在主來源失敗後才走到這裡，寧可少資料也不要 502。
func (s *BulkDataService) SearchByGrantDate(ctx context.Context, query Query) ([]Patent, error) {
	_, _, end := s.trace.WithSpan(ctx, "bulkdata.search")
	defer end(nil)

	s.logger.Warn("bulk data fallback engaged, returning empty result set",
		zap.String("grantDateFrom", query.GrantDateFrom.Format(grantDateLayout)),
		zap.String("grantDateTo", query.GrantDateTo.Format(grantDateLayout)),
	)
	return []Patent{}, nil
}

// GetByID 備援來源不支援單筆查詢
func (s *BulkDataService) GetByID(ctx context.Context, patentID string) (*Patent, error) {
	_, _, end := s.trace.WithSpan(ctx, "bulkdata.get_by_id")
	defer end(nil)
	return nil, cErr.NotFound("patent not found in bulk data: " + patentID)
}
