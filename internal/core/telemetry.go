package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest         TraceSpanName = "http_request"
	SpanLoggerMiddleware    TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware  TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware      TraceSpanName = "cors_middleware"
	SpanResponseMiddleware  TraceSpanName = "response_middleware"
	SpanAPIKeyMiddleware    TraceSpanName = "api_key_middleware"
	SpanAdminMiddleware     TraceSpanName = "admin_middleware"
	SpanRateLimitMiddleware TraceSpanName = "ratelimit_middleware"
	SpanExpirationQuery     TraceSpanName = "expiration_query"
	SpanEnrichment          TraceSpanName = "enrichment"
	SpanWebhookDelivery     TraceSpanName = "webhook_delivery"
	SpanExpirationSweep     TraceSpanName = "expiration_sweep"
	SpanCacheRefresh        TraceSpanName = "cache_refresh"
	SpanUsageWrite          TraceSpanName = "usage_write"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal     MetricName = "requests_total"
	MetricHttpRequestDuration   MetricName = "request_duration_seconds"
	MetricRateLimitTotal        MetricName = "rate_limited_total"
	MetricUpstreamSuccessTotal  MetricName = "upstream_success_total"
	MetricUpstreamFailTotal     MetricName = "upstream_fail_total"
	MetricWebhookDeliveredTotal MetricName = "webhook_delivered_total"
	MetricWebhookFailedTotal    MetricName = "webhook_failed_total"
	MetricUsageCostTotal        MetricName = "usage_cost_total"
	MetricCacheHitTotal         MetricName = "query_cache_hit_total"
	MetricCacheMissTotal        MetricName = "query_cache_miss_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelSource   MetricLabelName = "source"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceAPIKeyMiddlewareMeta struct {
	Where    string `trace:"auth.where"`
	ClientIP string `trace:"net.peer.ip,omitempty"`
	KeyID    string `trace:"auth.key_id,omitempty"`
	Partner  string `trace:"auth.partner_name,omitempty"`
	Status   string `trace:"auth.status,omitempty"`
}

type TraceAdminMiddlewareMeta struct {
	Username string `trace:"auth.admin_username,omitempty"`
	Status   string `trace:"auth.status,omitempty"`
}

// 供 Redis 限流 Admit / Record 使用
type TraceRateLimitMeta struct {
	KeyID     string `trace:"rl.key_id"`
	Window    string `trace:"rl.window"`
	Limit     int    `trace:"rl.limit_count"`
	Count     int    `trace:"rl.count,omitempty"`
	Blocked   bool   `trace:"rl.blocked"`
	StoreDown bool   `trace:"rl.store_down,omitempty"`
}

// 供 Mongo 用量寫入使用
type TraceUsageWriteMeta struct {
	KeyID       string  `trace:"usage.key_id"`
	Endpoint    string  `trace:"usage.endpoint"`
	ResultCount int     `trace:"usage.result_count"`
	Cost        float64 `trace:"usage.cost_usd"`
	Error       *string `trace:"error,omitempty"`
}

type TraceExpirationQueryMeta struct {
	KeyID       string `trace:"query.key_id"`
	DateRange   string `trace:"query.date_range"`
	StartDate   string `trace:"query.start_date"`
	EndDate     string `trace:"query.end_date"`
	Industry    string `trace:"query.industry,omitempty"`
	Keywords    int    `trace:"query.keyword_count"`
	Source      string `trace:"query.source"`
	CacheHit    bool   `trace:"query.cache_hit"`
	ResultCount int    `trace:"result.count"`
}

type TraceWebhookDeliveryMeta struct {
	KeyID    string `trace:"webhook.key_id"`
	URL      string `trace:"webhook.url"`
	Event    string `trace:"webhook.event"`
	Attempts int    `trace:"webhook.attempts"`
	Status   int    `trace:"webhook.status_code,omitempty"`
	Success  bool   `trace:"webhook.success"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TraceRequestLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	Path        string `trace:"http.request.path"`
	Method      string `trace:"http.request.method"`
	ProjectName string `trace:"project.name"`
	Body        string `trace:"http.request.body,omitempty"`
	IPHash      string `trace:"http.request.net.peer.ip_hash"`
	UserAgent   string `trace:"http.request.user_agent"`
	Version     string `trace:"log.version"`
	RequestTS   string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}

type TraceResponseLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	ProjectName string `trace:"project.name"`
	Code        int    `trace:"http.response.code"`
	StatusCode  int    `trace:"http.response.status_code"`
	Body        string `trace:"http.response.body,omitempty"`
	Error       string `trace:"http.response.error_message,omitempty"`
	Version     string `trace:"log.version"`
	ResponseTS  string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}

type TraceUsageLogMeta struct {
	RequestID   string  `trace:"http.request.request_id"`
	KeyID       string  `trace:"partner.key_id"`
	PartnerName string  `trace:"partner.name,omitempty"`
	ProjectName string  `trace:"project.name"`
	Endpoint    string  `trace:"api.endpoint"`
	StatusCode  int     `trace:"api.status_code"`
	ResultCount int     `trace:"api.result_count"`
	CostUSD     float64 `trace:"api.cost_usd"`
	Version     string  `trace:"log.version"`
	LoggedAt    string  `trace:"http.logged_at"`
}
