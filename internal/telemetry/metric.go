package telemetry

import (
	"patentgate/config"
	"patentgate/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal     *prometheus.CounterVec
	HttpRequestDuration   *prometheus.HistogramVec
	RateLimitedTotal      *prometheus.CounterVec
	UpstreamSuccessTotal  *prometheus.CounterVec
	UpstreamFailTotal     *prometheus.CounterVec
	WebhookDeliveredTotal *prometheus.CounterVec
	WebhookFailedTotal    *prometheus.CounterVec
	UsageCostTotal        *prometheus.CounterVec
	CacheHitTotal         *prometheus.CounterVec
	CacheMissTotal        *prometheus.CounterVec
	config                *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		RateLimitedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricRateLimitTotal),
				Help: "Requests rejected by rate limiter",
			},
			labelNames(core.MetricLabelReason),
		),
		UpstreamSuccessTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricUpstreamSuccessTotal),
				Help: "Upstream patent source success count",
			},
			labelNames(core.MetricLabelSource),
		),
		UpstreamFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricUpstreamFailTotal),
				Help: "Upstream patent source failure count",
			},
			labelNames(core.MetricLabelSource, core.MetricLabelReason),
		),
		WebhookDeliveredTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricWebhookDeliveredTotal),
				Help: "Webhook deliveries acknowledged with 2xx",
			},
			labelNames(core.MetricLabelEndpoint),
		),
		WebhookFailedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricWebhookFailedTotal),
				Help: "Webhook deliveries exhausted all attempts",
			},
			labelNames(core.MetricLabelEndpoint),
		),
		UsageCostTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricUsageCostTotal),
				Help: "Accumulated billable cost (USD)",
			},
			labelNames(core.MetricLabelEndpoint),
		),
		CacheHitTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricCacheHitTotal),
				Help: "Patent query cache hits",
			},
			labelNames(core.MetricLabelEndpoint),
		),
		CacheMissTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricCacheMissTotal),
				Help: "Patent query cache misses",
			},
			labelNames(core.MetricLabelEndpoint),
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
