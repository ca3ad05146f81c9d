package config

// TelemetryConfig 指標與追蹤各自獨立開關；
// 兩者都關閉時服務不需要任何 collector 也能跑。
type TelemetryConfig struct {
	Metric struct {
		Enabled bool `yaml:"enabled" mapstructure:"ENABLED" json:"enabled"`
		// 請求耗時 histogram 的分桶，空值用 prometheus 預設
		Buckets []float64 `yaml:"buckets" mapstructure:"BUCKETS" json:"buckets"`
	} `yaml:"metric" mapstructure:"METRIC" json:"metric"`
	Trace struct {
		Enabled bool `yaml:"enabled" mapstructure:"ENABLED" json:"enabled"`
		// OTLP HTTP exporter 端點
		EndpointUrl string `yaml:"endpointUrl" mapstructure:"ENDPOINT_URL" json:"endpointUrl"`
	} `yaml:"trace" mapstructure:"TRACE" json:"trace"`
}
