package config

type Webhook struct {
	// 最大嘗試次數（含第一次）
	RetryAttempts int `mapstructure:"RETRY_ATTEMPTS" json:"retryAttempts" yaml:"retryAttempts"`
	// 指數退避基準延遲（秒）：delay = base * 2^(attempt-1)
	RetryDelay int64 `mapstructure:"RETRY_DELAY" json:"retryDelay" yaml:"retryDelay"`
	// 單次投遞逾時（秒）
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
	// 掃描併發上限
	MaxConcurrency int `mapstructure:"MAX_CONCURRENCY" json:"maxConcurrency" yaml:"maxConcurrency"`
}
