package config

type Gemini struct {
	// 留空代表停用 AI 摘要（啟動時改掛 Noop 實作）
	APIKey string `mapstructure:"API_KEY" json:"apiKey" yaml:"apiKey"`
	Model  string `mapstructure:"MODEL" json:"model" yaml:"model"`
	// 單次摘要請求逾時（秒）
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
}
