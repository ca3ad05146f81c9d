package config

// Fluentd 帳務與存取日誌的轉發目標。未設定 Host 時
// 日誌層自動降級為 no-op，不影響請求處理。
type Fluentd struct {
	Host string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port int    `mapstructure:"PORT" json:"port" yaml:"port"`
	// tag 前綴，預設 patentgate
	TagPrefix string `mapstructure:"TAG_PREFIX" json:"tagPrefix" yaml:"tagPrefix"`
	// 寫入逾時（毫秒）
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
}
