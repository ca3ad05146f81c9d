package config

type USPTO struct {
	// PatentsView 查詢端點
	PatentsViewURL string `mapstructure:"PATENTSVIEW_URL" json:"patentsviewUrl" yaml:"patentsviewUrl"`
	// Bulk Data 備援端點
	BulkDataURL string `mapstructure:"BULK_DATA_URL" json:"bulkDataUrl" yaml:"bulkDataUrl"`
	APIKey      string `mapstructure:"API_KEY" json:"apiKey" yaml:"apiKey"`
	// 單次上游請求逾時（秒）
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
}
