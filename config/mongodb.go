package config

// MongoDB 連線設定。資料庫與 collection 名稱由程式內常數決定，
// 這裡只管怎麼連。
type MongoDB struct {
	URI string `mapstructure:"URI" json:"uri" yaml:"uri"`
	// 附加在 URI 後的 query options，例如 retryWrites=true
	Options string `mapstructure:"OPTIONS" json:"options" yaml:"options"`
}
