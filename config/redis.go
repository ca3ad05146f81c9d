package config

type Redis struct {
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
	// 區間查詢快取 TTL（秒）；0 代表內建預設 1h
	QueryCacheTTL int `mapstructure:"QUERY_CACHE_TTL" json:"queryCacheTTL" yaml:"queryCacheTTL"`
	// 單筆專利快取 TTL（秒）；0 代表內建預設 24h
	PatentCacheTTL int `mapstructure:"PATENT_CACHE_TTL" json:"patentCacheTTL" yaml:"patentCacheTTL"`
}
