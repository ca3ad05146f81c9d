package config

type App struct {
	// 當前開發環境
	Env string `mapstructure:"ENV" json:"env" yaml:"env"`
	// 服務端口
	Port uint32 `mapstructure:"PORT" json:"port" yaml:"port"`
	// 服務名稱
	Name string `mapstructure:"NAME" json:"name" yaml:"name"`
	// 服務版本
	Version string `mapstructure:"VERSION" json:"version" yaml:"version"`
	// 新建 Partner Key 的預設限流設定
	DefaultRateLimitPerMinute int  `mapstructure:"DEFAULT_RATE_LIMIT_PER_MINUTE" json:"default_rate_limit_per_minute" yaml:"default_rate_limit_per_minute"`
	DefaultRateLimitPerDay    int  `mapstructure:"DEFAULT_RATE_LIMIT_PER_DAY" json:"default_rate_limit_per_day" yaml:"default_rate_limit_per_day"`
	DefaultBranding           bool `mapstructure:"DEFAULT_BRANDING" json:"default_branding" yaml:"default_branding"`

	SwaggerEnabled bool `mapstructure:"SWAGGER_ENABLED" json:"swagger_enabled" yaml:"swagger_enabled"`
}
