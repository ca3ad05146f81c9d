package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	USPTO     USPTO           `mapstructure:"USPTO" json:"uspto" yaml:"uspto"`
	Gemini    Gemini          `mapstructure:"GEMINI" json:"gemini" yaml:"gemini"`
	Webhook   Webhook         `mapstructure:"WEBHOOK" json:"webhook" yaml:"webhook"`
	Billing   Billing         `mapstructure:"BILLING" json:"billing" yaml:"billing"`
	Admin     Admin           `mapstructure:"ADMIN" json:"admin" yaml:"admin"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
