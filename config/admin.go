package config

type Admin struct {
	Username string `mapstructure:"USERNAME" json:"username" yaml:"username"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	// JWT 簽章密鑰與有效時數
	SecretKey       string `mapstructure:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
	TokenExpiryHour int    `mapstructure:"TOKEN_EXPIRY_HOUR" json:"token_expiry_hour" yaml:"token_expiry_hour"`
}
