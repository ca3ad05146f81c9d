package model

type APIUsageLog struct {
	// 身份/追蹤
	RequestID   string  `bson:"request_id,omitempty" json:"request_id"`
	KeyID       string  `bson:"key_id" json:"key_id"`
	PartnerName string  `bson:"partner_name,omitempty" json:"partner_name,omitempty"`
	ProjectName string  `bson:"project_name,omitempty" json:"project_name,omitempty"`
	Endpoint    string  `bson:"endpoint" json:"endpoint"`
	StatusCode  int     `bson:"status_code" json:"status_code"`
	ResultCount int     `bson:"result_count" json:"result_count"`
	CostUSD     float64 `bson:"cost_usd" json:"cost_usd"`
	LatencyMs   int64   `bson:"latency_ms" json:"latency_ms"`
	Version     string  `bson:"version" json:"version"`
	LoggedAt    string  `bson:"logged_at" json:"logged_at"`
}

type WebhookDeliveryLog struct {
	KeyID      string `bson:"key_id" json:"key_id"`
	URL        string `bson:"url" json:"url"`
	Event      string `bson:"event" json:"event"`
	Attempts   int    `bson:"attempts" json:"attempts"`
	StatusCode int    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Success    bool   `bson:"success" json:"success"`
	Version    string `bson:"version" json:"version"`
	LoggedAt   string `bson:"logged_at" json:"logged_at"`
}
