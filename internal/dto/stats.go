package dto

// 用量統計查詢的 query 參數
type UsageStatsQueryDto struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type UsageStatsResponseDto struct {
	KeyID         string             `json:"keyID"`
	From          string             `json:"from"`
	To            string             `json:"to"`
	TotalRequests int64              `json:"totalRequests"`
	TotalResults  int64              `json:"totalResults"`
	TotalCostUSD  float64            `json:"totalCostUSD"`
	AvgLatencyMs  float64            `json:"avgLatencyMs"`
	Endpoints     []EndpointUsageDto `json:"endpoints"`
	Daily         []DailyUsageDto    `json:"daily"` // 最近 7 天（UTC），舊到新
}

type EndpointUsageDto struct {
	Endpoint string `json:"endpoint"`
	Requests int64  `json:"requests"`
}

type DailyUsageDto struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Requests int64   `json:"requests"`
	CostUSD  float64 `json:"costUSD"`
}

// Admin 登入
type AdminLoginDto struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminTokenResponseDto struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Admin 儀表板摘要，counters 的 key 是去掉服務前綴的指標名
type AdminOverviewDto struct {
	Version       string             `json:"version"`
	UptimeSeconds int64              `json:"uptimeSeconds"`
	Counters      map[string]float64 `json:"counters"`
}
