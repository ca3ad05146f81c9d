package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UsageRecord struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`              // 用量紀錄唯一識別碼
	KeyID          primitive.ObjectID `json:"keyID" bson:"keyID"`                   // 所屬 partner key ID
	Endpoint       string             `json:"endpoint" bson:"endpoint"`             // 呼叫的端點路徑
	Method         string             `json:"method" bson:"method"`                 // HTTP method
	QueryParams    string             `json:"queryParams,omitempty" bson:"queryParams,omitempty"` // 原始 query string（對帳用）
	ResponseStatus int                `json:"responseStatus" bson:"responseStatus"` // HTTP 狀態碼
	ResultCount    int                `json:"resultCount" bson:"resultCount"`       // 回傳的項目數
	CostUSD        float64            `json:"costUSD" bson:"costUSD"`               // 本次計費金額（USD，兩位小數）
	LatencyMs      int64              `json:"latencyMs" bson:"latencyMs"`           // 請求處理耗時（毫秒）
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`           // 請求時間
}

// UsageStats 依 key 彙總後的帳務視圖
type UsageStats struct {
	TotalRequests int64   `json:"totalRequests" bson:"totalRequests"`
	TotalResults  int64   `json:"totalResults" bson:"totalResults"`
	TotalCostUSD  float64 `json:"totalCostUSD" bson:"totalCostUSD"`
	AvgLatencyMs  float64 `json:"avgLatencyMs" bson:"avgLatencyMs"`
}

// EndpointUsage 單一端點的請求量
type EndpointUsage struct {
	Endpoint string `json:"endpoint" bson:"_id"`
	Requests int64  `json:"requests" bson:"requests"`
}

// DailyUsage 以日為粒度的請求量與費用
type DailyUsage struct {
	Date     string  `json:"date" bson:"_id"` // YYYY-MM-DD（UTC）
	Requests int64   `json:"requests" bson:"requests"`
	CostUSD  float64 `json:"costUSD" bson:"costUSD"`
}
