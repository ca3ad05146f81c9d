package core

// Status Partner key 的生命週期狀態
type Status string

const (
	StatusActive  Status = "active"  // 正常可用
	StatusRevoked Status = "revoked" // 被手動撤銷
	StatusDeleted Status = "deleted" // 已刪除（軟刪除）
)

// DeliveryStatus Webhook 投遞結果
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)
