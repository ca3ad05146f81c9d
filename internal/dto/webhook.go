package dto

import (
	"patentgate/internal/core"
	"time"
)

// 建立 Webhook 訂閱
type CreateWebhookDto struct {
	URL    string   `json:"url" binding:"required,url"`
	Secret string   `json:"secret" binding:"omitempty,min=16"`                    // 可不填，不填的訂閱投遞時不簽章
	Events []string `json:"events" binding:"omitempty,dive,oneof=patent.expired"` // 空集合代表訂閱全部事件
}

type UpdateWebhookDto struct {
	Active *bool `json:"active" binding:"required"`
}

type WebhookResponseDto struct {
	ID                 string              `json:"id"`
	URL                string              `json:"url"`
	Secret             string              `json:"secret,omitempty"` // 只在建立當下回傳一次
	Events             []string            `json:"events"`
	Active             bool                `json:"active"`
	CreatedAt          time.Time           `json:"createdAt"`
	LastDeliveryAt     *time.Time          `json:"lastDeliveryAt,omitempty"`
	LastDeliveryStatus core.DeliveryStatus `json:"lastDeliveryStatus,omitempty"`
}
