package model

import (
	"patentgate/internal/core"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WebhookConfig struct {
	ID                 primitive.ObjectID  `json:"id" bson:"_id,omitempty"`                                        // 訂閱唯一識別碼
	KeyID              primitive.ObjectID  `json:"keyID" bson:"keyID"`                                             // 所屬 partner key ID
	URL                string              `json:"url" bson:"url"`                                                 // 投遞目標
	Secret             string              `json:"-" bson:"secret"`                                                // HMAC 簽章密鑰，回應中不輸出
	Events             []string            `json:"events" bson:"events"`                                           // 訂閱的事件，如 patent.expired
	Active             bool                `json:"active" bson:"active"`                                           // 停用後不再投遞
	CreatedAt          time.Time           `json:"createdAt" bson:"createdAt"`                                     // 建立時間
	UpdatedAt          time.Time           `json:"updatedAt" bson:"updatedAt"`                                     // 更新時間
	LastDeliveryAt     *time.Time          `json:"lastDeliveryAt,omitempty" bson:"lastDeliveryAt,omitempty"`       // 最近一次投遞時間
	LastDeliveryStatus core.DeliveryStatus `json:"lastDeliveryStatus,omitempty" bson:"lastDeliveryStatus,omitempty"` // delivered / failed
}
