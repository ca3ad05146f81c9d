package model

import (
	"patentgate/internal/core"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PartnerKey struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`                          // Partner key 唯一識別碼
	Token              string             `json:"-" bson:"token"`                                   // API key 本體（pat_ 前綴），回應中不輸出
	PartnerName        string             `json:"partnerName" bson:"partnerName"`                   // 合作夥伴名稱
	Email              string             `json:"email" bson:"email"`                               // 聯絡信箱
	RateLimitPerMinute int                `json:"rateLimitPerMinute" bson:"rateLimitPerMinute"`     // 每分鐘配額
	RateLimitPerDay    int                `json:"rateLimitPerDay" bson:"rateLimitPerDay"`           // 每日配額
	Status             core.Status        `json:"status" bson:"status"`                             // active / revoked
	BrandingEnabled    bool               `json:"brandingEnabled" bson:"brandingEnabled"`           // 回應是否帶 X-Powered-By
	ExpiresAt          *time.Time         `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`   // 到期時間，nil 表示永久有效
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`                       // 建立時間
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`                       // 更新時間
	LastUsedAt         *time.Time         `json:"lastUsedAt,omitempty" bson:"lastUsedAt,omitempty"` // 最後使用時間
}

// Expired 回報 key 是否已過到期時間，未設定到期時間的 key 永不過期。
func (k *PartnerKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && !now.Before(*k.ExpiresAt)
}
