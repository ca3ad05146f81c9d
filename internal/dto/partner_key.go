package dto

import (
	"patentgate/internal/core"
	"time"
)

// 建立 Partner Key
type CreatePartnerKeyDto struct {
	PartnerName        string `json:"partnerName" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	RateLimitPerMinute *int   `json:"rateLimitPerMinute" binding:"omitempty,gt=0"` // 未提供時用預設值
	RateLimitPerDay    *int   `json:"rateLimitPerDay" binding:"omitempty,gt=0"`
	ExpiresInDays      *int   `json:"expiresInDays" binding:"omitempty,gt=0"`      // 未提供時 key 永久有效
	BrandingEnabled    *bool  `json:"brandingEnabled"`                             // 未提供時用全域預設
}

type PartnerKeyResponseDto struct {
	ID                 string      `json:"id"`
	Token              string      `json:"token,omitempty"` // 只在建立當下回傳一次
	PartnerName        string      `json:"partnerName"`
	Email              string      `json:"email"`
	RateLimitPerMinute int         `json:"rateLimitPerMinute"`
	RateLimitPerDay    int         `json:"rateLimitPerDay"`
	Status             core.Status `json:"status"`
	BrandingEnabled    bool        `json:"brandingEnabled"`
	ExpiresAt          *time.Time  `json:"expiresAt,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	LastUsedAt         *time.Time  `json:"lastUsedAt,omitempty"`
}

type UpdateRateLimitsDto struct {
	RateLimitPerMinute int `json:"rateLimitPerMinute" binding:"required,gt=0"`
	RateLimitPerDay    int `json:"rateLimitPerDay" binding:"required,gt=0"`
}
