package core

import "time"

// RateWindow 限流計數視窗
type RateWindow string

const (
	RateWindowMinute RateWindow = "minute"
	RateWindowDay    RateWindow = "day"
)

// TTL 視窗第一次遞增時設定的存活時間；之後的遞增不重設。
func (w RateWindow) TTL() time.Duration {
	if w == RateWindowDay {
		return 24 * time.Hour
	}
	return time.Minute
}

// RateLimitKeyPrefix 計數器 key 前綴：rate_limit:{token}:{window}
const RateLimitKeyPrefix = "rate_limit"

// 設定檔沒給配額時的內建預設
const (
	DefaultRateLimitPerMinute = 60
	DefaultRateLimitPerDay    = 10000
)
