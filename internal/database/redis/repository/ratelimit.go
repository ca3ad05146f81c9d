package repository

import (
	"context"
	"fmt"

	"patentgate/internal/core"
	client "patentgate/internal/database/client"
	"patentgate/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type RateLimiterRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewRateLimiterRepository(trace *telemetry.Trace, client *client.RedisClient) *RateLimiterRepository {
	return &RateLimiterRepository{trace: trace, client: client.Client()}
}

// GetCount 讀取某視窗目前的計數；key 不存在視為 0。
func (repository *RateLimiterRepository) GetCount(
	contextValue context.Context,
	token string,
	window core.RateWindow,
) (currentCount int, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(token, window)
	value, getError := repository.client.Get(contextValue, redisKey).Int()
	if getError == redis.Nil {
		return 0, nil
	}
	if getError != nil {
		returnedError = getError
		return 0, returnedError
	}

	repository.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
		Window: string(window),
		Count:  value,
	})
	return value, nil
}

// Incr 視窗計數 +1。只有第一次遞增需要掛 TTL：之後的遞增不重設，
// 視窗因此是固定視窗而非滑動視窗。
func (repository *RateLimiterRepository) Incr(
	contextValue context.Context,
	token string,
	window core.RateWindow,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(token, window)
	newValue, incrError := repository.client.Incr(contextValue, redisKey).Result()
	if incrError != nil {
		returnedError = incrError
		return returnedError
	}
	if newValue == 1 {
		if expireError := repository.client.Expire(contextValue, redisKey, window.TTL()).Err(); expireError != nil {
			returnedError = expireError
			return returnedError
		}
	}

	repository.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
		Window: string(window),
		Count:  int(newValue),
	})
	return nil
}

// Reset 清掉指定 token 的所有視窗計數（管理用）
func (repository *RateLimiterRepository) Reset(
	contextValue context.Context,
	token string,
) (returnedError error) {

	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	keys := []string{
		repository.buildKey(token, core.RateWindowMinute),
		repository.buildKey(token, core.RateWindowDay),
	}
	returnedError = repository.client.Del(contextValue, keys...).Err()
	return returnedError
}

// buildKey 建構限流計數器的 Redis key
func (r *RateLimiterRepository) buildKey(token string, window core.RateWindow) string {
	return fmt.Sprintf("%s:%s:%s", core.RateLimitKeyPrefix, token, window)
}
