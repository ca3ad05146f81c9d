package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"patentgate/internal/core"
	client "patentgate/internal/database/client"
	"patentgate/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type QueryCacheRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewQueryCacheRepository(trace *telemetry.Trace, client *client.RedisClient) *QueryCacheRepository {
	return &QueryCacheRepository{trace: trace, client: client.Client()}
}

// Get 讀取快取並反序列化到 dest。回傳 false 表示 miss。
func (repository *QueryCacheRepository) Get(
	contextValue context.Context,
	cacheKey string,
	dest any,
) (hit bool, returnedError error) {

	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	payload, getError := repository.client.Get(contextValue, repository.buildKey(cacheKey)).Bytes()
	if getError == redis.Nil {
		return false, nil
	}
	if getError != nil {
		returnedError = getError
		return false, returnedError
	}
	if unmarshalError := json.Unmarshal(payload, dest); unmarshalError != nil {
		returnedError = unmarshalError
		return false, returnedError
	}
	return true, nil
}

// Set 序列化後寫入快取並掛 TTL
func (repository *QueryCacheRepository) Set(
	contextValue context.Context,
	cacheKey string,
	value any,
	ttl time.Duration,
) (returnedError error) {

	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	payload, marshalError := json.Marshal(value)
	if marshalError != nil {
		returnedError = marshalError
		return returnedError
	}
	returnedError = repository.client.Set(contextValue, repository.buildKey(cacheKey), payload, ttl).Err()
	return returnedError
}

// Delete 移除一筆快取
func (repository *QueryCacheRepository) Delete(
	contextValue context.Context,
	cacheKey string,
) (returnedError error) {

	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	returnedError = repository.client.Del(contextValue, repository.buildKey(cacheKey)).Err()
	return returnedError
}

// buildKey 建構查詢快取的 Redis key
func (r *QueryCacheRepository) buildKey(cacheKey string) string {
	return fmt.Sprintf("%s:%s", core.RedisKeyQueryCache, cacheKey)
}
