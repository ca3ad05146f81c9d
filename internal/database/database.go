package database

import (
	client "patentgate/internal/database/client"
	fluentdRepo "patentgate/internal/database/fluentd/repository"
	mongoRepo "patentgate/internal/database/mongodb/repository"
	redisRepo "patentgate/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
