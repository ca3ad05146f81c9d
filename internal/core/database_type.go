package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	Mongo DatabaseType = "mongo"
	Redis DatabaseType = "redis"
)

// Databases contains all supported database types
var Databases = []DatabaseType{Mongo, Redis}

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBPatentGate MongoDatabaseName = "patentgate"
)

// MongoDB collections
const (
	MongoCollectionPartnerKeys       MongoCollection = "partner_keys"
	MongoCollectionAPIUsage          MongoCollection = "api_usage"
	MongoCollectionPatentExpirations MongoCollection = "patent_expirations"
	MongoCollectionWebhookConfigs    MongoCollection = "webhook_configs"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyQueryCache RedisKey = "patent_query"    // 查詢結果快取
	RedisKeyPatentByID RedisKey = "patent_by_id"    // 單筆專利快取
	RedisKeyServerName RedisKey = "patentgate"      // 伺服器名稱
	RedisKeyBlacklist  RedisKey = "blacklist_token" // 黑名單 token（admin）
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdUsage    FluentdSubTag = "patentgate_usage_log"
	FluentdWebhook  FluentdSubTag = "webhook_delivery_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
