package repository

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	partnerKeyRepo    *PartnerKeyRepository
	usageRecordRepo   *UsageRecordRepository
	patentRecordRepo  *PatentRecordRepository
	webhookConfigRepo *WebhookConfigRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	partnerKeyRepo *PartnerKeyRepository,
	usageRecordRepo *UsageRecordRepository,
	patentRecordRepo *PatentRecordRepository,
	webhookConfigRepo *WebhookConfigRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		partnerKeyRepo:    partnerKeyRepo,
		usageRecordRepo:   usageRecordRepo,
		patentRecordRepo:  patentRecordRepo,
		webhookConfigRepo: webhookConfigRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewPartnerKeyRepository,
	NewUsageRecordRepository,
	NewPatentRecordRepository,
	NewWebhookConfigRepository,
	NewMongoDBRepository)

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}
