package repository

import (
	"context"
	"fmt"
	"time"

	"patentgate/internal/core"
	client "patentgate/internal/database/client"
	"patentgate/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PartnerKeyRepository struct {
	collection *mongo.Collection
}

func NewPartnerKeyRepository(mongoClient *client.MongoClient) *PartnerKeyRepository {
	repository := &PartnerKeyRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBPatentGate)).Collection(string(core.MongoCollectionPartnerKeys)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

// 建索引：
// 1) token 唯一（認證查表走這條）
// 2) 常用查詢加速：status、createdAt
func (repository *PartnerKeyRepository) ensureIndexes(contextValue context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetName("uniq_token").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_status"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_createdAt_desc"),
		},
	}

	_, returnedError := repository.collection.Indexes().CreateMany(contextValue, models)
	if returnedError != nil {
		// 索引已存在時不視為致命
		return nil
	}
	return nil
}

// Create 新增一筆 partner key
func (repository *PartnerKeyRepository) Create(contextValue context.Context, partnerKey *model.PartnerKey) (_ *model.PartnerKey, returnedError error) {
	nowUTC := time.Now().UTC()
	partnerKey.CreatedAt = nowUTC
	partnerKey.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, partnerKey)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	partnerKey.ID = objectID
	return partnerKey, nil
}

// GetByToken 依 API key 本體查找（認證用）
func (repository *PartnerKeyRepository) GetByToken(contextValue context.Context, token string) (_ *model.PartnerKey, returnedError error) {
	var partnerKey model.PartnerKey
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"token": token}).Decode(&partnerKey); returnedError != nil {
		return nil, returnedError
	}
	return &partnerKey, nil
}

// GetByID 依 ID 取得單一 partner key
func (repository *PartnerKeyRepository) GetByID(contextValue context.Context, keyIdentifier primitive.ObjectID) (_ *model.PartnerKey, returnedError error) {
	var partnerKey model.PartnerKey
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": keyIdentifier}).Decode(&partnerKey); returnedError != nil {
		return nil, returnedError
	}
	return &partnerKey, nil
}

// List 依條件查詢 partner key
func (repository *PartnerKeyRepository) List(contextValue context.Context, filter bson.M) (_ []*model.PartnerKey, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.PartnerKey
	for cursor.Next(contextValue) {
		var partnerKey model.PartnerKey
		if decodeError := cursor.Decode(&partnerKey); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &partnerKey)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// UpdateStatus 更新狀態（revoke 走這條）
func (repository *PartnerKeyRepository) UpdateStatus(contextValue context.Context, keyIdentifier primitive.ObjectID, status core.Status) (returnedError error) {
	update := bson.M{"$set": bson.M{"status": status}}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": keyIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateRateLimits 更新配額
func (repository *PartnerKeyRepository) UpdateRateLimits(contextValue context.Context, keyIdentifier primitive.ObjectID, perMinute, perDay int) (returnedError error) {
	update := bson.M{"$set": bson.M{
		"rateLimitPerMinute": perMinute,
		"rateLimitPerDay":    perDay,
	}}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": keyIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateLastUsedAt 更新最後使用時間
func (repository *PartnerKeyRepository) UpdateLastUsedAt(contextValue context.Context, keyIdentifier primitive.ObjectID, lastUsed time.Time) (returnedError error) {
	update := bson.M{"$set": bson.M{"lastUsedAt": lastUsed.UTC()}}
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": keyIdentifier}, withUpdatedAt(update))
	return returnedError
}

// DeleteByID 依 ID 刪除
func (repository *PartnerKeyRepository) DeleteByID(contextValue context.Context, keyIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": keyIdentifier})
	return returnedError
}
