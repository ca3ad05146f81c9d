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

type WebhookConfigRepository struct {
	collection *mongo.Collection
}

func NewWebhookConfigRepository(mongoClient *client.MongoClient) *WebhookConfigRepository {
	repository := &WebhookConfigRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBPatentGate)).Collection(string(core.MongoCollectionWebhookConfigs)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

// 建索引：
// 1) keyID+url 唯一（同一 key 不重覆訂閱同一 URL）
// 2) active+events（sweep 撈訂閱者）
func (repository *WebhookConfigRepository) ensureIndexes(contextValue context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "keyID", Value: 1},
				{Key: "url", Value: 1},
			},
			Options: options.Index().SetName("uniq_keyID_url").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "active", Value: 1},
				{Key: "events", Value: 1},
			},
			Options: options.Index().SetName("idx_active_events"),
		},
	}

	_, returnedError := repository.collection.Indexes().CreateMany(contextValue, models)
	if returnedError != nil {
		return nil
	}
	return nil
}

// Create 新增一筆 webhook 訂閱
func (repository *WebhookConfigRepository) Create(contextValue context.Context, webhook *model.WebhookConfig) (_ *model.WebhookConfig, returnedError error) {
	nowUTC := time.Now().UTC()
	webhook.CreatedAt = nowUTC
	webhook.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, webhook)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	webhook.ID = objectID
	return webhook, nil
}

// GetByID 依 ID 取得單筆訂閱
func (repository *WebhookConfigRepository) GetByID(contextValue context.Context, webhookIdentifier primitive.ObjectID) (_ *model.WebhookConfig, returnedError error) {
	var webhook model.WebhookConfig
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": webhookIdentifier}).Decode(&webhook); returnedError != nil {
		return nil, returnedError
	}
	return &webhook, nil
}

// ListByKeyID 取得某 key 的所有訂閱
func (repository *WebhookConfigRepository) ListByKeyID(contextValue context.Context, keyIdentifier primitive.ObjectID) (_ []*model.WebhookConfig, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{"keyID": keyIdentifier})
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.WebhookConfig
	for cursor.Next(contextValue) {
		var webhook model.WebhookConfig
		if decodeError := cursor.Decode(&webhook); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &webhook)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// activeByEventFilter 啟用中且訂閱了該事件的條件。
// events 空集合（或未設）代表訂閱全部事件，也要撈進來。
func activeByEventFilter(event string) bson.M {
	return bson.M{
		"active": true,
		"$or": []bson.M{
			{"events": event},
			{"events": bson.M{"$size": 0}},
			{"events": nil},
		},
	}
}

// ListActiveByEvent 取得訂閱某事件且啟用中的所有訂閱（sweep 用）
func (repository *WebhookConfigRepository) ListActiveByEvent(contextValue context.Context, event string) (_ []*model.WebhookConfig, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, activeByEventFilter(event))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.WebhookConfig
	for cursor.Next(contextValue) {
		var webhook model.WebhookConfig
		if decodeError := cursor.Decode(&webhook); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &webhook)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// UpdateActive 啟用/停用訂閱
func (repository *WebhookConfigRepository) UpdateActive(contextValue context.Context, webhookIdentifier primitive.ObjectID, active bool) (returnedError error) {
	update := bson.M{"$set": bson.M{"active": active}}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": webhookIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateDeliveryResult 記錄最近一次投遞結果
func (repository *WebhookConfigRepository) UpdateDeliveryResult(contextValue context.Context, webhookIdentifier primitive.ObjectID, status core.DeliveryStatus, deliveredAt time.Time) (returnedError error) {
	update := bson.M{"$set": bson.M{
		"lastDeliveryAt":     deliveredAt.UTC(),
		"lastDeliveryStatus": status,
	}}
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": webhookIdentifier}, withUpdatedAt(update))
	return returnedError
}

// DeleteByID 依 ID 刪除
func (repository *WebhookConfigRepository) DeleteByID(contextValue context.Context, webhookIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": webhookIdentifier})
	return returnedError
}

// DeleteAllByKeyID 刪除某 key 的所有訂閱（隨 key 刪除連帶清理）
func (repository *WebhookConfigRepository) DeleteAllByKeyID(contextValue context.Context, keyIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteMany(contextValue, bson.M{"keyID": keyIdentifier})
	return returnedError
}
