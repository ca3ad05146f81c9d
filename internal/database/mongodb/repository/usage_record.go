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

type UsageRecordRepository struct {
	collection *mongo.Collection
}

func NewUsageRecordRepository(mongoClient *client.MongoClient) *UsageRecordRepository {
	repository := &UsageRecordRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBPatentGate)).Collection(string(core.MongoCollectionAPIUsage)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

// 建索引：帳務查詢都是 keyID + 時間區間
func (repository *UsageRecordRepository) ensureIndexes(contextValue context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "keyID", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("idx_keyID_createdAt"),
		},
	}

	_, returnedError := repository.collection.Indexes().CreateMany(contextValue, models)
	if returnedError != nil {
		return nil
	}
	return nil
}

// Create 寫入一筆用量紀錄
func (repository *UsageRecordRepository) Create(contextValue context.Context, record *model.UsageRecord) (_ *model.UsageRecord, returnedError error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, record)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	record.ID = objectID
	return record, nil
}

// ListByKeyID 取得某 key 在時間區間內的用量紀錄
func (repository *UsageRecordRepository) ListByKeyID(contextValue context.Context, keyIdentifier primitive.ObjectID, from, to time.Time) (_ []*model.UsageRecord, returnedError error) {
	filter := bson.M{
		"keyID": keyIdentifier,
		"createdAt": bson.M{
			"$gte": from.UTC(),
			"$lte": to.UTC(),
		},
	}
	cursor, findError := repository.collection.Find(contextValue, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.UsageRecord
	for cursor.Next(contextValue) {
		var record model.UsageRecord
		if decodeError := cursor.Decode(&record); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &record)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// Aggregate 依 key 彙總請求數、項目數與費用
func (repository *UsageRecordRepository) Aggregate(contextValue context.Context, keyIdentifier primitive.ObjectID, from, to time.Time) (_ *model.UsageStats, returnedError error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"keyID": keyIdentifier,
			"createdAt": bson.M{
				"$gte": from.UTC(),
				"$lte": to.UTC(),
			},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalRequests": bson.M{"$sum": 1},
			"totalResults":  bson.M{"$sum": "$resultCount"},
			"totalCostUSD":  bson.M{"$sum": "$costUSD"},
			"avgLatencyMs":  bson.M{"$avg": "$latencyMs"},
		}}},
	}

	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	stats := &model.UsageStats{}
	if cursor.Next(contextValue) {
		if decodeError := cursor.Decode(stats); decodeError != nil {
			return nil, decodeError
		}
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return stats, nil
}

// AggregateByEndpoint 依端點彙總請求數（請求量由大到小）
func (repository *UsageRecordRepository) AggregateByEndpoint(contextValue context.Context, keyIdentifier primitive.ObjectID, from, to time.Time) (_ []model.EndpointUsage, returnedError error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"keyID": keyIdentifier,
			"createdAt": bson.M{
				"$gte": from.UTC(),
				"$lte": to.UTC(),
			},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$endpoint",
			"requests": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"requests": -1}}},
	}

	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var results []model.EndpointUsage
	for cursor.Next(contextValue) {
		var usage model.EndpointUsage
		if decodeError := cursor.Decode(&usage); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, usage)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// DailySeries 以日為粒度（UTC）的請求數與費用，日期舊到新
func (repository *UsageRecordRepository) DailySeries(contextValue context.Context, keyIdentifier primitive.ObjectID, from, to time.Time) (_ []model.DailyUsage, returnedError error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"keyID": keyIdentifier,
			"createdAt": bson.M{
				"$gte": from.UTC(),
				"$lte": to.UTC(),
			},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":      bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"requests": bson.M{"$sum": 1},
			"costUSD":  bson.M{"$sum": "$costUSD"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var results []model.DailyUsage
	for cursor.Next(contextValue) {
		var usage model.DailyUsage
		if decodeError := cursor.Decode(&usage); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, usage)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// DeleteAllByKeyID 刪除某 key 的所有用量紀錄（隨 key 刪除連帶清理）
func (repository *UsageRecordRepository) DeleteAllByKeyID(contextValue context.Context, keyIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteMany(contextValue, bson.M{"keyID": keyIdentifier})
	return returnedError
}
