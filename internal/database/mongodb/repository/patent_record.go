package repository

import (
	"context"
	"time"

	"patentgate/internal/core"
	client "patentgate/internal/database/client"
	"patentgate/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatentRecordRepository struct {
	collection *mongo.Collection
}

func NewPatentRecordRepository(mongoClient *client.MongoClient) *PatentRecordRepository {
	repository := &PatentRecordRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBPatentGate)).Collection(string(core.MongoCollectionPatentExpirations)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

// 建索引：
// 1) patentID 唯一（daily refresh 走 upsert）
// 2) expirationDate（sweep 的視窗掃描）
func (repository *PatentRecordRepository) ensureIndexes(contextValue context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "patentID", Value: 1}},
			Options: options.Index().SetName("uniq_patentID").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expirationDate", Value: 1}},
			Options: options.Index().SetName("idx_expirationDate"),
		},
	}

	_, returnedError := repository.collection.Indexes().CreateMany(contextValue, models)
	if returnedError != nil {
		return nil
	}
	return nil
}

// Upsert 以 patentID 為準寫入或覆蓋一筆專利
func (repository *PatentRecordRepository) Upsert(contextValue context.Context, record *model.PatentRecord) (returnedError error) {
	record.RefreshedAt = time.Now().UTC()

	filter := bson.M{"patentID": record.PatentID}
	update := bson.M{"$set": bson.M{
		"title":          record.Title,
		"abstract":       record.Abstract,
		"assigneeName":   record.AssigneeName,
		"patentType":     record.PatentType,
		"grantDate":      record.GrantDate.UTC(),
		"expirationDate": record.ExpirationDate.UTC(),
		"technologyArea": record.TechnologyArea,
		"summary":        record.Summary,
		"refreshedAt":    record.RefreshedAt,
	}}
	opts := options.Update().SetUpsert(true)

	_, returnedError = repository.collection.UpdateOne(contextValue, filter, update, opts)
	return returnedError
}

// ListExpiringBetween 取視窗內到期的專利（sweep 用）
func (repository *PatentRecordRepository) ListExpiringBetween(contextValue context.Context, from, to time.Time) (_ []*model.PatentRecord, returnedError error) {
	filter := bson.M{
		"expirationDate": bson.M{
			"$gte": from.UTC(),
			"$lte": to.UTC(),
		},
	}
	cursor, findError := repository.collection.Find(contextValue, filter, options.Find().SetSort(bson.D{{Key: "expirationDate", Value: 1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.PatentRecord
	for cursor.Next(contextValue) {
		var record model.PatentRecord
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

// GetByPatentID 依專利號取得單筆
func (repository *PatentRecordRepository) GetByPatentID(contextValue context.Context, patentID string) (_ *model.PatentRecord, returnedError error) {
	var record model.PatentRecord
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"patentID": patentID}).Decode(&record); returnedError != nil {
		return nil, returnedError
	}
	return &record, nil
}

// MarkNotified 標記通知已送出。at-least-once 語意：標記失敗下一輪會重送。
func (repository *PatentRecordRepository) MarkNotified(contextValue context.Context, patentID string, notifiedAt time.Time) (returnedError error) {
	update := bson.M{"$set": bson.M{"notifiedAt": notifiedAt.UTC()}}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"patentID": patentID}, update)
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
