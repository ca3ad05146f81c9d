package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatentRecord struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`                                  // Mongo 文件 ID
	PatentID       string             `json:"patentID" bson:"patentID"`                                 // USPTO 專利號
	Title          string             `json:"title" bson:"title"`                                       // 專利標題
	Abstract       string             `json:"abstract,omitempty" bson:"abstract,omitempty"`             // 摘要全文
	AssigneeName   string             `json:"assigneeName,omitempty" bson:"assigneeName,omitempty"`     // 權利人
	Inventor       string             `json:"inventor,omitempty" bson:"inventor,omitempty"`             // 發明人（姓, 名，最多三位）
	PatentType     string             `json:"patentType" bson:"patentType"`                             // utility / design ...
	GrantDate      time.Time          `json:"grantDate" bson:"grantDate"`                               // 授權日
	ExpirationDate time.Time          `json:"expirationDate" bson:"expirationDate"`                     // 到期日（授權日 + 20 年）
	TechnologyArea string             `json:"technologyArea,omitempty" bson:"technologyArea,omitempty"` // 分類結果
	Summary        string             `json:"summary,omitempty" bson:"summary,omitempty"`               // 摘要濃縮
	NotifiedAt     *time.Time         `json:"notifiedAt,omitempty" bson:"notifiedAt,omitempty"`         // 到期通知已送出的時間
	RefreshedAt    time.Time          `json:"refreshedAt" bson:"refreshedAt"`                           // 最後同步時間
}
