package uspto

import (
	"context"
	"time"
)

// Patent 上游回來的原始專利資料
type Patent struct {
	PatentID     string    `json:"patentID"`
	Title        string    `json:"title"`
	Abstract     string    `json:"abstract,omitempty"`
	AssigneeName string    `json:"assigneeName,omitempty"`
	Inventor     string    `json:"inventor,omitempty"`
	PatentType   string    `json:"patentType"`
	GrantDate    time.Time `json:"grantDate"`
}

// Query 以「授權日」表達的查詢條件。
// 呼叫端負責把到期視窗換算回授權日視窗（到期日 = 授權日 + 20 年）。
type Query struct {
	GrantDateFrom time.Time
	GrantDateTo   time.Time
	Keywords      []string
	Limit         int
}

// Source 專利資料來源。PatentsView 為主，bulk data 為備援。
type Source interface {
	Name() string
	SearchByGrantDate(ctx context.Context, query Query) ([]Patent, error)
	GetByID(ctx context.Context, patentID string) (*Patent, error)
}
