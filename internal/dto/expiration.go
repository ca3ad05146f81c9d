package dto

// 到期查詢的 query 參數
type ExpirationQueryDto struct {
	DateRange string `form:"date_range" binding:"omitempty"` // next_7_days / next_30_days / next_90_days / next_365_days / custom
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Industry  string `form:"industry" binding:"omitempty"`
	Keywords  string `form:"keywords" binding:"omitempty"` // 逗號分隔，industry 未提供時使用
	Limit     int    `form:"limit" binding:"omitempty,gt=0,lte=1000"`
	Offset    int    `form:"offset" binding:"omitempty,gte=0"`
}

type PatentDto struct {
	PatentID       string  `json:"patentID"`
	Title          string  `json:"title"`
	Abstract       string  `json:"abstract,omitempty"`
	AssigneeName   string  `json:"assigneeName,omitempty"`
	Inventor       string  `json:"inventor,omitempty"`
	PatentType     string  `json:"patentType"`
	GrantDate      string  `json:"grantDate"`      // YYYY-MM-DD
	ExpirationDate string  `json:"expirationDate"` // YYYY-MM-DD
	TechnologyArea string  `json:"technologyArea,omitempty"`
	Summary        string  `json:"summary,omitempty"`
	RelevanceScore float64 `json:"relevanceScore"`
}

type ExpirationResponseDto struct {
	DateRange  string      `json:"dateRange"`
	StartDate  string      `json:"startDate"`
	EndDate    string      `json:"endDate"`
	Industry   string      `json:"industry,omitempty"`
	Keywords   []string    `json:"keywords,omitempty"`
	Source     string      `json:"source"` // patentsview / bulkdata / cache
	Offset     int         `json:"offset"`
	CacheHit   bool        `json:"cacheHit"`
	TotalCount int         `json:"totalCount"`
	Results    []PatentDto `json:"results"`
}
