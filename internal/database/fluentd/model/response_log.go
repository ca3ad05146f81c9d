package model

// ResponseLog 以 request_id 對應 RequestLog。
// 認證過的請求帶 partner_name，方便按合作夥伴切回應流量。
type ResponseLog struct {
	// 對應鍵
	RequestID   string `bson:"request_id" json:"request_id"`
	ProjectName string `bson:"project_name,omitempty" json:"project_name,omitempty"`
	PartnerName string `bson:"partner_name,omitempty" json:"partner_name,omitempty"`
	Code        int    `bson:"code" json:"code"`
	StatusCode  int    `bson:"status_code" json:"status_code"`
	Body        string `bson:"body,omitempty" json:"body,omitempty"`
	Error       string `bson:"error,omitempty" json:"error,omitempty"`
	Version     string `bson:"version,omitempty" json:"version,omitempty"`
	ResponseTS  string `bson:"response_ts" json:"response_ts"`
	LoggedAt    string `bson:"logged_at" json:"logged_at"`
}
