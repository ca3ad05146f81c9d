package summarizer

import "context"

// MaxInputChars 送進模型前先截斷，控制 token 成本
const MaxInputChars = 1024

// Service 把專利摘要濃縮成兩三句白話
type Service interface {
	Summarize(ctx context.Context, abstract string) (string, error)
}

// truncate 依 rune 截斷輸入
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
