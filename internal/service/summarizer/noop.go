package summarizer

import "context"

// NoopService 沒有模型可用時的空實作：一律回空摘要，讓回應欄位整個省略
type NoopService struct{}

func NewNoopService() *NoopService {
	return &NoopService{}
}

func (s *NoopService) Summarize(ctx context.Context, abstract string) (string, error) {
	return "", nil
}
