package service

import "sync/atomic"

// HealthService liveness 恆為 true（行程活著就回 alive）；
// readiness 由 App 生命週期控制：HTTP server 啟動後打開、收到關閉訊號先關掉，
// 讓 LB 在 graceful shutdown 期間停止派發流量。
type HealthService struct {
	live  atomic.Bool
	ready atomic.Bool
}

func NewHealthService() *HealthService {
	s := &HealthService{}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

func (s *HealthService) IsReady() bool {
	return s.ready.Load()
}
