package service

import (
	"testing"

	"patentgate/config"

	"github.com/stretchr/testify/assert"
)

func TestCost(t *testing.T) {
	conf := &config.Configuration{}
	conf.Billing.CostPerResult = 0.01
	s := &UsageService{config: conf}

	assert.Equal(t, 0.0, s.Cost(0))
	assert.Equal(t, 0.03, s.Cost(3))
	assert.Equal(t, 1.0, s.Cost(100))
	assert.Equal(t, 2.5, s.Cost(250))
}

func TestCostRoundsToCents(t *testing.T) {
	conf := &config.Configuration{}
	conf.Billing.CostPerResult = 0.0033
	s := &UsageService{config: conf}

	// 3 × 0.0033 = 0.0099 → 0.01
	assert.Equal(t, 0.01, s.Cost(3))
	// 1 × 0.0033 = 0.0033 → 0.00
	assert.Equal(t, 0.0, s.Cost(1))
}

func TestCostFallsBackToDefaultPrice(t *testing.T) {
	// 單價沒設定（零值）時不能把整條計費算成 0，改用內建預設 0.50
	s := &UsageService{config: &config.Configuration{}}

	assert.Equal(t, 0.5, s.Cost(1))
	assert.Equal(t, 5.0, s.Cost(10))
}
