package config

type Billing struct {
	// 每筆回傳結果的單價（美元）
	CostPerResult float64 `mapstructure:"COST_PER_RESULT" json:"costPerResult" yaml:"costPerResult"`
}
