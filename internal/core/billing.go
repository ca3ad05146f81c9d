package core

// DefaultCostPerResult 設定檔沒給單價時的內建預設（美元／筆）
const DefaultCostPerResult = 0.50
