package core

// DateRange 查詢用的命名日期區間
type DateRange string

const (
	DateRangeNext7Days   DateRange = "next_7_days"
	DateRangeNext30Days  DateRange = "next_30_days"
	DateRangeNext90Days  DateRange = "next_90_days"
	DateRangeNext365Days DateRange = "next_365_days"
	// custom 需同時帶 start_date / end_date，否則拒絕
	DateRangeCustom DateRange = "custom"
)

// DaysAhead 回傳命名區間對應的天數；custom 與未知值回傳 0,false。
func (r DateRange) DaysAhead() (int, bool) {
	switch r {
	case DateRangeNext7Days:
		return 7, true
	case DateRangeNext30Days:
		return 30, true
	case DateRangeNext90Days:
		return 90, true
	case DateRangeNext365Days:
		return 365, true
	}
	return 0, false
}

// PatentTermYears 專利法定年限：到期日 = 授權日 + 20 年（逐日對應，非 365*20 的近似值）
const PatentTermYears = 20

// PatentTypeUtility 上游未提供類型時的預設值
const PatentTypeUtility = "utility"

// EventPatentExpired Webhook 事件名稱
const EventPatentExpired = "patent.expired"

// IndustryKeywords 產業別 → 關鍵字展開表。
// 未知的產業值以單一關鍵字放行（容許 partner 自由輸入）。
var IndustryKeywords = map[string][]string{
	"biotech":     {"biotechnology", "pharmaceutical", "drug", "medicine", "therapeutic"},
	"electronics": {"electronic", "circuit", "semiconductor", "chip", "processor"},
	"software":    {"software", "algorithm", "computer", "system", "method"},
	"medical":     {"medical", "device", "surgical", "diagnostic", "treatment"},
	"automotive":  {"vehicle", "automotive", "engine", "transmission", "brake"},
}

// TechnologyArea 技術領域分類表的一列
type TechnologyArea struct {
	Name     string
	Keywords []string
}

// TechnologyAreas 固定的分類表。
// 順序有意義：同分時取最先出現的領域，因此用 slice 而非 map。
var TechnologyAreas = []TechnologyArea{
	{Name: "biotechnology", Keywords: []string{"biotech", "pharmaceutical", "drug", "medicine", "therapeutic", "protein", "dna", "rna"}},
	{Name: "electronics", Keywords: []string{"electronic", "circuit", "semiconductor", "chip", "processor", "transistor"}},
	{Name: "software", Keywords: []string{"software", "algorithm", "computer", "system", "method", "application", "program"}},
	{Name: "medical devices", Keywords: []string{"medical", "device", "surgical", "diagnostic", "treatment", "implant"}},
	{Name: "automotive", Keywords: []string{"vehicle", "automotive", "engine", "transmission", "brake", "car"}},
	{Name: "energy", Keywords: []string{"energy", "solar", "battery", "fuel", "power", "renewable"}},
	{Name: "materials", Keywords: []string{"material", "polymer", "composite", "alloy", "coating"}},
}
