package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"patentgate/internal/core"
	"patentgate/internal/dto"
	"patentgate/internal/service/summarizer"
	"patentgate/internal/service/uspto"
	"patentgate/internal/telemetry"

	"go.uber.org/zap"
)

// EnrichmentService 對上游專利做三件事：濃縮摘要、技術領域分類、關聯度評分。
// 分類與評分是純函數，摘要走 summarizer（失敗時留空，不擋整批）。
type EnrichmentService struct {
	trace      *telemetry.Trace
	summarizer summarizer.Service
	logger     *zap.Logger
}

func NewEnrichmentService(
	trace *telemetry.Trace,
	summarizerService summarizer.Service,
	logger *zap.Logger,
) *EnrichmentService {
	return &EnrichmentService{
		trace:      trace,
		summarizer: summarizerService,
		logger:     logger,
	}
}

// Classify 以固定分類表做關鍵字命中計數，取命中最多的領域；
// 同分時取表中最先出現者，全零回空字串（回應中整個欄位省略）。
func (s *EnrichmentService) Classify(title, abstract string) string {
	text := strings.ToLower(title + " " + abstract)

	bestArea := ""
	bestHits := 0
	for _, area := range core.TechnologyAreas {
		hits := 0
		for _, keyword := range area.Keywords {
			if strings.Contains(text, keyword) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestArea = area.Name
		}
	}
	return bestArea
}

// Relevance 對專利文字計算關聯度分數：
//   - 沒給關鍵字 → 中性 0.5
//   - 命中比例 = 命中數 / 關鍵字數；多於一個命中給 1.2 倍加成
//   - 上限 1.0，四捨五入到小數兩位
func (s *EnrichmentService) Relevance(title, abstract string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0.5
	}

	text := strings.ToLower(title + " " + abstract)
	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			matches++
		}
	}

	score := float64(matches) / float64(len(keywords))
	if matches > 1 {
		score *= 1.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return math.Round(score*100) / 100
}

// ExpandIndustry 把產業別展開成關鍵字清單；未知的值以單一關鍵字放行
func (s *EnrichmentService) ExpandIndustry(industry string) []string {
	if industry == "" {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(industry))
	if keywords, ok := core.IndustryKeywords[normalized]; ok {
		return keywords
	}
	return []string{normalized}
}

// Enrich 整批濃縮/分類/評分，結果依關聯度由高到低穩定排序
func (s *EnrichmentService) Enrich(ctx context.Context, patents []uspto.Patent, keywords []string) []dto.PatentDto {
	ctx, _, end := s.trace.WithSpan(ctx, string(core.SpanEnrichment))
	defer end(nil)

	results := make([]dto.PatentDto, 0, len(patents))
	for _, patent := range patents {
		summary, summarizeError := s.summarizer.Summarize(ctx, patent.Abstract)
		if summarizeError != nil {
			// 摘要失敗不擋整批，留空繼續
			s.logger.Warn("summarize failed, leaving summary empty",
				zap.String("patentID", patent.PatentID),
				zap.Error(summarizeError),
			)
			summary = ""
		}

		patentType := patent.PatentType
		if patentType == "" {
			patentType = core.PatentTypeUtility
		}

		results = append(results, dto.PatentDto{
			PatentID:       patent.PatentID,
			Title:          patent.Title,
			Abstract:       patent.Abstract,
			AssigneeName:   patent.AssigneeName,
			Inventor:       patent.Inventor,
			PatentType:     patentType,
			GrantDate:      patent.GrantDate.Format("2006-01-02"),
			ExpirationDate: patent.GrantDate.AddDate(core.PatentTermYears, 0, 0).Format("2006-01-02"),
			TechnologyArea: s.Classify(patent.Title, patent.Abstract),
			Summary:        summary,
			RelevanceScore: s.Relevance(patent.Title, patent.Abstract, keywords),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results
}
