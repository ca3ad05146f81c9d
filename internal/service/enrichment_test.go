package service

import (
	"context"
	"testing"
	"time"

	"patentgate/internal/service/summarizer"
	"patentgate/internal/service/uspto"
	"patentgate/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEnrichmentService(t *testing.T) *EnrichmentService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return NewEnrichmentService(trace, summarizer.NewNoopService(), zap.NewNop())
}

func TestClassify(t *testing.T) {
	s := newTestEnrichmentService(t)

	tests := []struct {
		name     string
		title    string
		abstract string
		want     string
	}{
		{
			name:     "biotech keywords win",
			title:    "Recombinant protein expression",
			abstract: "A method of synthesizing dna fragments for therapeutic use",
			want:     "biotechnology",
		},
		{
			name:     "no hits leaves area empty",
			title:    "Improved umbrella",
			abstract: "An umbrella with a curved handle",
			want:     "",
		},
		{
			name:     "tie goes to the area listed first",
			title:    "A circuit controlled by software",
			abstract: "",
			want:     "electronics",
		},
		{
			name:     "case insensitive matching",
			title:    "SEMICONDUCTOR Processor Design",
			abstract: "",
			want:     "electronics",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Classify(tt.title, tt.abstract))
		})
	}
}

func TestRelevance(t *testing.T) {
	s := newTestEnrichmentService(t)

	t.Run("no keywords is neutral", func(t *testing.T) {
		assert.Equal(t, 0.5, s.Relevance("any title", "any abstract", nil))
	})

	t.Run("single match of two keywords", func(t *testing.T) {
		score := s.Relevance("solar panel", "", []string{"solar", "battery"})
		assert.Equal(t, 0.5, score)
	})

	t.Run("multiple matches get a bonus", func(t *testing.T) {
		// 2/4 命中 → 0.5 × 1.2 = 0.6
		score := s.Relevance("solar battery", "", []string{"solar", "battery", "fuel", "wind"})
		assert.Equal(t, 0.6, score)
	})

	t.Run("score capped at one", func(t *testing.T) {
		score := s.Relevance("solar battery", "", []string{"solar", "battery"})
		assert.Equal(t, 1.0, score)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		// 1/3 → 0.333... → 0.33
		score := s.Relevance("solar panel", "", []string{"solar", "battery", "fuel"})
		assert.Equal(t, 0.33, score)
	})

	t.Run("keyword matching is case insensitive", func(t *testing.T) {
		score := s.Relevance("Solar Panel", "", []string{"SOLAR"})
		assert.Equal(t, 1.0, score)
	})
}

func TestExpandIndustry(t *testing.T) {
	s := newTestEnrichmentService(t)

	assert.Nil(t, s.ExpandIndustry(""))
	assert.Equal(t,
		[]string{"biotechnology", "pharmaceutical", "drug", "medicine", "therapeutic"},
		s.ExpandIndustry("biotech"),
	)
	assert.Equal(t,
		[]string{"biotechnology", "pharmaceutical", "drug", "medicine", "therapeutic"},
		s.ExpandIndustry("  Biotech  "),
	)
	// 未知產業放行為單一關鍵字
	assert.Equal(t, []string{"fintech"}, s.ExpandIndustry("Fintech"))
}

func TestEnrich(t *testing.T) {
	s := newTestEnrichmentService(t)

	patents := []uspto.Patent{
		{
			PatentID:  "10000001",
			Title:     "Improved umbrella",
			Abstract:  "An umbrella with a curved handle",
			GrantDate: time.Date(2005, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			PatentID:   "10000002",
			Title:      "Solar battery pack",
			Abstract:   "A rechargeable battery charged by solar cells",
			Inventor:   "Doe, Jane",
			PatentType: "design",
			GrantDate:  time.Date(2004, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	results := s.Enrich(context.Background(), patents, []string{"solar", "battery"})
	require.Len(t, results, 2)

	// 關聯度高的排前面
	assert.Equal(t, "10000002", results[0].PatentID)
	assert.Equal(t, 1.0, results[0].RelevanceScore)
	assert.Equal(t, "design", results[0].PatentType)
	assert.Equal(t, "energy", results[0].TechnologyArea)
	assert.Equal(t, "Doe, Jane", results[0].Inventor)
	// 閏日授權的專利逐日對應到 20 年後的閏日
	assert.Equal(t, "2004-02-29", results[0].GrantDate)
	assert.Equal(t, "2024-02-29", results[0].ExpirationDate)

	assert.Equal(t, "10000001", results[1].PatentID)
	assert.Equal(t, 0.0, results[1].RelevanceScore)
	// 沒命中任何分類表關鍵字時領域留空
	assert.Empty(t, results[1].TechnologyArea)
	// 上游沒給類型時補 utility
	assert.Equal(t, "utility", results[1].PatentType)
	assert.Equal(t, "2025-06-15", results[1].ExpirationDate)
}
