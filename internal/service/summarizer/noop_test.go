package summarizer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopSummarizeReturnsEmpty(t *testing.T) {
	s := NewNoopService()

	// 不管摘要多長，空實作一律回空字串，回應中 summary 欄位整個省略
	for _, abstract := range []string{
		"",
		"A short abstract",
		strings.Repeat("a very long abstract ", 50),
	} {
		summary, err := s.Summarize(context.Background(), abstract)
		require.NoError(t, err)
		assert.Empty(t, summary)
	}
}
