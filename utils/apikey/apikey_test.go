package apikey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, TokenPrefix))
	assert.Greater(t, len(token), len(TokenPrefix)+30)

	other, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestHasTokenPrefix(t *testing.T) {
	assert.True(t, HasTokenPrefix("pat_abc"))
	assert.False(t, HasTokenPrefix("sk_abc"))
	assert.False(t, HasTokenPrefix(""))
}
