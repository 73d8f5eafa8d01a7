package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateApprovalToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateApprovalToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "token repeated")
		seen[token] = true

		// Tokens travel in URL paths, so no padding or reserved characters.
		assert.NotContains(t, token, "=")
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
		assert.Len(t, token, 43)
	}
}
