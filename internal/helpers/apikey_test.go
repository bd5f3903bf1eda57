package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKey(t *testing.T) {
	fullKey, keyPrefix, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(fullKey, "arr_"))
	assert.True(t, strings.HasPrefix(keyPrefix, "arr_"))
	assert.Len(t, keyPrefix, len("arr_")+8)
	assert.True(t, strings.HasPrefix(fullKey, keyPrefix))

	// Keys must be unique across calls.
	otherKey, _, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, fullKey, otherKey)
}

func TestHashAndCompareAPIKey(t *testing.T) {
	fullKey, _, err := GenerateAPIKey()
	require.NoError(t, err)

	hash, err := HashAPIKey(fullKey)
	require.NoError(t, err)
	assert.NotEqual(t, fullKey, hash)

	assert.NoError(t, CompareAPIKeyHash(fullKey, hash))
	assert.Error(t, CompareAPIKeyHash("arr_wrongkey", hash))
}

func TestExtractKeyPrefix(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "standard key", key: "arr_abcdefghijklmnop", want: "arr_abcdefgh"},
		{name: "short key part", key: "arr_abc", want: "arr_abc"},
		{name: "no separator", key: "arrabcdefgh", want: "invalid"},
		{name: "empty", key: "", want: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeyPrefix(tt.key))
		})
	}
}

func TestGeneratedPrefixMatchesExtractedPrefix(t *testing.T) {
	fullKey, keyPrefix, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.Equal(t, keyPrefix, ExtractKeyPrefix(fullKey))
}
