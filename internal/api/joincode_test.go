package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJoinCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := newJoinCode()
		require.NoError(t, err)

		assert.Len(t, code, joinCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(joinCodeAlphabet, r),
				"code %q contains %q outside the alphabet", code, r)
		}
		seen[code] = true
	}
	// 100 draws from ~900M codes colliding would be remarkable.
	assert.Greater(t, len(seen), 95)
}

func TestJoinCodeAlphabet_NoAmbiguousGlyphs(t *testing.T) {
	for _, r := range "0O1IL" {
		assert.False(t, strings.ContainsRune(joinCodeAlphabet, r))
	}
}
