package securetoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	raw, hash, err := New()
	require.NoError(t, err)

	assert.Len(t, raw, 43)
	assert.Len(t, hash, 64)
	assert.Equal(t, Hash(raw), hash)
	assert.NotContains(t, raw, "+")
	assert.NotContains(t, raw, "/")

	raw2, hash2, err := New()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
	assert.NotEqual(t, hash, hash2)
}

func TestHash_KnownVector(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Hash(""))
}
