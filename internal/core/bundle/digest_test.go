package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Digest Tests
// =============================================================================

func TestDigest_Stable(t *testing.T) {
	opts := testOptions()

	first, err := Generate(opts)
	require.NoError(t, err)
	second, err := Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, first.Digest(), second.Digest())
}

func TestDigest_HexLength(t *testing.T) {
	b, err := Generate(testOptions())
	require.NoError(t, err)

	assert.Len(t, b.Digest(), 64)
}

func TestDigest_ChangesWithContents(t *testing.T) {
	b, err := Generate(testOptions())
	require.NoError(t, err)

	before := b.Digest()
	b.Files[0].Contents = append(b.Files[0].Contents, '\n')

	assert.NotEqual(t, before, b.Digest())
}

func TestDigest_ChangesWithPath(t *testing.T) {
	b, err := Generate(testOptions())
	require.NoError(t, err)

	before := b.Digest()
	b.Files[0].Path = "compose.yml"

	assert.NotEqual(t, before, b.Digest())
}

func TestDigest_OrderMatters(t *testing.T) {
	b, err := Generate(testOptions())
	require.NoError(t, err)

	before := b.Digest()
	b.Files[0], b.Files[1] = b.Files[1], b.Files[0]

	assert.NotEqual(t, before, b.Digest())
}

func TestDigest_DiffersAcrossOptions(t *testing.T) {
	first, err := Generate(testOptions())
	require.NoError(t, err)

	opts := testOptions()
	opts.BasePort = 9090
	second, err := Generate(opts)
	require.NoError(t, err)

	assert.NotEqual(t, first.Digest(), second.Digest())
}
