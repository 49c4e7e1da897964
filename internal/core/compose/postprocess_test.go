package compose

import (
	"strings"
	"testing"

	"github.com/phpdocker-io/generator/internal/core/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Header Tests
// =============================================================================

func TestHeader_ByteExact(t *testing.T) {
	want := "###############################################################################\n" +
		"#                          Generated on phpdocker.io                          #\n" +
		"###############################################################################\n" +
		"\n"
	assert.Equal(t, want, Header)
}

func TestHeader_LineWidths(t *testing.T) {
	lines := strings.Split(strings.TrimRight(Header, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 79)
	}
}

func TestGenerate_HeaderIsFirstThreeLines(t *testing.T) {
	_, contents, err := Generate(minimalOptions())
	require.NoError(t, err)

	lines := strings.Split(contents, "\n")
	require.Greater(t, len(lines), 4)
	assert.Equal(t, strings.Repeat("#", 79), lines[0])
	assert.Equal(t, "#                          Generated on phpdocker.io                          #", lines[1])
	assert.Equal(t, strings.Repeat("#", 79), lines[2])
	assert.Equal(t, "", lines[3], "header is followed by a blank separator line")
}

// =============================================================================
// Service Block Spacing Tests
// =============================================================================

func TestSpaceServiceBlocks_SingleBlock(t *testing.T) {
	in := "services:\n    web:\n        image: nginx\n"
	assert.Equal(t, in, spaceServiceBlocks(in))
}

func TestSpaceServiceBlocks_TwoBlocks(t *testing.T) {
	in := "services:\n" +
		"    web:\n" +
		"        image: nginx\n" +
		"    db:\n" +
		"        image: mysql\n"
	want := "services:\n" +
		"    web:\n" +
		"        image: nginx\n" +
		"\n" +
		"    db:\n" +
		"        image: mysql\n"
	assert.Equal(t, want, spaceServiceBlocks(in))
}

func TestSpaceServiceBlocks_IgnoresDeeperIndent(t *testing.T) {
	in := "services:\n" +
		"    web:\n" +
		"        volumes:\n" +
		"            - a:/b\n" +
		"        ports:\n" +
		"            - 80:80\n"
	assert.Equal(t, in, spaceServiceBlocks(in), "nested keys are indented deeper and must not be spaced")
}

func TestSpaceServiceBlocks_Empty(t *testing.T) {
	assert.Equal(t, "", spaceServiceBlocks(""))
}

func TestGenerate_ThreeBlocksTwoBlankLines(t *testing.T) {
	opts := minimalOptions()
	opts.Elasticsearch = &project.ElasticsearchOptions{Version: "7.17.0"}

	_, contents, err := Generate(opts)
	require.NoError(t, err)

	// Strip the header; its separator line is not inserted spacing.
	body := strings.TrimPrefix(contents, Header)

	blanks := 0
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if line != "" {
			continue
		}
		if i == len(lines)-1 {
			continue // trailing newline artifact
		}
		blanks++
		require.Less(t, i+1, len(lines))
		assert.Regexp(t, `^    [A-Za-z_]`, lines[i+1], "every blank line precedes a service block")
	}
	assert.Equal(t, 2, blanks)
}
