package parser_test

import (
	"strings"
	"testing"

	"github.com/TFMV/indentscore/parser"
	"github.com/TFMV/indentscore/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	spaces4 = types.IndentUnit{Amount: 4, Type: types.IndentSpace}
	tabs    = types.IndentUnit{Amount: 1, Type: types.IndentTab}
)

func TestDepth(t *testing.T) {
	tests := []struct {
		name string
		line string
		unit types.IndentUnit
		want int
	}{
		{name: "no indent", line: "x := 1", unit: spaces4, want: 0},
		{name: "one level of spaces", line: "    x := 1", unit: spaces4, want: 1},
		{name: "two levels of spaces", line: "        x := 1", unit: spaces4, want: 2},
		{name: "partial indent floors", line: "  x := 1", unit: spaces4, want: 0},
		{name: "one tab", line: "\tx := 1", unit: tabs, want: 1},
		{name: "two tabs", line: "\t\tx := 1", unit: tabs, want: 2},
		{name: "tab in space file counts a full unit", line: "\t    x := 1", unit: spaces4, want: 2},
		{name: "mixed tab and spaces", line: "\t  x := 1", unit: spaces4, want: 1},
		{name: "whitespace only", line: "   ", unit: spaces4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Depth(tt.line, tt.unit))
		})
	}
}

func TestLines(t *testing.T) {
	content := strings.Join([]string{
		"func main() {",
		"",
		"    // setup",
		"    do()",
		"}",
	}, "\n")

	lines := parser.Lines(content, spaces4, parser.DefaultCommentPattern)
	require.Len(t, lines, 3)

	// numbers are positions in the original, unfiltered sequence
	assert.Equal(t, types.CountedLine{Line: 1, Depth: 0, Content: "func main() {"}, lines[0])
	assert.Equal(t, types.CountedLine{Line: 4, Depth: 1, Content: "do()"}, lines[1])
	assert.Equal(t, types.CountedLine{Line: 5, Depth: 0, Content: "}"}, lines[2])
}

func TestLinesNilPatternKeepsComments(t *testing.T) {
	content := "x()\n// comment\ny()"

	filtered := parser.Lines(content, spaces4, parser.DefaultCommentPattern)
	assert.Len(t, filtered, 2)

	kept := parser.Lines(content, spaces4, nil)
	require.Len(t, kept, 3)
	assert.Equal(t, "// comment", kept[1].Content)
}

func TestDefaultCommentPattern(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"// slashes", true},
		{"  // indented slashes", true},
		{"/* block */", true},
		{" * continuation", true},
		{"# hash", true},
		{"<!-- html -->", true},
		{"-- sql", true},
		{"x := 1 // trailing comment", false},
		{"code()", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.DefaultCommentPattern.MatchString(tt.line))
		})
	}
}

const sampleDiff = `diff --git a/x.go b/x.go
index 1234567..89abcde 100644
--- a/x.go
+++ b/x.go
@@ -1,5 +1,5 @@
 func main() {
+    added()
+        deeper()
-    removed()
-    gone()
 }`

func TestDiffLinesInclude(t *testing.T) {
	tests := []struct {
		name    string
		include types.IncludeMode
		want    []types.CountedLine
	}{
		{
			name:    "default is additions",
			include: "",
			want: []types.CountedLine{
				{Line: 1, Depth: 1, Content: "added()"},
				{Line: 2, Depth: 2, Content: "deeper()"},
			},
		},
		{
			name:    "deletions",
			include: types.IncludeDeletions,
			want: []types.CountedLine{
				{Line: 1, Depth: 1, Content: "removed()"},
				{Line: 2, Depth: 1, Content: "gone()"},
			},
		},
		{
			name:    "both",
			include: types.IncludeBoth,
			want: []types.CountedLine{
				{Line: 1, Depth: 1, Content: "added()"},
				{Line: 2, Depth: 2, Content: "deeper()"},
				{Line: 3, Depth: 1, Content: "removed()"},
				{Line: 4, Depth: 1, Content: "gone()"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.DiffLines(sampleDiff, tt.include, spaces4, parser.DefaultCommentPattern)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiffLinesNumberingGaps(t *testing.T) {
	diff := strings.Join([]string{
		"@@ -0,0 +1,3 @@",
		"+first()",
		"+// note",
		"+third()",
	}, "\n")

	lines := parser.DiffLines(diff, types.IncludeAdditions, spaces4, parser.DefaultCommentPattern)
	require.Len(t, lines, 2)

	// the counter advanced for the comment line before it was dropped
	assert.Equal(t, 1, lines[0].Line)
	assert.Equal(t, 3, lines[1].Line)
}

func TestDiffLinesMetadataNeverCounted(t *testing.T) {
	// header lines share leading characters with hunk markers
	diff := strings.Join([]string{
		"diff --git a/x b/x",
		"index 1..2 100644",
		"--- a/x",
		"+++ b/x",
		"@@ -1 +1 @@",
		"+kept()",
	}, "\n")

	lines := parser.DiffLines(diff, types.IncludeBoth, spaces4, nil)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept()", lines[0].Content)
}

func TestDiffSource(t *testing.T) {
	src := parser.DiffSource(sampleDiff, types.IncludeAdditions)
	assert.Equal(t, "    added()\n        deeper()", src)

	// malformed diffs degrade to nothing rather than failing
	assert.Equal(t, "", parser.DiffSource("not a diff at all", types.IncludeBoth))
}

func TestLinesEmptyInput(t *testing.T) {
	assert.Empty(t, parser.Lines("", spaces4, parser.DefaultCommentPattern))
	assert.Empty(t, parser.Lines("   \n\t\n", tabs, nil))
	assert.Empty(t, parser.DiffLines("", "", spaces4, nil))
}
