// Package parser turns raw source text and unified diffs into ordered
// sequences of counted lines, each carrying a line number, its trimmed
// content, and an indentation depth normalized by the detected indent
// unit. No language grammar is involved; the classification is purely
// lexical.
package parser

import (
	"regexp"
	"strings"

	"github.com/TFMV/indentscore/types"
)

// DefaultCommentPattern matches line-leading comment markers for common
// languages: //, /*, *, #, <!-- and --, each optionally preceded by
// whitespace. It is a heuristic, not a parser; a line starting with -- is
// misclassified in languages where that is not a comment.
var DefaultCommentPattern = regexp.MustCompile(`^\s*(//|/\*|\*|#|<!--|--)`)

// Diff metadata lines never reach depth computation.
var diffMetaPrefixes = []string{"diff ", "index ", "+++", "---", "@@"}

// Depth converts a line's leading whitespace into an indentation depth.
// Each tab contributes one unit's worth of columns, each space a single
// column; the column total is divided by the unit width.
func Depth(line string, unit types.IndentUnit) int {
	width := unit.Width()
	cols := 0
	for _, ch := range line {
		switch ch {
		case '\t':
			cols += width
		case ' ':
			cols++
		default:
			return cols / width
		}
	}
	return cols / width
}

// Lines classifies a text blob into counted lines. Blank lines are
// dropped, as are lines matching comment when it is non-nil. Line numbers
// are 1-based positions in the original, unfiltered line sequence.
func Lines(content string, unit types.IndentUnit, comment *regexp.Regexp) []types.CountedLine {
	counted := make([]types.CountedLine, 0)
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if comment != nil && comment.MatchString(line) {
			continue
		}
		counted = append(counted, types.CountedLine{
			Line:    i + 1,
			Depth:   Depth(line, unit),
			Content: trimmed,
		})
	}
	return counted
}

// gatedLine is a diff line that survived the metadata/inclusion gate,
// numbered before blank and comment filtering.
type gatedLine struct {
	num  int
	text string // marker stripped, leading whitespace intact
}

// gateDiff strips diff metadata, discards context lines, and keeps the
// addition/deletion lines selected by include. The counter advances once
// per kept line, so later blank/comment filtering leaves gaps in the
// numbering. The numbers are diff-local, unrelated to either side's real
// file line numbers.
func gateDiff(diff string, include types.IncludeMode) []gatedLine {
	if include == "" {
		include = types.IncludeAdditions
	}
	gated := make([]gatedLine, 0)
	num := 0
	for _, line := range strings.Split(diff, "\n") {
		if isDiffMeta(line) || line == "" {
			continue
		}
		switch line[0] {
		case '+':
			if include == types.IncludeDeletions {
				continue
			}
		case '-':
			if include == types.IncludeAdditions {
				continue
			}
		default:
			// context and unrecognized lines are never analyzed
			continue
		}
		num++
		gated = append(gated, gatedLine{num: num, text: line[1:]})
	}
	return gated
}

func isDiffMeta(line string) bool {
	for _, prefix := range diffMetaPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// DiffSource returns the included code lines of a unified diff with their
// markers stripped, joined by newlines. Indent-unit detection for diffs
// runs over this text rather than the raw diff.
func DiffSource(diff string, include types.IncludeMode) string {
	gated := gateDiff(diff, include)
	lines := make([]string, 0, len(gated))
	for _, g := range gated {
		lines = append(lines, g.text)
	}
	return strings.Join(lines, "\n")
}

// DiffLines classifies the included hunk lines of a unified diff, applying
// the same blank and comment filtering as Lines after the marker is
// stripped.
func DiffLines(diff string, include types.IncludeMode, unit types.IndentUnit, comment *regexp.Regexp) []types.CountedLine {
	counted := make([]types.CountedLine, 0)
	for _, g := range gateDiff(diff, include) {
		trimmed := strings.TrimSpace(g.text)
		if trimmed == "" {
			continue
		}
		if comment != nil && comment.MatchString(g.text) {
			continue
		}
		counted = append(counted, types.CountedLine{
			Line:    g.num,
			Depth:   Depth(g.text, unit),
			Content: trimmed,
		})
	}
	return counted
}
