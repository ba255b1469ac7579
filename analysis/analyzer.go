// Package analysis computes indentation-depth complexity scores. Every
// function is a pure computation over its inputs: each call re-derives
// the indent unit and statistics from scratch, so concurrent callers
// never contend on shared state.
package analysis

import (
	"regexp"

	"github.com/TFMV/indentscore/parser"
	"github.com/TFMV/indentscore/types"
)

// Analyze scores a whole text blob.
func Analyze(content string, opts types.Options) types.Result {
	unit := parser.DetectIndentUnit(content)
	lines := parser.Lines(content, unit, commentPattern(opts))
	return assemble(lines, opts)
}

// AnalyzeDiff scores the included hunk lines of a unified diff. The
// indent unit is detected over the marker-stripped included lines, not
// the raw diff text.
func AnalyzeDiff(diff string, opts types.Options) types.Result {
	unit := parser.DetectIndentUnit(parser.DiffSource(diff, opts.Include))
	lines := parser.DiffLines(diff, opts.Include, unit, commentPattern(opts))
	return assemble(lines, opts)
}

// commentPattern resolves the effective comment filter: nil disables
// filtering, a caller-supplied pattern fully replaces the default.
func commentPattern(opts types.Options) *regexp.Regexp {
	if opts.KeepComments {
		return nil
	}
	if opts.CommentPattern != nil {
		return opts.CommentPattern
	}
	return parser.DefaultCommentPattern
}

// assemble combines counted lines, statistics, and the assessment into
// the result tier the options ask for.
func assemble(lines []types.CountedLine, opts types.Options) types.Result {
	depths := make([]int, len(lines))
	for i, l := range lines {
		depths[i] = l.Depth
	}

	m := ComputeMoments(depths)
	level, reason := Assess(m.Score, opts.Thresholds)

	result := types.Result{
		Score:  m.Score,
		Level:  level,
		Reason: reason,
	}
	if opts.Verbose || opts.IncludeLines {
		result.Details = &types.Details{
			LineCount: len(lines),
			Sum:       m.Sum,
			Mean:      m.Mean,
			Variance:  m.Variance,
			StdDev:    m.StdDev,
			Median:    m.Median,
			Max:       m.Max,
			Histogram: m.Histogram,
		}
	}
	if opts.IncludeLines {
		result.Lines = lines
	}
	return result
}
