package types

import "regexp"

// Level is the ordinal classification of a complexity score.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// IndentType distinguishes space-based from tab-based indentation.
type IndentType string

const (
	IndentSpace IndentType = "space"
	IndentTab   IndentType = "tab"
)

// IndentUnit describes the dominant indentation convention of a text:
// how many whitespace columns make up one nesting level.
type IndentUnit struct {
	Amount int        `json:"amount"`
	Type   IndentType `json:"type"`
}

// Width returns the number of columns per depth level. A tab counts as a
// single column per level regardless of display width, and the width is
// floored at 1 to avoid division by zero.
func (u IndentUnit) Width() int {
	if u.Type == IndentTab || u.Amount < 1 {
		return 1
	}
	return u.Amount
}

// IncludeMode selects which unified-diff hunk lines are analyzed.
type IncludeMode string

const (
	IncludeAdditions IncludeMode = "additions"
	IncludeDeletions IncludeMode = "deletions"
	IncludeBoth      IncludeMode = "both"
)

// CountedLine is a retained source line: its 1-based line number, computed
// indentation depth, and trimmed content. For diffs the line number is a
// diff-local counter over included lines, not a file line number.
type CountedLine struct {
	Line    int    `json:"line"`
	Depth   int    `json:"depth"`
	Content string `json:"content"`
}

// Thresholds are the score cut points for the medium and high levels.
// A zero-valued field falls back to its default. The library does not
// enforce Medium < High; keeping the pair coherent is the caller's job.
type Thresholds struct {
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// Options control a single analysis call. The zero value requests the
// default behavior: default comment pattern, default thresholds, base
// result tier, and additions-only for diffs.
type Options struct {
	// CommentPattern replaces the default comment pattern when non-nil.
	CommentPattern *regexp.Regexp
	// KeepComments disables comment filtering entirely, overriding
	// CommentPattern.
	KeepComments bool
	Thresholds   Thresholds
	// Verbose adds the statistical moments and histogram to the result.
	Verbose bool
	// IncludeLines additionally attaches per-line detail. It implies the
	// Verbose fields.
	IncludeLines bool
	// Include selects diff hunk lines; only the diff path reads it.
	Include IncludeMode
}

// Details is the verbose tier of a result: every statistical moment
// except the score, plus the line count and depth histogram.
type Details struct {
	LineCount int         `json:"line_count"`
	Sum       int         `json:"sum"`
	Mean      float64     `json:"mean"`
	Variance  float64     `json:"variance"`
	StdDev    float64     `json:"std_dev"`
	Median    float64     `json:"median"`
	Max       int         `json:"max"`
	Histogram map[int]int `json:"histogram"`
}

// Result is the outcome of one analysis call. Details is present for
// verbose requests and Lines for include-lines requests; each tier is a
// strict superset of the previous one.
type Result struct {
	Score   float64       `json:"score"`
	Level   Level         `json:"level"`
	Reason  string        `json:"reason"`
	Details *Details      `json:"details,omitempty"`
	Lines   []CountedLine `json:"lines,omitempty"`
}
