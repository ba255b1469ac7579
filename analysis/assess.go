package analysis

import (
	"fmt"

	"github.com/TFMV/indentscore/types"
)

// Default score cut points for the medium and high levels.
const (
	DefaultMediumThreshold = 4
	DefaultHighThreshold   = 10
)

// resolveThresholds fills zero-valued fields with the defaults. A caller
// may set Medium above High; the pair is accepted as-is and the high
// branch simply wins for scores at or above it.
func resolveThresholds(t types.Thresholds) types.Thresholds {
	if t.Medium == 0 {
		t.Medium = DefaultMediumThreshold
	}
	if t.High == 0 {
		t.High = DefaultHighThreshold
	}
	return t
}

// Assess classifies a score against the thresholds, evaluating the high
// tier first. Each tier is inclusive on its lower edge.
func Assess(score float64, t types.Thresholds) (types.Level, string) {
	t = resolveThresholds(t)
	switch {
	case score >= t.High:
		return types.LevelHigh, fmt.Sprintf("score %.1f is at or above the high threshold (%g); nesting is deep enough to hurt readability", score, t.High)
	case score >= t.Medium:
		return types.LevelMedium, fmt.Sprintf("score %.1f is at or above the medium threshold (%g); some blocks are getting deep", score, t.Medium)
	default:
		return types.LevelLow, "nesting stays shallow across the counted lines"
	}
}
