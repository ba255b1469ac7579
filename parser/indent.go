package parser

import (
	"strings"

	"github.com/TFMV/indentscore/types"
)

// DetectIndentUnit infers the dominant indentation convention of a text.
// Positive indentation deltas between consecutive non-blank lines vote for
// a space amount; lines that open with a tab vote for the tab unit. The
// winner is the unit with the most votes (ties go to the smaller amount).
// Inputs with no indentation signal fall back to a single-space unit.
func DetectIndentUnit(text string) types.IndentUnit {
	tabVotes := 0
	spaceVotes := map[int]int{}
	prev := 0
	seen := false

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == '\t' {
			tabVotes++
			continue
		}
		indent := 0
		for indent < len(line) && line[indent] == ' ' {
			indent++
		}
		// the first line only seeds prev; voting on it would let a
		// uniformly indented input detect its own indent as the unit
		if seen {
			if delta := indent - prev; delta > 0 {
				spaceVotes[delta]++
			}
		}
		prev = indent
		seen = true
	}

	bestAmount, bestVotes := 0, 0
	for amount, votes := range spaceVotes {
		if votes > bestVotes || (votes == bestVotes && amount < bestAmount) {
			bestAmount, bestVotes = amount, votes
		}
	}

	if tabVotes > 0 && tabVotes >= bestVotes {
		return types.IndentUnit{Amount: 1, Type: types.IndentTab}
	}
	if bestVotes == 0 {
		return types.IndentUnit{Amount: 1, Type: types.IndentSpace}
	}
	return types.IndentUnit{Amount: bestAmount, Type: types.IndentSpace}
}
