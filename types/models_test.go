package types_test

import (
	"strings"
	"testing"

	"github.com/TFMV/indentscore/types"
	"github.com/stretchr/testify/assert"
)

func report(path string, score float64, lineCount int) types.FileReport {
	return types.FileReport{
		Path: path,
		Result: types.Result{
			Score:   score,
			Level:   types.LevelLow,
			Details: &types.Details{LineCount: lineCount},
		},
	}
}

func TestScanReportAggregate(t *testing.T) {
	scan := types.ScanReport{
		Files: []types.FileReport{
			report("a.go", 1.5, 10),
			report("b.go", 6.0, 20),
			report("c.go", 0.0, 5),
		},
	}
	scan.Aggregate()

	assert.Equal(t, 3, scan.FileCount)
	assert.Equal(t, 35, scan.LineCount)
	assert.InDelta(t, 2.5, scan.MeanScore, 1e-9)
	assert.Equal(t, 6.0, scan.MaxScore)
	assert.Equal(t, "b.go", scan.WorstFile)
}

func TestScanReportAggregateEmpty(t *testing.T) {
	var scan types.ScanReport
	scan.Aggregate()

	assert.Zero(t, scan.FileCount)
	assert.Zero(t, scan.MeanScore)
	assert.Empty(t, scan.WorstFile)
}

func TestScanReportAggregateAllZeroScores(t *testing.T) {
	scan := types.ScanReport{
		Files: []types.FileReport{
			report("flat1.go", 0, 3),
			report("flat2.go", 0, 4),
		},
	}
	scan.Aggregate()

	// a worst file is still named even when every score is zero
	assert.Equal(t, "flat1.go", scan.WorstFile)
	assert.Zero(t, scan.MaxScore)
}

func TestScanReportPrettyPrint(t *testing.T) {
	scan := types.ScanReport{
		Files: []types.FileReport{report("a.go", 1.5, 10)},
	}
	scan.Aggregate()

	out := scan.PrettyPrint()
	assert.True(t, strings.Contains(out, `"a.go"`))
	assert.True(t, strings.Contains(out, `"file_count": 1`))
}
