package types

import (
	"encoding/json"
	"fmt"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// FileReport is the analysis result for a single file. The embedded Result
// always carries the verbose Details so reports can be aggregated.
type FileReport struct {
	ID   *models.RecordID `json:"id,omitempty"`
	Path string           `json:"path"`
	Result
}

// ScanReport contains the results of scanning a file tree.
type ScanReport struct {
	ID        *models.RecordID `json:"id,omitempty"`
	Files     []FileReport     `json:"files,omitempty"`
	FileCount int              `json:"file_count"`
	LineCount int              `json:"line_count"`
	MeanScore float64          `json:"mean_score"`
	MaxScore  float64          `json:"max_score"`
	WorstFile string           `json:"worst_file,omitempty"`
}

// Aggregate fills the summary fields from the per-file reports.
func (r *ScanReport) Aggregate() {
	r.FileCount = len(r.Files)
	r.LineCount = 0
	r.MeanScore = 0
	r.MaxScore = 0
	r.WorstFile = ""
	if r.FileCount == 0 {
		return
	}

	total := 0.0
	for _, f := range r.Files {
		total += f.Score
		if f.Details != nil {
			r.LineCount += f.Details.LineCount
		}
		if r.WorstFile == "" || f.Score > r.MaxScore {
			r.MaxScore = f.Score
			r.WorstFile = f.Path
		}
	}
	r.MeanScore = total / float64(r.FileCount)
}

// PrettyPrint returns a formatted summary of the scan.
func (r ScanReport) PrettyPrint() string {
	type FileSummary struct {
		Path      string  `json:"path"`
		Score     float64 `json:"score"`
		Level     Level   `json:"level"`
		LineCount int     `json:"line_count,omitempty"`
		MaxDepth  int     `json:"max_depth,omitempty"`
	}

	type Summary struct {
		FileCount int           `json:"file_count"`
		LineCount int           `json:"line_count"`
		MeanScore float64       `json:"mean_score"`
		MaxScore  float64       `json:"max_score"`
		WorstFile string        `json:"worst_file"`
		Files     []FileSummary `json:"files"`
	}

	summary := Summary{
		FileCount: r.FileCount,
		LineCount: r.LineCount,
		MeanScore: r.MeanScore,
		MaxScore:  r.MaxScore,
		WorstFile: r.WorstFile,
		Files:     make([]FileSummary, 0, len(r.Files)),
	}

	for _, f := range r.Files {
		fs := FileSummary{
			Path:  f.Path,
			Score: f.Score,
			Level: f.Level,
		}
		if f.Details != nil {
			fs.LineCount = f.Details.LineCount
			fs.MaxDepth = f.Details.Max
		}
		summary.Files = append(summary.Files, fs)
	}

	jsonBytes, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}

	return string(jsonBytes)
}
