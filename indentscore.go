// Package indentscore scores source text by statistical moments of
// per-line indentation depth: a quick, language-agnostic signal for
// deeply nested code that never parses a grammar. The headline score is
// the mean of squared depths, classified as low, medium or high against
// configurable thresholds.
package indentscore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/TFMV/indentscore/analysis"
	"github.com/TFMV/indentscore/cache"
	"github.com/TFMV/indentscore/db"
	"github.com/TFMV/indentscore/types"
	"golang.org/x/sync/errgroup"
)

// AnalyzeComplexity scores a whole text blob. It is a pure function of
// its inputs; identical calls return identical results.
func AnalyzeComplexity(content string, opts types.Options) types.Result {
	return analysis.Analyze(content, opts)
}

// AnalyzeDiffComplexity scores the included hunk lines of a unified diff.
func AnalyzeDiffComplexity(diff string, opts types.Options) types.Result {
	return analysis.AnalyzeDiff(diff, opts)
}

const patternCacheSize = 128

// Analyzer provides a high-level interface for scanning files and
// directories and storing the resulting reports.
type Analyzer struct {
	DB       db.DB
	Patterns *cache.PatternCache
}

// NewAnalyzer creates a new Analyzer with the given configuration. An
// empty URL leaves the analyzer without storage; analysis still works,
// StoreScan reports an error.
func NewAnalyzer(config db.Config) (*Analyzer, error) {
	a := &Analyzer{
		Patterns: cache.NewPatternCache(patternCacheSize),
	}
	if config.URL != "" {
		sdb, err := db.NewSurrealDB(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create database connection: %w", err)
		}
		a.DB = sdb
	}
	return a, nil
}

// Initialize sets up the database connection, if one is configured.
func (a *Analyzer) Initialize(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Initialize(ctx)
}

// CompilePattern compiles a comment pattern through the LRU cache.
func (a *Analyzer) CompilePattern(expr string) (*regexp.Regexp, error) {
	return a.Patterns.Compile(expr)
}

// AnalyzeFile reads and scores a single file. Reports always carry the
// verbose moments so scans can be aggregated.
func (a *Analyzer) AnalyzeFile(path string, opts types.Options) (types.FileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.FileReport{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	opts.Verbose = true
	return types.FileReport{
		Path:   path,
		Result: analysis.Analyze(string(data), opts),
	}, nil
}

// AnalyzeDiffFile reads a unified diff from a file and scores its
// included lines.
func (a *Analyzer) AnalyzeDiffFile(path string, opts types.Options) (types.FileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.FileReport{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	opts.Verbose = true
	return types.FileReport{
		Path:   path,
		Result: analysis.AnalyzeDiff(string(data), opts),
	}, nil
}

// AnalyzeDirectory scans a directory tree concurrently and aggregates a
// scan report over every recognized source file.
func (a *Analyzer) AnalyzeDirectory(ctx context.Context, dir string, opts types.Options) (types.ScanReport, error) {
	var filePaths []string
	if err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk directory: %w", err)
		}
		if d.IsDir() {
			if skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isSourceFile(path) {
			filePaths = append(filePaths, path)
		}
		return nil
	}); err != nil {
		return types.ScanReport{}, fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	resultCh := make(chan types.FileReport, len(filePaths))

	// Score files concurrently
	for _, path := range filePaths {
		path := path
		g.Go(func() error {
			report, err := a.AnalyzeFile(path, opts)
			if err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case resultCh <- report:
				return nil
			}
		})
	}

	// Close results channel when all goroutines complete
	go func() {
		g.Wait()
		close(resultCh)
	}()

	var scan types.ScanReport
	for report := range resultCh {
		scan.Files = append(scan.Files, report)
	}

	if err := g.Wait(); err != nil {
		return types.ScanReport{}, err
	}

	sort.Slice(scan.Files, func(i, j int) bool {
		return scan.Files[i].Path < scan.Files[j].Path
	})
	scan.Aggregate()
	return scan, nil
}

// StoreScan persists a scan report.
func (a *Analyzer) StoreScan(ctx context.Context, report types.ScanReport) error {
	if a.DB == nil {
		return fmt.Errorf("no database configured")
	}
	if err := a.DB.StoreScan(ctx, report); err != nil {
		return fmt.Errorf("failed to store scan results: %w", err)
	}
	return nil
}

// sourceExtensions are the file types a directory scan picks up. The
// comment heuristic targets code, so the scan stays on an allowlist
// rather than analyzing everything textual.
var sourceExtensions = map[string]bool{
	".go":    true,
	".js":    true,
	".jsx":   true,
	".ts":    true,
	".tsx":   true,
	".py":    true,
	".rb":    true,
	".java":  true,
	".kt":    true,
	".c":     true,
	".h":     true,
	".cc":    true,
	".cpp":   true,
	".hpp":   true,
	".cs":    true,
	".rs":    true,
	".swift": true,
	".php":   true,
	".scala": true,
	".sh":    true,
	".sql":   true,
	".lua":   true,
}

func isSourceFile(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

func skipDir(name string) bool {
	switch name {
	case "vendor", "node_modules", ".git", "testdata":
		return true
	}
	return false
}
