package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/joho/godotenv"

	"github.com/TFMV/indentscore"
	"github.com/TFMV/indentscore/db"
	"github.com/TFMV/indentscore/types"
)

const usage = `indentscore - indentation-depth complexity scoring for source trees and diffs.

Usage:
  indentscore scan <path> [--verbose] [--lines] [--medium=<score>] [--high=<score>] [--pattern=<regex>] [--keep-comments] [--store] [--out=<file>]
  indentscore diff [<file>] [--include=<mode>] [--verbose] [--lines] [--medium=<score>] [--high=<score>] [--pattern=<regex>] [--keep-comments] [--out=<file>]
  indentscore -h | --help

Options:
  --include=<mode>   Diff lines to analyze: additions, deletions or both [default: additions].
  --medium=<score>   Override the medium score threshold.
  --high=<score>     Override the high score threshold.
  --pattern=<regex>  Replace the default comment pattern.
  --keep-comments    Do not filter comment lines.
  --verbose          Include the full statistical moments and histogram.
  --lines            Include per-line depth detail (implies the verbose fields).
  --store            Store scan results in SurrealDB (connection from env/.env).
  --out=<file>       Write JSON output to a file instead of stdout.
  -h --help          Show this screen.`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	// .env is optional; real environment variables win
	_ = godotenv.Load()

	store, _ := opts.Bool("--store")

	var config db.Config
	if store {
		config = db.Config{
			URL:       envOr("SURREALDB_URL", "ws://localhost:8000/rpc"),
			Namespace: envOr("SURREALDB_NAMESPACE", "test"),
			Database:  envOr("SURREALDB_DATABASE", "test"),
			Username:  envOr("SURREALDB_USER", "root"),
			Password:  envOr("SURREALDB_PASS", "root"),
		}
	}

	analyzer, err := indentscore.NewAnalyzer(config)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}

	options, err := buildOptions(analyzer, opts)
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	var output string
	if scan, _ := opts.Bool("scan"); scan {
		output, err = runScan(analyzer, opts, options, store)
	} else {
		output, err = runDiff(opts, options)
	}
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if outFile, _ := opts.String("--out"); outFile != "" {
		if err := os.WriteFile(outFile, []byte(output), 0644); err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
		fmt.Printf("Report written to %s\n", outFile)
	} else {
		fmt.Println(output)
	}
}

func runScan(analyzer *indentscore.Analyzer, opts docopt.Opts, options types.Options, store bool) (string, error) {
	path, _ := opts.String("<path>")

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ctx := context.Background()
	var report types.ScanReport
	if info.IsDir() {
		report, err = analyzer.AnalyzeDirectory(ctx, path, options)
		if err != nil {
			return "", err
		}
	} else {
		file, err := analyzer.AnalyzeFile(path, options)
		if err != nil {
			return "", err
		}
		report.Files = []types.FileReport{file}
		report.Aggregate()
	}

	if store {
		if err := analyzer.Initialize(ctx); err != nil {
			return "", err
		}
		if err := analyzer.StoreScan(ctx, report); err != nil {
			return "", err
		}
	}

	return report.PrettyPrint(), nil
}

func runDiff(opts docopt.Opts, options types.Options) (string, error) {
	var data []byte
	var err error
	if file, _ := opts.String("<file>"); file != "" {
		data, err = os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read diff from stdin: %w", err)
		}
	}

	result := indentscore.AnalyzeDiffComplexity(string(data), options)
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(jsonBytes), nil
}

func buildOptions(analyzer *indentscore.Analyzer, opts docopt.Opts) (types.Options, error) {
	var options types.Options

	options.Verbose, _ = opts.Bool("--verbose")
	options.IncludeLines, _ = opts.Bool("--lines")
	options.KeepComments, _ = opts.Bool("--keep-comments")

	if pattern, _ := opts.String("--pattern"); pattern != "" {
		re, err := analyzer.CompilePattern(pattern)
		if err != nil {
			return options, fmt.Errorf("invalid comment pattern: %w", err)
		}
		options.CommentPattern = re
	}

	if medium, _ := opts.String("--medium"); medium != "" {
		v, err := strconv.ParseFloat(medium, 64)
		if err != nil {
			return options, fmt.Errorf("invalid medium threshold: %w", err)
		}
		options.Thresholds.Medium = v
	}
	if high, _ := opts.String("--high"); high != "" {
		v, err := strconv.ParseFloat(high, 64)
		if err != nil {
			return options, fmt.Errorf("invalid high threshold: %w", err)
		}
		options.Thresholds.High = v
	}

	if include, _ := opts.String("--include"); include != "" {
		switch mode := types.IncludeMode(include); mode {
		case types.IncludeAdditions, types.IncludeDeletions, types.IncludeBoth:
			options.Include = mode
		default:
			return options, fmt.Errorf("invalid include mode %q", include)
		}
	}

	return options, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
