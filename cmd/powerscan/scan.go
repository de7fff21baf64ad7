package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/powerscan/powerscan/internal/catalog"
	"github.com/powerscan/powerscan/internal/config"
	"github.com/powerscan/powerscan/internal/engine"
	"github.com/powerscan/powerscan/internal/logging"
	"github.com/powerscan/powerscan/internal/report"
	"github.com/powerscan/powerscan/internal/store"
	"github.com/powerscan/powerscan/internal/types"
)

var (
	flagPath       string
	flagCatalog    string
	flagInclude    string
	flagExclude    string
	flagMaxBytes   int64
	flagSnippetMax int
	flagAccepted   string
	flagNoSnapshot bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan web sources against the rule catalog",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagCatalog, "catalog", "", "YAML rule catalog (default: built-in rules)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().IntVar(&flagSnippetMax, "snippet-max", 0, "context snippet length cap (0 = default)")
	cmd.Flags().StringVar(&flagAccepted, "accepted", "", "accepted-findings file; only new findings are reported")
	cmd.Flags().BoolVar(&flagNoSnapshot, "no-snapshot", false, "do not persist the scan_results.json snapshot")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)

	// Config layering: CLI > local > global.
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	cat, err := loadCatalog(pickString(flagCatalog, lcfg.Catalog, gcfg.Catalog))
	if err != nil {
		return err
	}
	logging.Logger.Debugw("catalog loaded", "rules", cat.Len())

	files, err := engine.Collect(engine.WalkConfig{
		Root:         abs,
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
	})
	if err != nil {
		return err
	}
	logging.Logger.Debugw("files collected", "count", len(files))

	cfg := engine.Config{
		Threads:    pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		SnippetMax: pickInt(flagSnippetMax, lcfg.SnippetMax, gcfg.SnippetMax),
	}
	flagNoColor = pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)

	machineOut := flagJSON || flagSARIF || flagCSV
	total := len(files)
	if total > 0 && !machineOut {
		var done atomic.Int64
		cfg.Progress = func() {
			n := int(done.Add(1))
			if n%10 == 0 || n == total {
				pct := float64(n) / float64(total) * 100
				_, _ = fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", n, total, pct)
			}
		}
	}

	started := time.Now()
	res, err := engine.Scan(cmd.Context(), cfg, cat, files)
	if err != nil {
		return err
	}
	if total > 0 && !machineOut {
		_, _ = fmt.Fprintln(os.Stderr)
	}

	// Persist the full result; the accepted filter only shapes what is
	// rendered, so the snapshot summary always matches its findings.
	if !flagNoSnapshot {
		if err := store.Save(abs, res); err != nil {
			logging.Logger.Warnw("could not persist snapshot", "err", err)
		}
	}

	display := displayResult(res, pickString(flagAccepted, lcfg.Accepted, gcfg.Accepted))
	if err := render(os.Stdout, display, time.Since(started)); err != nil {
		return err
	}

	failOn := pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn)
	if report.ShouldFail(display, failOn) {
		os.Exit(1)
	}
	return nil
}

// displayResult strips accepted findings for rendering and exit-code purposes.
// res is taken by value; the caller's copy keeps the full finding list.
func displayResult(res types.ScanResult, acceptedPath string) types.ScanResult {
	if acceptedPath == "" {
		return res
	}
	a, err := report.LoadAccepted(acceptedPath)
	if err != nil {
		return res
	}
	res.Findings = report.FilterNew(res.Findings, a)
	return res
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func render(w io.Writer, res types.ScanResult, elapsed time.Duration) error {
	opts := report.PrintOptions{
		NoColor:  flagNoColor,
		Duration: elapsed,
	}
	switch {
	case flagJSON:
		return report.WriteJSON(w, res)
	case flagSARIF:
		return report.WriteSARIF(w, res, version)
	case flagCSV:
		return report.WriteCSV(w, res)
	case flagTable:
		report.PrintTable(w, res, opts)
	default:
		report.PrintText(w, res, opts)
	}
	return nil
}
