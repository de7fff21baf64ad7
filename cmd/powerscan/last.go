package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/powerscan/powerscan/internal/engine"
	"github.com/powerscan/powerscan/internal/report"
	"github.com/powerscan/powerscan/internal/store"
)

var flagSnippets bool

func init() {
	cmd := &cobra.Command{
		Use:   "last [path]",
		Short: "Show the persisted last-scan snapshot without re-scanning",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLast,
	}
	cmd.Flags().BoolVar(&flagSnippets, "snippets", false, "print highlighted context snippets per finding")
	cmd.Flags().StringVar(&flagCatalog, "catalog", "", "YAML rule catalog used for the staleness probe")
	rootCmd.AddCommand(cmd)
}

func runLast(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	abs, _ := filepath.Abs(root)
	res, err := store.Load(abs)
	if err != nil {
		return fmt.Errorf("no snapshot under %s: run a scan first", abs)
	}
	if !flagJSON && !flagSARIF && !flagCSV {
		fmt.Printf("Last scan: %s\n\n", res.Timestamp.Format("2006-01-02 15:04:05 MST"))
		// Cheap staleness probe: re-hash current inputs against the snapshot.
		if cat, err := loadCatalog(flagCatalog); err == nil {
			if files, err := engine.Collect(engine.WalkConfig{Root: abs}); err == nil {
				if store.Stale(res, engine.Fingerprint(cat, files)) {
					fmt.Println("note: sources or catalog changed since this scan; re-run to refresh")
					fmt.Println()
				}
			}
		}
	}
	if err := render(os.Stdout, res, 0); err != nil {
		return err
	}
	if flagSnippets {
		fmt.Println()
		for _, f := range res.Findings {
			fmt.Printf("%s:%d:%d %s\n", f.File, f.Line, f.Column, f.RuleID)
			if err := report.WriteSnippet(os.Stdout, f, flagNoColor); err != nil {
				return err
			}
		}
	}
	return nil
}
