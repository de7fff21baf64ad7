package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules in the active catalog",
		RunE:  runRules,
	}
	cmd.Flags().StringVar(&flagCatalog, "catalog", "", "YAML rule catalog (default: built-in rules)")
	rootCmd.AddCommand(cmd)
}

func runRules(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(flagCatalog)
	if err != nil {
		return err
	}
	t := tablewriter.NewTable(os.Stdout)
	t.Header("ID", "Severity", "Applies To", "Description")
	for _, r := range cat.Rules() {
		applies := "all"
		if !r.Global() {
			parts := make([]string, len(r.AppliesTo))
			for i, ft := range r.AppliesTo {
				parts[i] = string(ft)
			}
			applies = strings.Join(parts, ", ")
		}
		_ = t.Append([]string{r.ID, string(r.Severity), applies, r.Description})
	}
	if err := t.Render(); err != nil {
		return err
	}
	fmt.Printf("\n%d rules\n", cat.Len())
	return nil
}
