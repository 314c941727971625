package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/starterpackapp/investment-calculator/internal/config"
	"github.com/starterpackapp/investment-calculator/internal/output"
)

func (a *app) newBracketsCmd() *cobra.Command {
	var (
		jurisdiction string
		year         int
	)
	cmd := &cobra.Command{
		Use:   "brackets",
		Short: "List the loaded income tax bracket tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			shown := 0
			for _, table := range a.registry.Tables() {
				if jurisdiction != "" && !strings.EqualFold(table.Jurisdiction, jurisdiction) {
					continue
				}
				if year != 0 && table.Year != year {
					continue
				}
				title := table.Key()
				if table.Name != "" {
					title = fmt.Sprintf("%s  %s", title, table.Name)
				}
				t := output.Table{Title: title, Headers: []string{"From", "To", "Rate"}}
				for _, b := range table.Brackets {
					upper := "and up"
					if !b.Unbounded() {
						upper = output.FormatWholeCurrency(*b.Max)
					}
					t.Rows = append(t.Rows, []string{output.FormatWholeCurrency(b.Min), upper, output.FormatRate(b.Rate)})
				}
				fmt.Fprintln(w, output.RenderTable(t))
				shown++
			}
			if shown == 0 {
				return fmt.Errorf("no bracket tables match %q/%d", jurisdiction, year)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&jurisdiction, "jurisdiction", "", "Only show this jurisdiction (CA for federal)")
	cmd.Flags().IntVar(&year, "year", 0, "Only show this tax year")
	return cmd
}

func (a *app) newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write an example input file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "property.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.NewInputParser().WriteExampleFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example inputs written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
