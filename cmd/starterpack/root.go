package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/starterpackapp/investment-calculator/internal/config"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/starterpackapp/investment-calculator/internal/observability"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand.
type app struct {
	logLevel     string
	bracketsFile string
	format       string

	logger   *zap.Logger
	registry *config.BracketRegistry
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "starterpack",
		Short:        "Investment property calculator",
		Long:         "Estimate capital gains tax, mortgage payments, cash flow, financing options and rental strategy for an investment property.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error, off)")
	root.PersistentFlags().StringVar(&a.bracketsFile, "brackets", "", "Additional tax bracket file (YAML or TOML)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "console", "Output format for analyze (console, console-lite, csv, detailed-csv, json)")

	root.AddCommand(
		a.newTaxCmd(),
		a.newCapitalGainsCmd(),
		a.newMortgageCmd(),
		a.newAmortizationCmd(),
		a.newCashFlowCmd(),
		a.newExpensesCmd(),
		a.newFinancingCmd(),
		a.newRentalCmd(),
		a.newAnalyzeCmd(),
		a.newBracketsCmd(),
		a.newInitCmd(),
	)
	return root
}

func (a *app) setup(logOut io.Writer) error {
	logger, err := observability.NewLogger(logOut, a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	registry, err := config.DefaultRegistry()
	if err != nil {
		return fmt.Errorf("loading built-in brackets: %w", err)
	}
	if a.bracketsFile != "" {
		if err := registry.LoadFile(a.bracketsFile); err != nil {
			return err
		}
		a.logger.Info("loaded bracket overrides", zap.String("file", a.bracketsFile))
	}
	a.registry = registry
	return nil
}

// loadInputs reads and validates an input file.
func (a *app) loadInputs(path string) (*domain.FinancialInputs, error) {
	inputs, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("inputs loaded", zap.String("file", path), zap.String("province", inputs.Province), zap.Int("tax_year", inputs.TaxYear))
	return inputs, nil
}
