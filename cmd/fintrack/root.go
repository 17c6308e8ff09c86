package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/fintrack/internal/config"
	"github.com/iwvelando/fintrack/pkg/constants"
	"github.com/iwvelando/fintrack/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string

	now    func() time.Time
	stdout io.Writer

	conf   *config.Configuration
	logger *zap.Logger
	out    *output.Writer
}

// newRootCmd builds the command tree. Results are written to stdout and now
// supplies the reference time for projections and timeframes.
func newRootCmd(stdout io.Writer, now func() time.Time) *cobra.Command {
	a := &app{now: now, stdout: stdout}

	root := &cobra.Command{
		Use:   "fintrack",
		Short: "Personal finance analytics",
		Long: "Project future expenses, track budget utilization, allocate a budget across\n" +
			"prioritized categories, and classify or search ledger records.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", constants.DefaultConfigFile, "path to ledger snapshot file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&a.outputFormat, "output-format", "o", "", "type of output override: pretty, csv, json, yaml")

	root.AddCommand(
		newProjectCmd(a),
		newUtilizationCmd(a),
		newAllocateCmd(a),
		newClassifyCmd(a),
		newSearchCmd(a),
		newSummaryCmd(a),
	)
	return root
}

// setup loads the ledger, starts logging and picks the output format.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}
	a.conf = conf

	logger, err := initializeLogger(conf.Logging, a.logLevel, uuid.NewString())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))

	outputFormat := conf.Output.Format
	if a.outputFormat != "" {
		outputFormat = a.outputFormat
	}
	a.out, err = output.NewWriter(a.stdout, outputFormat, conf.Currency)
	if err != nil {
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		a.logger.Warn("Configuration warning: "+warning,
			zap.String("op", "setup"),
		)
	}

	a.logger.Debug("loaded ledger",
		zap.String("op", "setup"),
		zap.String("config", a.configPath),
		zap.Int("expenses", len(conf.Expenses)),
		zap.Int("budgets", len(conf.Budgets)),
		zap.Int("goals", len(conf.Goals)),
		zap.String("format", a.out.Format()),
	)
	return nil
}
