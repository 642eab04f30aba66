package commands

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/application/services/analysis"
	"github.com/vsinha/inventory/pkg/infrastructure/config"
	"github.com/vsinha/inventory/pkg/infrastructure/logging"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/archive"
	"github.com/vsinha/inventory/pkg/interfaces/cli/output"
)

// Options holds the flags shared by every subcommand
type Options struct {
	ConfigFile string
	Format     string
	OutputPath string
	Verbose    bool
	LogLevel   string
}

// App carries the state built once per invocation before a subcommand runs
type App struct {
	options  Options
	settings *config.Config
	logger   *slog.Logger
	service  *analysis.AnalysisService
	stdout   io.Writer
	stderr   io.Writer
}

// NewRootCommand builds the inventory command tree writing reports to stdout and logs to stderr
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	app := &App{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory analysis over CSV datasets packaged in zip archives",
		Long: `inventory runs ABC classification, economic order quantity, reorder point,
lead time, demand forecast and top-seller analyses on CSV datasets, read either
from flags or from members of a zip archive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.options.ConfigFile, "config", "", "Path to YAML config file")
	flags.StringVarP(&app.options.Format, "format", "f", "text", "Output format: text, json, csv, yaml, xlsx")
	flags.StringVarP(&app.options.OutputPath, "output", "o", "", "Write the report to this file instead of stdout")
	flags.BoolVarP(&app.options.Verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&app.options.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(
		newDatasetsCommand(app),
		newABCCommand(app),
		newEOQCommand(app),
		newReorderPointCommand(app),
		newLeadTimeCommand(app),
		newForecastCommand(app),
		newTopSalesCommand(app),
	)
	return root
}

// Execute runs the command tree with the given arguments
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// setup loads configuration, applies flag overrides and builds the logger and service
func (a *App) setup(cmd *cobra.Command) error {
	settings, err := config.Load(a.options.ConfigFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		settings.Output.Format = a.options.Format
	}
	if flags.Changed("log-level") {
		settings.Logging.Level = a.options.LogLevel
	}
	if a.options.Verbose {
		settings.Logging.Level = "debug"
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(settings.Logging, a.stderr)
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = logger.With("run_id", uuid.NewString(), "command", cmd.Name())
	a.service = analysis.NewAnalysisService(archive.NewLoader(a.logger), a.logger)
	return nil
}

// render writes report in the configured format
func (a *App) render(report *dto.Report, started time.Time) error {
	err := output.Generate(report, output.Config{
		Format:     a.settings.Output.Format,
		OutputPath: a.options.OutputPath,
		Stdout:     a.stdout,
	})
	if err != nil {
		return err
	}

	a.logger.Info("analysis completed",
		"rows", len(report.Rows),
		"format", a.settings.Output.Format,
		"duration", time.Since(started))
	return nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}
