package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"tm-migrator/internal/config"
	"tm-migrator/internal/metrics"
	"tm-migrator/internal/storage"
	"tm-migrator/internal/workflow"
)

type globalFlags struct {
	configPath string
	root       string
	outDir     string
	model      string
	modelType  string
	logLevel   string
}

// env is what every subcommand needs once flags are parsed.
type env struct {
	cfg      *config.Config
	runner   *workflow.Runner
	logger   *slog.Logger
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "tm-migrate",
		Short: "Migrate Territory Management 1.0 data to Territory Management 2.0",
		Long: `Migrate Territory Management 1.0 data to Territory Management 2.0.

Stages run in order: analyze, transform, then (after the generated
Territory2 records are deployed and re-extracted) resolve. validate can be
run at any time after analyze to check a fresh extract against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML config file (defaults apply when omitted)")
	pf.StringVar(&flags.root, "root", "", "Directory every relative path is resolved against")
	pf.StringVar(&flags.outDir, "out", "", "Output directory for generated files")
	pf.StringVar(&flags.model, "model", "", "Territory2Model DeveloperName")
	pf.StringVar(&flags.modelType, "type", "", "Territory2Type DeveloperName")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newAnalyzeCmd(&flags),
		newValidateCmd(&flags),
		newTransformCmd(&flags),
		newResolveCmd(&flags),
		newConfigCmd(&flags),
	)

	return root
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg := config.Default()

	if flags.configPath != "" {
		var err error

		cfg, err = config.LoadFile(flags.configPath)
		if err != nil {
			return nil, err
		}
	}

	if flags.root != "" {
		cfg.Root = flags.root
	}

	if flags.outDir != "" {
		cfg.Output.Dir = flags.outDir
		cfg.Output.ReportsDir = flags.outDir + "/reports"
	}

	if flags.model != "" {
		cfg.Model.DeveloperName = flags.model
	}

	if flags.modelType != "" {
		cfg.Model.TypeDeveloperName = flags.modelType
	}

	if flags.logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(flags.logLevel)); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
	}

	return cfg, nil
}

func setup(cmd *cobra.Command, flags *globalFlags) (*env, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel.Level}))

	fsys := storage.NewOS(cfg.Root)
	reg := prometheus.NewRegistry()

	return &env{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		runner: workflow.New(fsys, cfg,
			workflow.WithLogger(logger),
			workflow.WithMetrics(metrics.New(reg)),
		),
	}, nil
}

// finish writes the metrics textfile when one is configured.
func (e *env) finish() error {
	if e.cfg.Metrics.Textfile == "" {
		return nil
	}

	if err := metrics.WriteTextfile(e.registry, e.cfg.Metrics.Textfile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}

func run(cmd *cobra.Command, flags *globalFlags, fn func(*env) error) error {
	e, err := setup(cmd, flags)
	if err != nil {
		return err
	}

	if err := fn(e); err != nil {
		if ferr := e.finish(); ferr != nil {
			e.logger.Warn("metrics not written", "error", ferr)
		}

		return err
	}

	return e.finish()
}
