package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tm-migrator/internal/config"
)

func newAnalyzeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Parse the TM1 extract and write analysis.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, func(e *env) error {
				a, err := e.runner.Analyze()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "run %s\n", a.RunID)
				fmt.Fprintf(out, "territories:        %d\n", a.Counts.Territory)
				fmt.Fprintf(out, "assignment rules:   %d (%d items)\n", a.Counts.AssignmentRule, a.Counts.AssignmentRuleItem)
				fmt.Fprintf(out, "user assignments:   %d\n", a.Counts.UserAssignment)
				fmt.Fprintf(out, "record shares:      %d\n", a.Counts.RecordShare)
				fmt.Fprintf(out, "sharing rules:      %d\n", a.Counts.SharingRules)
				fmt.Fprintf(out, "renamed:            %d\n", a.Renamed)

				return nil
			})
		},
	}
}

func newValidateCmd(flags *globalFlags) *cobra.Command {
	var (
		metadataDir string
		dataDir     string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Compare a fresh extract with analysis.json",
		Long: `Compare a fresh extract with analysis.json.

Count differences are printed and written to extraction.json. With --strict
any difference makes the command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, func(e *env) error {
				if metadataDir == "" {
					metadataDir = e.cfg.Source.MetadataDir
				}

				if dataDir == "" {
					dataDir = e.cfg.Source.DataDir
				}

				r, err := e.runner.Validate(metadataDir, dataDir)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, c := range r.Validation.Checks {
					status := "ok"
					if !c.Match {
						status = "MISMATCH"
					}

					fmt.Fprintf(out, "%-20s expected %6d  actual %6d  %s\n", c.Kind, c.Expected, c.Actual, status)
				}

				if strict {
					return r.Validation.Err()
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&metadataDir, "metadata-dir", "", "Metadata directory of the extract to check (default: source.metadataDir)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory of the extract to check (default: source.dataDir)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any count differs")

	return cmd
}

func newTransformCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "transform",
		Short: "Write TM2 load files with DeveloperName placeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, func(e *env) error {
				r, err := e.runner.Transform()
				if err != nil {
					return err
				}

				for _, d := range r.Diagnostics.Warnings {
					e.logger.Warn("transform", "code", d.Code, "subject", d.Subject, "message", d.Message)
				}

				for _, f := range r.Files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}

				return nil
			})
		},
	}
}

func newResolveCmd(flags *globalFlags) *cobra.Command {
	var extract string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Fill in deployed Territory2 IDs and finish association files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, func(e *env) error {
				if extract != "" {
					e.cfg.Destination.ExtractPath = extract
				}

				r, err := e.runner.Resolve()
				if err != nil {
					return err
				}

				for _, f := range r.Files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&extract, "extract", "", "Territory2 extract taken after deploy (default: destination.extractPath)")

	return cmd
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
