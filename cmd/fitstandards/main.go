// Package main provides the CLI entry point for fitstandards-go.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/fitstandards-go/internal/config"
	"github.com/ukaji3/fitstandards-go/internal/logging"
	"github.com/ukaji3/fitstandards-go/pkg/fitstandards"
	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/output"
)

var (
	outputPath   string
	pretty       bool
	configPath   string
	envFile      string
	pages        map[string]string
	logLevel     string
	logFormat    string
	noPrintAreas bool
	noDetect     bool
	sexDir       string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fitstandards [input.xlsx | page1.csv page2.csv]",
		Short: "Extract fitness standards tables to JSON",
		Long: `fitstandards reads a fitness assessment standards table (one page per sex)
from an Excel workbook or from CSV files and outputs the healthy fitness
zone thresholds as JSON keyed by sex, category and age.`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.StringVar(&envFile, "env-file", ".env", "Environment file loaded before reading configuration")
	flags.StringToStringVar(&pages, "page", nil, "Page bound to a sex, e.g. --page boys=1 --page girls=Girls")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: text, json")
	flags.BoolVar(&noPrintAreas, "no-print-areas", false, "Ignore print areas when locating the table")
	flags.BoolVar(&noDetect, "no-detect", false, "Read whole sheets instead of the detected table region")
	flags.StringVar(&sexDir, "sex-dir", "", "Directory for per-sex output files")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, _ := logging.WithRun(logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()))
	slog.SetDefault(logger)

	bindings, err := fitstandards.BindingsFromMap(cfg.Pages)
	if err != nil {
		return err
	}

	opts := fitstandards.DefaultOptions()
	opts.Pages = bindings
	opts.UsePrintAreas = &cfg.Input.PrintAreas
	opts.DetectTables = &cfg.Input.DetectTable
	opts.Logger = logger

	// Extract data
	result, err := fitstandards.Extract(args, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Info("extraction complete", "skipped_rows", len(result.Diagnostics))

	jsonData, err := output.ToJSON(result.Table, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sexDir == "" {
		writeLine(cmd.OutOrStdout(), jsonData)
	}

	if sexDir != "" {
		if err := writeSexFiles(result.Table, sexDir); err != nil {
			return fmt.Errorf("failed to write per-sex files: %w", err)
		}
	}

	return nil
}

// applyFlags overrides configuration values with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	if flags.Changed("page") {
		for sex, ref := range pages {
			cfg.Pages[sex] = ref
		}
	}
	if noPrintAreas {
		cfg.Input.PrintAreas = false
	}
	if noDetect {
		cfg.Input.DetectTable = false
	}
}

func writeSexFiles(table models.StandardsTable, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sex, standards := range table {
		jsonData, err := output.SexToJSON(&standards, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, string(sex)+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writeLine(w io.Writer, data []byte) {
	fmt.Fprintln(w, string(data))
}
