package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/nconklindev/connex/internal/config"
	"github.com/nconklindev/connex/internal/importer"
	"github.com/nconklindev/connex/internal/report"
	"github.com/nconklindev/connex/internal/session"

	"github.com/spf13/cobra"
)

// ErrNoConnections is returned when a file yields no valid connection.
var ErrNoConnections = errors.New("no valid connections found")

var summaryFlags struct {
	format string
	top    int
}

var summaryCmd = &cobra.Command{
	Use:   "summary FILE",
	Short: "Print a summary of a Connections.csv export",
	Long: `Parse a LinkedIn Connections CSV export and print row counts, rejected rows
and the top companies. Exits with an error when no valid connection was found.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFlags.format, "format", "text", "Output format: text, json")
	summaryCmd.Flags().IntVar(&summaryFlags.top, "top", 0, "Number of companies to rank (default 10)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cmd.Flags().Changed("format") {
		cfg.Format = summaryFlags.format
	}
	if cmd.Flags().Changed("top") {
		cfg.TopCompanies = summaryFlags.top
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := args[0]
	store := session.New(cfg.TopCompanies)
	attempt := store.Begin()

	slog.Debug("Parsing file", "file", path, "attempt_id", attempt.ID)
	result, err := importer.ParseFile(path)
	store.Record(attempt, result, err)

	current := store.Current()
	data := report.Data{
		Tool:      "connex",
		Version:   version,
		Timestamp: time.Now().UTC(),
		File:      filepath.Base(path),
		Success:   current.Success,
		Summary:   store.Summary(),
	}

	if err := selectReporter(cfg, cmd.OutOrStdout()).Generate(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !current.Success {
		return fmt.Errorf("%s: %w", data.File, ErrNoConnections)
	}
	return nil
}

func selectReporter(cfg config.Config, w io.Writer) report.Reporter {
	if cfg.OutputFormat() == "json" {
		return &report.JSONReporter{Writer: w}
	}
	return &report.TextReporter{Writer: w}
}
