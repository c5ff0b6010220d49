package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nconklindev/connex/internal/config"
	"github.com/nconklindev/connex/internal/logging"
	"github.com/nconklindev/connex/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const debugLogFile = "connex-debug.log"

var (
	verbose   bool
	configDir string
	version   string
	commit    string
	date      string
)

var rootCmd = &cobra.Command{
	Use:   "connex",
	Short: "connex: LinkedIn Connections analyzer",
	Long: `connex reads the Connections.csv file from a LinkedIn data export, validates
every row and summarizes your network: row counts, rejected rows and the
companies most of your connections work at.

Run without arguments to pick a file interactively.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(verbose, os.Stderr)
	},
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	rootCmd.Version = v
	rootCmd.SetVersionTemplate(versionText())
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing .connex.yaml and .env")
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(versionCmd)
}

func versionText() string {
	return fmt.Sprintf("connex %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

func loadConfig() config.Config {
	cfg, err := config.Load(configDir)
	if err != nil {
		slog.Warn("Failed to load config file", "error", err)
		return config.Config{}
	}
	return cfg
}

func runTUI(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs go to a file or nowhere.
	if verbose {
		f, err := tea.LogToFile(debugLogFile, "connex")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logging.Init(true, f)
	} else {
		logging.Init(false, io.Discard)
	}

	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	startDir := cfg.StartDir
	if startDir == "" {
		startDir, _ = os.Getwd()
	}

	m := ui.InitialModel(ui.Options{
		StartDir:     startDir,
		ShowHidden:   cfg.ShowHidden,
		TopCompanies: cfg.TopCompanies,
	})

	slog.Debug("Starting TUI", "start_dir", startDir)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
