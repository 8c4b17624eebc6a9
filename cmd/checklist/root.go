package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Paul0Junior/checklist-eng/internal/app"
	"github.com/Paul0Junior/checklist-eng/internal/logging"
	"github.com/Paul0Junior/checklist-eng/internal/model"
	"github.com/Paul0Junior/checklist-eng/internal/store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Check-list diário para processos de engenharia",
	Long: `Terminal tool for the daily engineering operations checklist.

Log in, answer the fixed set of questions (job validation, table
validation, disk space, service restarts), attach observations, and
finalize to record the day's answers. Every submitted answer is kept
as append-only history in a local SQLite database.`,
	RunE: runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath, "config", model.DefaultConfigPath(), "path to the config file",
	)

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// openEnvironment loads the configuration, sets up logging, opens the
// store, and seeds the reference catalog. The returned cleanup closes
// both the store and the log file.
func openEnvironment(cmd *cobra.Command) (*model.AppConfig, *slog.Logger, *store.SQLiteStore, func(), error) {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	logger, closeLog, err := logging.Setup(cfg.LogPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	s, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		closeLog()
		return nil, nil, nil, nil, fmt.Errorf("opening store: %w", err)
	}

	if err := s.SeedReferenceData(cmd.Context()); err != nil {
		s.Close()
		closeLog()
		return nil, nil, nil, nil, fmt.Errorf("seeding reference data: %w", err)
	}

	cleanup := func() {
		s.Close()
		closeLog()
	}
	return cfg, logger, s, cleanup, nil
}

// runTUI opens the interactive checklist.
func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, logger, s, cleanup, err := openEnvironment(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting checklist", "database", cfg.DatabasePath)

	p := tea.NewProgram(app.New(s, cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
