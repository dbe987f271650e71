package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"fieldkit/internal/config"
	"fieldkit/internal/eventbus"
	"fieldkit/internal/logger"
	"fieldkit/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fieldkit",
		Short:         "Autocomplete and form fields for terminal programs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: runHandler,
	}

	rootCmd.Flags().String("config", "", "Config file (default <user config dir>/fieldkit/config.toml)")
	rootCmd.Flags().String("log-file", "", "Log file, overrides the config")
	rootCmd.Flags().String("log-level", "", "Log level (debug, info, warn, error), overrides the config")
	rootCmd.Flags().Bool("write-config", false, "Write the effective config file and exit")
	return rootCmd
}

func runHandler(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	logFile, _ := cmd.Flags().GetString("log-file")
	logLevel, _ := cmd.Flags().GetString("log-level")
	writeConfig, _ := cmd.Flags().GetBool("write-config")

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	lg, closer, err := logger.OpenFile(cfg.Log.File, "fieldkit", level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		lg = logger.Discard()
	} else {
		defer closer.Close()
	}

	bus := eventbus.New(lg.WithPrefix("bus"))
	defer bus.Close()

	if writeConfig {
		return saveConfig(config.NewConfigServiceWithBus(bus), cfg, configPath, cmd)
	}

	data, err := ui.LoadDemoData()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	model := ui.NewModel(bus, cfg, data, lg.WithPrefix("ui"))
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)
	stop := model.Forward(p.Send)
	defer stop()

	lg.Info("starting UI", "filter", cfg.Autocomplete.Filter, "debounce_ms", cfg.Autocomplete.DebounceMs)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		lg.Error("error running program", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	lg.Info("UI exited normally")
	return nil
}

// loadConfig reads path, or the default location when path is empty.
// A missing file yields the defaults.
func loadConfig(path string) (*config.Config, error) {
	svc := config.NewConfigService()
	if path == "" {
		return svc.Load()
	}
	cfg, err := svc.LoadFromPath(path)
	if os.IsNotExist(err) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

func saveConfig(svc config.ConfigService, cfg *config.Config, path string, cmd *cobra.Command) error {
	if path == "" {
		path = config.DefaultPath()
		if err := svc.Save(cfg); err != nil {
			return err
		}
	} else if err := svc.SaveToPath(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
	return nil
}
