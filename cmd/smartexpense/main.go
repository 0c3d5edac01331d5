package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"smartexpense/internal/cli"
	applog "smartexpense/internal/log"
	"smartexpense/internal/ui"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()

	logger, closeLog, err := cli.SetupLogger(cfg)
	if err != nil {
		os.Stderr.WriteString("failed to open log file: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("starting", applog.FieldOperation, applog.OpStartup, "api_url", cfg.APIBaseURL)

	store := cli.InitSessionStore(logger, cfg.SessionDBPath)
	defer store.Close()

	client := cli.InitAPIClient(logger, cfg)

	program := tea.NewProgram(
		ui.New(client, store, logger.WithComponent(applog.ComponentUI)),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		logger.Error("program exited with error", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("stopped", applog.FieldOperation, applog.OpShutdown)
}
