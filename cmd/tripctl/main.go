// Command tripctl drives the trip search core from a terminal: leg searches,
// price intelligence and the conversational trip builder.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corptravel/trip-search-client/internal/app"
	"github.com/corptravel/trip-search-client/internal/config"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags override the environment configuration for one invocation.
type globalFlags struct {
	backend  string
	token    string
	logLevel string
	storage  string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Corporate travel search client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "travel backend base URL (overrides BACKEND_BASE_URL)")
	root.PersistentFlags().StringVar(&flags.token, "token", "", "bearer token (overrides BACKEND_TOKEN)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flags.storage, "storage", "", "storage driver: memory, redis, sqlite (overrides STORAGE_DRIVER)")

	root.AddCommand(newSearchCmd(&flags))
	root.AddCommand(newIntelCmd(&flags))
	root.AddCommand(newChatCmd(&flags))
	root.AddCommand(newTranscriptCmd(&flags))

	return root
}

// openApp loads the configuration, applies the flag overrides and wires the
// core services. Logs go to the command's stderr so they never mix with output.
func openApp(cmd *cobra.Command, flags *globalFlags) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flags.backend != "" {
		cfg.Backend.BaseURL = flags.backend
	}
	if flags.token != "" {
		cfg.Backend.Token = flags.token
	}
	if flags.storage != "" {
		cfg.Storage.Driver = flags.storage
	}

	logCfg := app.LoggerConfig(cfg)
	logCfg.Level = flags.logLevel
	logCfg.Format = "console"
	log := logger.NewWithOutput(logCfg, cmd.ErrOrStderr())

	return app.New(cmdContext(cmd), cfg, log)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// closeApp closes a, keeping the command's own error when there is one.
func closeApp(a *app.App, err *error) {
	if cerr := a.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close: %w", cerr)
	}
}
