// Package cmd wires the versewake-server command-line interface.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"versewake/internal/config"
	"versewake/internal/service/server"
	"versewake/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// alarmsFile path where alarm records are persisted.
	alarmsFile string
	// settingsFile path where passage settings are persisted.
	settingsFile string

	// rootCmd represents the base command for running the alarm daemon.
	rootCmd = &cobra.Command{
		Use:   "versewake-server [listen-address]",
		Short: "Run the verse-typing alarm clock daemon.",
		Long: `Starts the versewake daemon that schedules alarms and serves the HTTP API.

A ringing alarm is dismissed only by retyping its Bible passage exactly.
The listen address can be provided as argument to override the configuration
file (e.g., :9090, 0.0.0.0:8723). Alarms and passage settings are persisted
to JSON files and re-armed on startup.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				AlarmsFile:    alarmsFile,
				SettingsFile:  settingsFile,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the versewake-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&alarmsFile, "alarms-file", "a", config.DefaultAlarmsFilename, "path to persist alarm records")
	rootCmd.Flags().
		StringVarP(&settingsFile, "settings-file", "s", config.DefaultPassageSettingsFilename, "path to persist passage settings")
}
