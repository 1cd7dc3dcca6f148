package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/paycycle-dev/paycycle/internal/buildinfo"
	"github.com/paycycle-dev/paycycle/internal/logger"
)

// Environment variables that override flag defaults. They may also be set in
// a .env file in the working directory.
const (
	envConfig   = "PAYCYCLE_CONFIG"
	envLogLevel = "PAYCYCLE_LOG_LEVEL"
)

const defaultConfigFile = "paycycle.yaml"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	_ = godotenv.Load()

	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:     "paycycle",
		Short:   "Pay-cycle analysis of bank transaction exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log := logger.New(opts.logLevel)
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", envOr(envConfig, defaultConfigFile), "path to paycycle.yaml")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr(envLogLevel, "info"), "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newPeriodsCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))

	return rootCmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
