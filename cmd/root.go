package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tanmay/acuity/internal/riskapi"
	"github.com/tanmay/acuity/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "acuity",
	Short: "Terminal cognitive screening battery",
	Long: "Acuity runs a short battery of timed cognitive tasks in the terminal\n" +
		"and submits the scores to a risk-assessment service for analysis.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ACUITY_DB env var)")
	rootCmd.PersistentFlags().String("api-url", "", "Risk service base URL (overrides ACUITY_API_URL env var)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ACUITY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveAPIConfig builds the risk service config from the environment,
// with the --api-url flag taking priority.
func resolveAPIConfig(cmd *cobra.Command) riskapi.Config {
	cfg := riskapi.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.BaseURL = u
	}
	return cfg
}
