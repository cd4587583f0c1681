package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanmay/acuity/internal/riskapi"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the risk service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveAPIConfig(cmd)
		client := riskapi.NewClient(cfg, nil)

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := client.Health(ctx); err != nil {
			return fmt.Errorf("risk service at %s is unreachable: %w", cfg.BaseURL, err)
		}
		fmt.Printf("Risk service at %s is healthy.\n", cfg.BaseURL)
		return nil
	},
}
