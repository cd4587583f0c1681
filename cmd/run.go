package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanmay/acuity/internal/app"
	"github.com/tanmay/acuity/internal/riskapi"
	"github.com/tanmay/acuity/internal/store"
)

// runApp opens the store, builds the risk service client, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	client := riskapi.NewClient(resolveAPIConfig(cmd), eventRepo)

	return app.Run(app.Options{
		EventRepo:  eventRepo,
		RiskClient: client,
	})
}
