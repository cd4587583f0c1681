package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanmay/acuity/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print past screening submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := eventRepo.RecentSubmissions(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query submissions: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No screenings submitted yet.")
			return nil
		}

		for _, rec := range records {
			when := rec.Timestamp.Format("2006-01-02 15:04")
			if rec.Success {
				fmt.Printf("%s  word=%d memory=%d reaction=%dms  risk=%.1f (%s)\n",
					when, rec.WordScore, rec.MemoryScore, rec.ReactionMs,
					rec.RiskScore, rec.RiskCategory)
			} else {
				fmt.Printf("%s  word=%d memory=%d reaction=%dms  failed: %s\n",
					when, rec.WordScore, rec.MemoryScore, rec.ReactionMs,
					rec.ErrorMessage)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of submissions to show")
}
