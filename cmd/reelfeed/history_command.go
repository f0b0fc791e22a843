package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"reelfeed/internal/runlog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent run summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("run history is disabled in configuration")
			}

			store, err := runlog.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			summaries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(summaries))
			for _, sum := range summaries {
				regenerated := "no"
				if sum.Regenerated {
					regenerated = "yes"
				}
				rows = append(rows, []string{
					sum.StartedAt.Format("2006-01-02 15:04:05"),
					sum.Duration.Truncate(time.Millisecond).String(),
					strconv.Itoa(sum.Scraped),
					strconv.Itoa(sum.Reused),
					strconv.Itoa(sum.Looked),
					strconv.Itoa(sum.Unresolved),
					regenerated,
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Duration", "Scraped", "Reused", "Looked up", "Unresolved", "Regenerated"},
				rows,
				1, 2, 3, 4, 5, // duration and counts
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")
	return cmd
}
