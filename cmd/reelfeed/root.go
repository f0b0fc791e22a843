package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var forceFlag bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "reelfeed",
		Short:         "Scrape a watchlist, resolve titles, and publish an RSS feed",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Bare invocation runs the pipeline: the tool is built to sit behind
		// cron with no arguments.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, ctx, forceFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&forceFlag, "force", false, "Force a full re-scrape and re-resolution")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
