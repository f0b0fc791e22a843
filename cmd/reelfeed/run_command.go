package main

import (
	"github.com/spf13/cobra"

	"reelfeed/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one scrape/resolve/publish cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, ctx, forceFlag)
		},
	}
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Force a full re-scrape and re-resolution")
	return cmd
}

func runPipeline(cmd *cobra.Command, ctx *commandContext, force bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, logger, force)
	if err != nil {
		return err
	}
	defer p.Close()

	return p.Run(cmd.Context())
}
