package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"reelfeed/internal/catalog"
	"reelfeed/internal/feed"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the record cache",
	}
	cacheCmd.AddCommand(newCacheShowCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	return cacheCmd
}

func newCacheShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List cached records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store := catalog.NewStore(cfg.Cache.Path, nil)
			snap, ok := store.Load()
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "No cache present.")
				return nil
			}

			generated := time.UnixMilli(snap.Generated).Format("2006-01-02 15:04:05")
			fmt.Fprintf(out, "Generated %s, %d records\n", generated, len(snap.Data))

			rows := make([][]string, 0, len(snap.Data))
			for _, rec := range snap.Data {
				id := "-"
				if rec.Resolved() {
					id = strconv.FormatInt(rec.ID, 10)
				}
				mediaType := rec.MediaType
				if mediaType == "" {
					mediaType = "-"
				}
				rows = append(rows, []string{
					feed.EntryTitle(rec),
					id,
					mediaType,
					time.UnixMilli(rec.DateAdded).Format("2006-01-02"),
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Title", "ID", "Type", "Added"},
				rows,
				1, // ID
			))
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the cache file, forcing full regeneration on the next run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if err := os.Remove(cfg.Cache.Path); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					fmt.Fprintln(cmd.OutOrStdout(), "No cache present.")
					return nil
				}
				return fmt.Errorf("remove cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", cfg.Cache.Path)
			return nil
		},
	}
}
