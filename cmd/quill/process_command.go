package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"quill/internal/engine"
	"quill/internal/journal"
	"quill/internal/preflight"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var recursive bool
	var skipFetch bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "process <folder>",
		Short: "Run the definition engine over a vault folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := args[0]
			if _, err := os.Stat(folder); err != nil {
				return fmt.Errorf("folder not found: %s", folder)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("recursive") {
				recursive = cfg.Engine.Recursive
			}

			out := cmd.OutOrStdout()
			for _, check := range preflight.RunAll(folder) {
				if !check.Passed {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", check.Name, check.Detail)
				}
			}

			eng, err := ctx.newEngine(skipFetch)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Processing folder: %s\n", folder)
			fmt.Fprintf(out, "Dry run: %s\n\n", yesNo(dryRun))

			progress, finish := newProgressReporter(out)
			started := time.Now()
			results, err := eng.ProcessFolder(cmd.Context(), folder, engine.Options{
				DryRun:    dryRun,
				Recursive: recursive,
				SkipFetch: skipFetch,
			}, progress)
			finish()
			if err != nil {
				return err
			}

			var updated, errored int
			for _, result := range results {
				if result.Updated {
					updated++
				}
				if result.Failed() {
					errored++
				}
			}

			recordRun(cmd.Context(), ctx, journal.Run{
				ID:             uuid.NewString(),
				StartedAt:      started,
				FinishedAt:     time.Now(),
				Folder:         folder,
				DryRun:         dryRun,
				FilesProcessed: len(results),
				FilesUpdated:   updated,
				FilesErrored:   errored,
			}, results)

			if verbose {
				for _, result := range results {
					printResultDetail(out, result)
				}
			}

			fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 50))
			fmt.Fprintf(out, "Processed: %d files\n", len(results))
			fmt.Fprintf(out, "Updated: %d\n", updated)
			fmt.Fprintf(out, "Errors: %d\n", errored)
			if dryRun {
				fmt.Fprintln(out, "\n[DRY RUN - no files were modified]")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without writing files")
	cmd.Flags().BoolVar(&recursive, "recursive", true, "Descend into subfolders")
	cmd.Flags().BoolVar(&skipFetch, "skip-fetch", false, "Skip external summary lookups")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print per-file results")
	return cmd
}

func printResultDetail(out io.Writer, result engine.Result) {
	switch {
	case result.Failed():
		fmt.Fprintf(out, "  error    %s: %s\n", result.FilePath, result.Error)
	case result.Updated:
		fmt.Fprintf(out, "  updated  %s (filled: %s)\n", result.FilePath, strings.Join(result.FilledNames(), ", "))
	default:
		fmt.Fprintf(out, "  ok       %s\n", result.FilePath)
	}
}

// recordRun journals the batch. History is best-effort: a journal failure is
// logged but never fails the run that already happened.
func recordRun(cmdCtx context.Context, ctx *commandContext, run journal.Run, results []engine.Result) {
	cfg, err := ctx.ensureConfig()
	if err != nil || cfg.Paths.JournalPath == "" {
		return
	}
	store, err := journal.Open(cfg.Paths.JournalPath)
	if err != nil {
		ctx.logger().Warn("journal unavailable", slog.String("error", err.Error()))
		return
	}
	defer store.Close()

	records := make([]journal.FileResult, 0, len(results))
	for _, result := range results {
		records = append(records, journal.FileResult{
			FilePath:       result.FilePath,
			Term:           result.Term,
			Updated:        result.Updated,
			SectionsFilled: result.FilledNames(),
			Contradictions: result.ContradictionsFound,
			ReviewFlags:    result.ReviewFlags,
			Error:          result.Error,
		})
	}
	if err := store.RecordRun(cmdCtx, run, records); err != nil {
		ctx.logger().Warn("journal write failed", slog.String("error", err.Error()))
	}
}
