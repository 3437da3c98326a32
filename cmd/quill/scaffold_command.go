package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/engine"
)

func newScaffoldCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var recursive bool

	cmd := &cobra.Command{
		Use:   "scaffold <folder>",
		Short: "Inject the section template into unstructured markdown files",
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

			eng, err := ctx.newEngine(true)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			progress, finish := newProgressReporter(out)
			results, err := eng.ScaffoldFolder(cmd.Context(), folder, engine.Options{
				DryRun:    dryRun,
				Recursive: recursive,
			}, progress)
			finish()
			if err != nil {
				return err
			}

			var injected, skipped, errored int
			for _, result := range results {
				switch result.Action {
				case engine.ScaffoldInjected:
					injected++
					fmt.Fprintf(out, "  injected %s (%s)\n", result.FilePath, result.Term)
				case engine.ScaffoldError:
					errored++
					fmt.Fprintf(out, "  error    %s: %s\n", result.FilePath, result.Reason)
				default:
					skipped++
				}
			}

			fmt.Fprintf(out, "\nInjected: %d\nSkipped: %d\nErrors: %d\n", injected, skipped, errored)
			if dryRun {
				fmt.Fprintln(out, "\n[DRY RUN - no files were modified]")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without writing files")
	cmd.Flags().BoolVar(&recursive, "recursive", true, "Descend into subfolders")
	return cmd
}
