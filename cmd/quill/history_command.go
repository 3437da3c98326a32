package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"quill/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recent engine runs from the journal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := journal.Open(cfg.Paths.JournalPath)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()

			if len(args) == 1 {
				results, err := store.RunResults(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("load run results: %w", err)
				}
				if len(results) == 0 {
					fmt.Fprintf(out, "No results recorded for run %s\n", args[0])
					return nil
				}
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					status := "ok"
					switch {
					case result.Error != "":
						status = "error"
					case result.Updated:
						status = "updated"
					}
					rows = append(rows, []string{
						result.Term,
						status,
						strconv.Itoa(len(result.SectionsFilled)),
						strconv.Itoa(len(result.Contradictions)),
						strconv.Itoa(len(result.ReviewFlags)),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Term", "Status", "Filled", "Contradictions", "Flags"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			}

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("load runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Local().Format(time.DateTime),
					run.Folder,
					yesNo(run.DryRun),
					strconv.Itoa(run.FilesProcessed),
					strconv.Itoa(run.FilesUpdated),
					strconv.Itoa(run.FilesErrored),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Started", "Folder", "Dry Run", "Processed", "Updated", "Errors"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}
