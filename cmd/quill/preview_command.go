package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quill/internal/document"
	"quill/internal/generate"
	"quill/internal/services/wikipedia"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var skipFetch bool

	cmd := &cobra.Command{
		Use:   "preview <term>",
		Short: "Show what the engine would generate for a term",
		Long: `Preview fetches an external summary for the term (unless --skip-fetch)
and prints every section the engine can generate. Nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := args[0]
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var summarizer wikipedia.Summarizer = wikipedia.NullSummarizer{}
			if cfg.Wikipedia.Enabled && !skipFetch {
				summarizer = wikipedia.NewClient(wikipedia.Config{
					BaseURL:        cfg.Wikipedia.BaseURL,
					UserAgent:      cfg.Wikipedia.UserAgent,
					SentenceCount:  cfg.Wikipedia.SentenceCount,
					TimeoutSeconds: cfg.Wikipedia.TimeoutSeconds,
				}, wikipedia.WithLogger(ctx.logger()))
			}

			summary, found := summarizer.Summary(cmd.Context(), term, nil)
			sections := generate.New(cfg.Engine.Framework).All(term, summary)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Preview for %q\n\n", term)
			if found {
				fmt.Fprintf(out, "External summary:\n%s\n\n", summary)
			} else {
				fmt.Fprintf(out, "External summary: none found\n\n")
			}
			for _, key := range document.CanonicalOrder {
				body, ok := sections[key]
				if !ok {
					continue
				}
				fmt.Fprintf(out, "%s\n\n%s\n\n", document.CanonicalHeaders[key], body)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipFetch, "skip-fetch", false, "Skip the external summary lookup")
	return cmd
}
