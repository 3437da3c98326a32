package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"quill/internal/engine"
)

// newProgressReporter returns a progress callback and a finish function. On a
// terminal it drives an interactive bar; elsewhere it stays silent so piped
// output remains clean.
func newProgressReporter(out io.Writer) (engine.ProgressFunc, func()) {
	file, ok := out.(*os.File)
	if !ok || !isTerminal(file.Fd()) {
		return nil, func() {}
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
	)
	progress := func(percent int, message string) {
		bar.Describe(message)
		_ = bar.Set(percent)
	}
	finish := func() {
		_ = bar.Finish()
	}
	return progress, finish
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
