package journal

import "time"

// Run summarizes one engine batch.
type Run struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	Folder         string
	DryRun         bool
	FilesProcessed int
	FilesUpdated   int
	FilesErrored   int
}

// FileResult is the per-file record attached to a run.
type FileResult struct {
	FilePath       string
	Term           string
	Updated        bool
	SectionsFilled []string
	Contradictions []string
	ReviewFlags    []string
	Error          string
}
