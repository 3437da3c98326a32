package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndReadBack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	run := Run{
		ID:             uuid.NewString(),
		StartedAt:      time.Now().Add(-time.Minute),
		FinishedAt:     time.Now(),
		Folder:         "/vault/glossary",
		DryRun:         true,
		FilesProcessed: 2,
		FilesUpdated:   1,
		FilesErrored:   1,
	}
	results := []FileResult{
		{
			FilePath:       "/vault/glossary/logos_field.md",
			Term:           "Logos Field",
			Updated:        true,
			SectionsFilled: []string{"core", "scientific"},
			ReviewFlags:    []string{"[REVIEW] core section is missing and was auto-filled or remains empty."},
		},
		{
			FilePath: "/vault/glossary/notes.md",
			Error:    "no structured sections found",
		},
	}
	if err := store.RecordRun(ctx, run, results); err != nil {
		t.Fatal(err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || !got.DryRun || got.FilesUpdated != 1 || got.Folder != run.Folder {
		t.Fatalf("run mismatch: %+v", got)
	}

	fileResults, err := store.RunResults(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(fileResults) != 2 {
		t.Fatalf("expected 2 results, got %d", len(fileResults))
	}
	if fileResults[0].Term != "Logos Field" || len(fileResults[0].SectionsFilled) != 2 {
		t.Fatalf("first result mismatch: %+v", fileResults[0])
	}
	if fileResults[1].Error != "no structured sections found" {
		t.Fatalf("second result mismatch: %+v", fileResults[1])
	}
}

func TestRecentRunsOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	var lastID string
	for i := 0; i < 3; i++ {
		run := Run{
			ID:         uuid.NewString(),
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
			Folder:     "/vault",
		}
		lastID = run.ID
		if err := store.RecordRun(ctx, run, nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != lastID {
		t.Fatalf("newest run should come first")
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.db")

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	run := Run{ID: uuid.NewString(), StartedAt: time.Now(), FinishedAt: time.Now(), Folder: "/vault"}
	if err := store.RecordRun(context.Background(), run, nil); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	runs, err := reopened.RecentRuns(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected persisted run, got %d", len(runs))
	}
}
