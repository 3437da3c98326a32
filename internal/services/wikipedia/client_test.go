package wikipedia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func summaryHandler(t *testing.T, pages map[string]summaryResponse) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		const prefix = "/page/summary/"
		if len(r.URL.Path) <= len(prefix) {
			http.NotFound(w, r)
			return
		}
		title := r.URL.Path[len(prefix):]
		page, ok := pages[title]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(page)
	}
}

func TestSummaryTriesAliasesInOrder(t *testing.T) {
	pages := map[string]summaryResponse{
		"Word Field": {Type: "standard", Extract: "One. Two. Three. Four. Five."},
	}
	srv := httptest.NewServer(summaryHandler(t, pages))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, SentenceCount: 2})
	got, ok := client.Summary(context.Background(), "Logos Field", []string{"Nonexistent", "Word Field"})
	if !ok {
		t.Fatal("expected a summary")
	}
	if got != "One. Two." {
		t.Fatalf("summary = %q", got)
	}
}

func TestSummaryMissesResolveToFalse(t *testing.T) {
	srv := httptest.NewServer(summaryHandler(t, nil))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, ok := client.Summary(context.Background(), "Missing", []string{"Also Missing"}); ok {
		t.Fatal("expected a miss")
	}
}

func TestSummaryAbsorbsNetworkFailure(t *testing.T) {
	client := NewClient(
		Config{BaseURL: "http://127.0.0.1:0", TimeoutSeconds: 1},
		WithRetry(1, 0),
		WithSleeper(func(time.Duration) {}),
	)
	if _, ok := client.Summary(context.Background(), "Anything", nil); ok {
		t.Fatal("network failure must degrade to a miss")
	}
}

func TestSummaryResolvesDisambiguation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/page/related/"):
			_ = json.NewEncoder(w).Encode(relatedResponse{Pages: []struct {
				Title string `json:"title"`
			}{{Title: "Mercury (planet)"}}})
		case strings.HasSuffix(r.URL.Path, "/Mercury"):
			_ = json.NewEncoder(w).Encode(summaryResponse{Type: "disambiguation"})
		default:
			_ = json.NewEncoder(w).Encode(summaryResponse{Type: "standard", Extract: "The smallest planet."})
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	got, ok := client.Summary(context.Background(), "Mercury", nil)
	if !ok || got != "The smallest planet." {
		t.Fatalf("summary = %q, ok = %v", got, ok)
	}
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(summaryResponse{Type: "standard", Extract: "Recovered."})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, WithSleeper(func(time.Duration) {}))
	got, ok := client.Summary(context.Background(), "Flaky", nil)
	if !ok || got != "Recovered." {
		t.Fatalf("summary = %q, ok = %v", got, ok)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestNullSummarizer(t *testing.T) {
	if _, ok := (NullSummarizer{}).Summary(context.Background(), "Anything", nil); ok {
		t.Fatal("null summarizer must always miss")
	}
}
