package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quill/internal/textutil"
)

const (
	defaultBaseURL       = "https://en.wikipedia.org/api/rest_v1"
	defaultSentenceCount = 4
	defaultHTTPTimeout   = 15 * time.Second
	defaultRetryAttempts = 3
	defaultRetryDelay    = 500 * time.Millisecond
)

// Config captures the runtime settings for the summary endpoint.
type Config struct {
	BaseURL        string
	UserAgent      string
	SentenceCount  int
	TimeoutSeconds int
}

// Client talks to the Wikipedia REST summary API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger

	retryAttempts int
	retryDelay    time.Duration
	sleeper       func(time.Duration)
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a logger for fetch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRetry overrides the retry count and delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

// WithSleeper overrides how retry sleeps are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(c *Client) {
		c.sleeper = sleeper
	}
}

// NewClient constructs a summary client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.SentenceCount <= 0 {
		cfg.SentenceCount = defaultSentenceCount
	}
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg:           cfg,
		httpClient:    &http.Client{Timeout: timeout},
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
		sleeper:       time.Sleep,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type summaryResponse struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

type relatedResponse struct {
	Pages []struct {
		Title string `json:"title"`
	} `json:"pages"`
}

// Summary tries the term, then each alias in order, returning the first
// summary found, truncated to the configured sentence count. Disambiguation
// pages are resolved through the first related page before giving up on a
// title. All failures degrade to a miss.
func (c *Client) Summary(ctx context.Context, term string, aliases []string) (string, bool) {
	titles := append([]string{term}, aliases...)
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		extract, err := c.fetchSummary(ctx, title, true)
		if err != nil {
			c.logMiss(title, err)
			continue
		}
		if extract != "" {
			return textutil.LimitSentences(extract, c.cfg.SentenceCount), true
		}
	}
	return "", false
}

// fetchSummary resolves one title. followDisambiguation guards against
// disambiguation chains recursing more than one hop.
func (c *Client) fetchSummary(ctx context.Context, title string, followDisambiguation bool) (string, error) {
	var resp summaryResponse
	if err := c.getJSON(ctx, "/page/summary/"+url.PathEscape(title), &resp); err != nil {
		return "", err
	}
	if resp.Type == "disambiguation" {
		if !followDisambiguation {
			return "", nil
		}
		candidate, err := c.firstRelatedTitle(ctx, title)
		if err != nil || candidate == "" {
			return "", err
		}
		return c.fetchSummary(ctx, candidate, false)
	}
	return strings.TrimSpace(resp.Extract), nil
}

func (c *Client) firstRelatedTitle(ctx context.Context, title string) (string, error) {
	var resp relatedResponse
	if err := c.getJSON(ctx, "/page/related/"+url.PathEscape(title), &resp); err != nil {
		return "", err
	}
	if len(resp.Pages) == 0 {
		return "", nil
	}
	return resp.Pages[0].Title, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	var lastErr error
	for attempt := 0; attempt < c.attempts(); attempt++ {
		if attempt > 0 {
			c.sleep(c.retryDelay * time.Duration(attempt))
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.cfg.UserAgent != "" {
			req.Header.Set("User-Agent", c.cfg.UserAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("summary request: %w", err)
			continue
		}
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		_ = resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				lastErr = fmt.Errorf("read response: %w", readErr)
				continue
			}
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil
		case resp.StatusCode == http.StatusNotFound:
			// Not retryable: the page simply does not exist.
			return fmt.Errorf("summary request: http %d", resp.StatusCode)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("summary request: http %d", resp.StatusCode)
			continue
		default:
			return fmt.Errorf("summary request: http %d", resp.StatusCode)
		}
	}
	return lastErr
}

func (c *Client) attempts() int {
	if c.retryAttempts < 1 {
		return 1
	}
	return c.retryAttempts
}

func (c *Client) sleep(d time.Duration) {
	if c.sleeper != nil {
		c.sleeper(d)
	}
}

func (c *Client) logMiss(title string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Debug("summary lookup missed", slog.String("title", title), slog.Any("error", err))
}
