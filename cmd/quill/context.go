package main

import (
	"log/slog"
	"strings"
	"sync"

	"quill/internal/config"
	"quill/internal/engine"
	"quill/internal/generate"
	"quill/internal/logging"
	"quill/internal/services/wikipedia"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.NewNop()
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

// newEngine assembles the merge engine from configuration. The summarizer is
// the null object when external fetching is disabled or skipped, so the
// engine never has to know why summaries are unavailable.
func (c *commandContext) newEngine(skipFetch bool) (*engine.Engine, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger := c.logger()

	var summarizer wikipedia.Summarizer = wikipedia.NullSummarizer{}
	if cfg.Wikipedia.Enabled && !skipFetch {
		summarizer = wikipedia.NewClient(wikipedia.Config{
			BaseURL:        cfg.Wikipedia.BaseURL,
			UserAgent:      cfg.Wikipedia.UserAgent,
			SentenceCount:  cfg.Wikipedia.SentenceCount,
			TimeoutSeconds: cfg.Wikipedia.TimeoutSeconds,
		}, wikipedia.WithLogger(logger))
	}

	return engine.New(generate.New(cfg.Engine.Framework), summarizer, logger), nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
