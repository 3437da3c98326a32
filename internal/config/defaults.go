package config

const (
	defaultLogDir         = "~/.local/share/quill/logs"
	defaultJournalPath    = "~/.local/share/quill/journal.db"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultFramework      = "Theophysics"
	defaultWikipediaURL   = "https://en.wikipedia.org/api/rest_v1"
	defaultSentenceCount  = 4
	defaultTimeoutSeconds = 15
	defaultUserAgent      = "quill/dev (https://github.com/quill)"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			JournalPath: defaultJournalPath,
		},
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Engine: Engine{
			Framework: defaultFramework,
			Recursive: true,
		},
		Wikipedia: Wikipedia{
			Enabled:        true,
			BaseURL:        defaultWikipediaURL,
			SentenceCount:  defaultSentenceCount,
			TimeoutSeconds: defaultTimeoutSeconds,
			UserAgent:      defaultUserAgent,
		},
	}
}
