// Package config loads the client configuration from a .quizdeck
// directory, searched upward from the working directory with the home
// directory as the final fallback.
package config

import "time"

// Config is the parsed client configuration.
type Config struct {
	// BaseURL is the backend server, e.g. http://localhost:5001.
	BaseURL string `yaml:"base_url"`
	// RequestTimeout is a Go duration string for API calls.
	RequestTimeout string `yaml:"request_timeout"`
	// QuestionsPerQuiz is the requested upper bound per quiz. The
	// backend may return fewer.
	QuestionsPerQuiz int `yaml:"questions_per_quiz"`
	// HistoryDB is the local attempt-history database path, relative
	// paths resolving against the config directory. "off" disables it.
	HistoryDB string `yaml:"history_db"`

	timeout time.Duration
}

// Timeout returns the parsed request timeout. Valid after Load.
func (c Config) Timeout() time.Duration {
	return c.timeout
}

// HistoryEnabled reports whether local attempt history is on.
func (c Config) HistoryEnabled() bool {
	return c.HistoryDB != "off"
}

// Defaults applied during normalization.
const (
	DefaultRequestTimeout   = "30s"
	DefaultQuestionsPerQuiz = 40
	DefaultHistoryDB        = "history.duckdb"
)
