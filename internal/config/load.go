package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg, filepath.Dir(path))
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize trims fields, fills defaults, and resolves the history
// path against the config directory.
func Normalize(cfg *Config, dir string) {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.RequestTimeout = strings.TrimSpace(cfg.RequestTimeout)
	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.QuestionsPerQuiz == 0 {
		cfg.QuestionsPerQuiz = DefaultQuestionsPerQuiz
	}
	cfg.HistoryDB = strings.TrimSpace(cfg.HistoryDB)
	if cfg.HistoryDB == "" {
		cfg.HistoryDB = DefaultHistoryDB
	}
	if cfg.HistoryDB != "off" && !filepath.IsAbs(cfg.HistoryDB) {
		cfg.HistoryDB = filepath.Join(dir, cfg.HistoryDB)
	}
}

// Validate checks the normalized config and caches derived values.
func Validate(cfg *Config) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("config: base_url is required")
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("config: base_url %q must be an http(s) URL", cfg.BaseURL)
	}
	timeout, err := time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("config: request_timeout %q: %w", cfg.RequestTimeout, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("config: request_timeout must be positive")
	}
	cfg.timeout = timeout
	if cfg.QuestionsPerQuiz < 0 {
		return fmt.Errorf("config: questions_per_quiz must not be negative")
	}
	return nil
}
