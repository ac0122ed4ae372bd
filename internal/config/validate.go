package config

import (
	"fmt"
	"net/url"
)

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg.Scraper.Concurrency < 1 {
		return fmt.Errorf("scraper.concurrency must be >= 1, got %d", cfg.Scraper.Concurrency)
	}
	if cfg.Scraper.RequestTimeout <= 0 {
		return fmt.Errorf("scraper.request_timeout must be > 0")
	}
	if cfg.Scraper.MaxBodySize <= 0 {
		return fmt.Errorf("scraper.max_body_size must be > 0")
	}
	if cfg.Scraper.MaxRetries < 1 {
		return fmt.Errorf("scraper.max_retries must be >= 1, got %d", cfg.Scraper.MaxRetries)
	}
	if cfg.Scraper.RetryDelay < 0 {
		return fmt.Errorf("scraper.retry_delay must be >= 0")
	}
	if cfg.Scraper.SimilarityThreshold <= 0 || cfg.Scraper.SimilarityThreshold >= 1 {
		return fmt.Errorf("scraper.similarity_threshold must be in (0, 1), got %g", cfg.Scraper.SimilarityThreshold)
	}

	if cfg.Script.Model == "" {
		return fmt.Errorf("script.model must not be empty")
	}
	if cfg.Script.MinWords < 1 {
		return fmt.Errorf("script.min_words must be >= 1, got %d", cfg.Script.MinWords)
	}
	if cfg.Script.TargetWords < cfg.Script.MinWords {
		return fmt.Errorf("script.target_words (%d) must be >= script.min_words (%d)",
			cfg.Script.TargetWords, cfg.Script.MinWords)
	}
	if cfg.Script.MaxRetries < 1 {
		return fmt.Errorf("script.max_retries must be >= 1, got %d", cfg.Script.MaxRetries)
	}

	if cfg.TTS.VoiceID == "" {
		return fmt.Errorf("tts.voice_id must not be empty")
	}
	if cfg.TTS.MaxRetries < 1 {
		return fmt.Errorf("tts.max_retries must be >= 1, got %d", cfg.TTS.MaxRetries)
	}

	if cfg.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", cfg.Logging.Format)
	}

	if len(cfg.Sources) == 0 {
		return fmt.Errorf("at least one source must be configured")
	}
	for i, src := range cfg.Sources {
		if err := validateSource(src); err != nil {
			return fmt.Errorf("sources[%d]: %w", i, err)
		}
	}

	return nil
}

// validateSource checks a single source descriptor.
func validateSource(src SourceConfig) error {
	if src.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	u, err := url.Parse(src.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", src.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url must have a host")
	}
	if src.Engine != "css" && src.Engine != "xpath" {
		return fmt.Errorf("engine must be 'css' or 'xpath', got %q", src.Engine)
	}
	if src.ArticleSelector == "" {
		return fmt.Errorf("article_selector must not be empty")
	}
	if src.TitleSelector == "" {
		return fmt.Errorf("title_selector must not be empty")
	}
	if src.DateSelector == "" {
		return fmt.Errorf("date_selector must not be empty")
	}
	return nil
}
