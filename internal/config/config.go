package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for venturecast.
type Config struct {
	Scraper ScraperConfig  `mapstructure:"scraper" yaml:"scraper"`
	Script  ScriptConfig   `mapstructure:"script"  yaml:"script"`
	TTS     TTSConfig      `mapstructure:"tts"     yaml:"tts"`
	Output  OutputConfig   `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Sources []SourceConfig `mapstructure:"sources" yaml:"sources"`
}

// ScraperConfig controls the content aggregation pipeline.
type ScraperConfig struct {
	Concurrency         int           `mapstructure:"concurrency"          yaml:"concurrency"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"      yaml:"request_timeout"`
	MaxBodySize         int64         `mapstructure:"max_body_size"        yaml:"max_body_size"`
	MaxRetries          int           `mapstructure:"max_retries"          yaml:"max_retries"`
	RetryDelay          time.Duration `mapstructure:"retry_delay"          yaml:"retry_delay"`
	UserAgent           string        `mapstructure:"user_agent"           yaml:"user_agent"`
	SimilarityThreshold float64       `mapstructure:"similarity_threshold" yaml:"similarity_threshold"`
}

// SourceConfig describes one content origin and the structural rules
// used to extract posts from it.
type SourceConfig struct {
	// Name is the source's display name, carried onto every post.
	Name string `mapstructure:"name" yaml:"name"`

	// URL is the entry page listing recent posts.
	URL string `mapstructure:"url" yaml:"url"`

	// Engine selects the selector dialect: "css" or "xpath".
	Engine string `mapstructure:"engine" yaml:"engine"`

	// ArticleSelector matches each article-like element on the entry page.
	ArticleSelector string `mapstructure:"article_selector" yaml:"article_selector"`

	// TitleSelector matches the title element within an article.
	TitleSelector string `mapstructure:"title_selector" yaml:"title_selector"`

	// DateSelector matches the publication date element within an article.
	DateSelector string `mapstructure:"date_selector" yaml:"date_selector"`

	// ContentSelector matches the body text element within an article.
	ContentSelector string `mapstructure:"content_selector" yaml:"content_selector"`
}

// ScriptConfig controls podcast-script generation.
type ScriptConfig struct {
	APIKey      string        `mapstructure:"api_key"      yaml:"api_key"`
	BaseURL     string        `mapstructure:"base_url"     yaml:"base_url"`
	Model       string        `mapstructure:"model"        yaml:"model"`
	TargetWords int           `mapstructure:"target_words" yaml:"target_words"`
	MinWords    int           `mapstructure:"min_words"    yaml:"min_words"`
	MaxRetries  int           `mapstructure:"max_retries"  yaml:"max_retries"`
	Timeout     time.Duration `mapstructure:"timeout"      yaml:"timeout"`
}

// TTSConfig controls text-to-speech conversion.
type TTSConfig struct {
	APIKey          string        `mapstructure:"api_key"          yaml:"api_key"`
	BaseURL         string        `mapstructure:"base_url"         yaml:"base_url"`
	VoiceID         string        `mapstructure:"voice_id"         yaml:"voice_id"`
	ModelID         string        `mapstructure:"model_id"         yaml:"model_id"`
	Stability       float64       `mapstructure:"stability"        yaml:"stability"`
	SimilarityBoost float64       `mapstructure:"similarity_boost" yaml:"similarity_boost"`
	MaxRetries      int           `mapstructure:"max_retries"      yaml:"max_retries"`
	RetryDelay      time.Duration `mapstructure:"retry_delay"      yaml:"retry_delay"`
	Timeout         time.Duration `mapstructure:"timeout"          yaml:"timeout"`
}

// OutputConfig controls where generated artifacts are written.
type OutputConfig struct {
	Dir          string `mapstructure:"dir"           yaml:"dir"`
	SaveScript   bool   `mapstructure:"save_script"   yaml:"save_script"`
	SaveDocument bool   `mapstructure:"save_document" yaml:"save_document"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scraper: ScraperConfig{
			Concurrency:         5,
			RequestTimeout:      10 * time.Second,
			MaxBodySize:         10 * 1024 * 1024, // 10MB
			MaxRetries:          3,
			RetryDelay:          2 * time.Second,
			UserAgent:           "venturecast-bot/" + Version,
			SimilarityThreshold: 0.85,
		},
		Script: ScriptConfig{
			Model:       "gpt-4o",
			TargetWords: 2000, // approximately 12-15 minutes spoken
			MinWords:    100,
			MaxRetries:  3,
			Timeout:     2 * time.Minute,
		},
		TTS: TTSConfig{
			BaseURL:         "https://api.elevenlabs.io",
			VoiceID:         "21m00Tcm4TlvDq8ikWAM", // Rachel
			ModelID:         "eleven_monolingual_v1",
			Stability:       0.5,
			SimilarityBoost: 0.75,
			MaxRetries:      3,
			RetryDelay:      2 * time.Second,
			Timeout:         5 * time.Minute,
		},
		Output: OutputConfig{
			Dir:          "./output",
			SaveScript:   true,
			SaveDocument: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Sources: DefaultSources(),
	}
}
