package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from file, environment, and defaults.
// Priority (highest to lowest): env vars > config file > defaults.
// API keys are typically supplied via VENTURECAST_SCRIPT_API_KEY and
// VENTURECAST_TTS_API_KEY (a .env file is loaded by the CLI before this
// runs).
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v, cfg)

	v.SetEnvPrefix("VENTURECAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("venturecast")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".venturecast"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if not explicitly specified
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// A config file may replace the source registry; an absent or empty
	// list falls back to the built-in sources.
	if len(cfg.Sources) == 0 {
		cfg.Sources = DefaultSources()
	}
	for i := range cfg.Sources {
		if cfg.Sources[i].Engine == "" {
			cfg.Sources[i].Engine = "css"
		}
	}

	return cfg, nil
}

// setDefaults registers default values in viper.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("scraper.concurrency", cfg.Scraper.Concurrency)
	v.SetDefault("scraper.request_timeout", cfg.Scraper.RequestTimeout)
	v.SetDefault("scraper.max_body_size", cfg.Scraper.MaxBodySize)
	v.SetDefault("scraper.max_retries", cfg.Scraper.MaxRetries)
	v.SetDefault("scraper.retry_delay", cfg.Scraper.RetryDelay)
	v.SetDefault("scraper.user_agent", cfg.Scraper.UserAgent)
	v.SetDefault("scraper.similarity_threshold", cfg.Scraper.SimilarityThreshold)

	v.SetDefault("script.api_key", cfg.Script.APIKey)
	v.SetDefault("script.base_url", cfg.Script.BaseURL)
	v.SetDefault("script.model", cfg.Script.Model)
	v.SetDefault("script.target_words", cfg.Script.TargetWords)
	v.SetDefault("script.min_words", cfg.Script.MinWords)
	v.SetDefault("script.max_retries", cfg.Script.MaxRetries)
	v.SetDefault("script.timeout", cfg.Script.Timeout)

	v.SetDefault("tts.api_key", cfg.TTS.APIKey)
	v.SetDefault("tts.base_url", cfg.TTS.BaseURL)
	v.SetDefault("tts.voice_id", cfg.TTS.VoiceID)
	v.SetDefault("tts.model_id", cfg.TTS.ModelID)
	v.SetDefault("tts.stability", cfg.TTS.Stability)
	v.SetDefault("tts.similarity_boost", cfg.TTS.SimilarityBoost)
	v.SetDefault("tts.max_retries", cfg.TTS.MaxRetries)
	v.SetDefault("tts.retry_delay", cfg.TTS.RetryDelay)
	v.SetDefault("tts.timeout", cfg.TTS.Timeout)

	v.SetDefault("output.dir", cfg.Output.Dir)
	v.SetDefault("output.save_script", cfg.Output.SaveScript)
	v.SetDefault("output.save_document", cfg.Output.SaveDocument)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}
