package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/venturecast/venturecast/internal/aggregate"
	"github.com/venturecast/venturecast/internal/config"
	"github.com/venturecast/venturecast/internal/extractor"
	"github.com/venturecast/venturecast/internal/fetcher"
	"github.com/venturecast/venturecast/internal/pipeline"
	"github.com/venturecast/venturecast/internal/scraper"
	"github.com/venturecast/venturecast/internal/script"
	"github.com/venturecast/venturecast/internal/storage"
	"github.com/venturecast/venturecast/internal/tts"
)

var (
	cfgFile     string
	verbose     bool
	weeks       = 1
	topic       string
	outputDir   string
	outputFile  string
	concurrency int
	threshold   float64
	skipAudio   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "venturecast",
		Short: "venturecast — VC blog podcast generator",
		Long: `venturecast aggregates recent posts from venture capital blogs and turns
them into a narrated podcast.

Pipeline:
  • Concurrent per-source scraping with retries and backoff
  • Selector-driven extraction (CSS or XPath per source)
  • Date-range filtering and fuzzy deduplication
  • Aggregation into a single markdown document
  • Narration script generation via an OpenAI-compatible chat API
  • Text-to-speech via ElevenLabs`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(scrapeCmd())
	rootCmd.AddCommand(sourcesCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// generateCmd creates the "generate" subcommand: the full pipeline from
// scrape to saved audio.
func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a podcast from recent VC blog posts",
		RunE:  runGenerate,
	}

	addScrapeFlags(cmd)
	cmd.Flags().StringVarP(&topic, "topic", "t", "artificial intelligence", "topic of interest")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")
	cmd.Flags().BoolVar(&skipAudio, "skip-audio", false, "stop after the script, skip text-to-speech")

	return cmd
}

// scrapeCmd creates the "scrape" subcommand: the aggregation core only,
// emitting the markdown document.
func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape and aggregate posts without generating audio",
		RunE:  runScrape,
	}

	addScrapeFlags(cmd)
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the document to a file instead of stdout")

	return cmd
}

func addScrapeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&weeks, "weeks", "w", 1, "number of weeks to look back (1-3)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "n", 0, "concurrent sources (0 = config default)")
	cmd.Flags().Float64Var(&threshold, "similarity-threshold", 0, "near-duplicate threshold in (0,1) (0 = config default)")
}

// sourcesCmd lists the configured source registry.
func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List configured sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			for _, src := range cfg.Sources {
				fmt.Printf("%-22s %-6s %s\n", src.Name, src.Engine, src.URL)
			}
			return nil
		},
	}
}

// configCmd prints the effective configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Printf("scraper:  concurrency=%d timeout=%s retries=%d threshold=%.2f\n",
				cfg.Scraper.Concurrency, cfg.Scraper.RequestTimeout, cfg.Scraper.MaxRetries, cfg.Scraper.SimilarityThreshold)
			fmt.Printf("script:   model=%s target_words=%d\n", cfg.Script.Model, cfg.Script.TargetWords)
			fmt.Printf("tts:      voice=%s model=%s\n", cfg.TTS.VoiceID, cfg.TTS.ModelID)
			fmt.Printf("output:   dir=%s save_script=%v\n", cfg.Output.Dir, cfg.Output.SaveScript)
			fmt.Printf("sources:  %d configured\n", len(cfg.Sources))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("venturecast", config.Version)
		},
	}
}

// runGenerate executes the full pipeline.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Logging)
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	ctx := cmd.Context()
	start, end := scraper.DateRange(weeks)

	document, err := runPipeline(ctx, cfg, logger, start, end)
	if err != nil {
		return err
	}
	if document == "" {
		return fmt.Errorf("no posts found between %s and %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	generator := script.New(cfg.Script, logger)
	narration, err := generator.Generate(ctx, document, topic, weeks*7)
	if err != nil {
		return err
	}

	writer, err := storage.NewWriter(cfg.Output.Dir, logger)
	if err != nil {
		return err
	}
	now := time.Now()

	if cfg.Output.SaveScript {
		if _, err := writer.SaveScript(narration, topic, now); err != nil {
			return err
		}
	}
	if cfg.Output.SaveDocument {
		if _, err := writer.SaveDocument(document, topic, now); err != nil {
			return err
		}
	}
	if skipAudio {
		logger.Info("skipping audio generation")
		return nil
	}

	speech := tts.New(cfg.TTS, logger)
	audio, err := speech.Synthesize(ctx, narration)
	if err != nil {
		return err
	}

	path, err := writer.SaveAudio(audio, topic, now)
	if err != nil {
		return err
	}

	logger.Info("podcast generated",
		"path", path,
		"minutes", fmt.Sprintf("%.1f", script.EstimateDuration(narration)),
	)
	return nil
}

// runScrape executes the aggregation core and emits the document.
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Logging)

	start, end := scraper.DateRange(weeks)
	document, err := runPipeline(cmd.Context(), cfg, logger, start, end)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(document), 0o644); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		logger.Info("document written", "path", outputFile)
		return nil
	}

	fmt.Print(document)
	return nil
}

// runPipeline runs scrape -> dedup -> render and returns the document.
func runPipeline(ctx context.Context, cfg *config.Config, logger *slog.Logger, start, end time.Time) (string, error) {
	fetch := fetcher.New(&cfg.Scraper, logger)
	defer fetch.Close()

	s := scraper.New(cfg, fetch, extractor.New(logger), pipeline.Default(logger), logger)

	posts, err := s.ScrapeAll(ctx, start, end)
	if err != nil {
		return "", err
	}

	unique := aggregate.Deduplicate(posts, cfg.Scraper.SimilarityThreshold)
	logger.Info("deduplicated posts", "before", len(posts), "after", len(unique))

	return aggregate.Render(unique), nil
}

// loadConfig loads .env, the config file, and CLI overrides.
func loadConfig() (*config.Config, error) {
	// API keys commonly live in a .env file, as with the hosted setups.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if concurrency > 0 {
		cfg.Scraper.Concurrency = concurrency
	}
	if threshold > 0 {
		cfg.Scraper.SimilarityThreshold = threshold
	}
	if weeks < 1 || weeks > 3 {
		return nil, fmt.Errorf("--weeks must be 1, 2, or 3, got %d", weeks)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogger builds the process logger from config; --verbose forces
// debug level.
func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
