package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/HuskyLLM/husky-scraper/internal/cache"
	"github.com/HuskyLLM/husky-scraper/internal/llm"
	"github.com/HuskyLLM/husky-scraper/internal/synth"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputDir  string
		outputDir string
		baseURL   string
		model     string
		apiKey    string
		cacheDir  string
		pause     time.Duration
		verbose   bool
	)
	flag.StringVar(&inputDir, "in", "results/raw", "Directory of scraped JSON files")
	flag.StringVar(&outputDir, "out", "results/refined", "Directory for generated JSONL datasets")
	flag.StringVar(&baseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL (empty for api.openai.com)")
	flag.StringVar(&model, "llm.model", envOr("LLM_MODEL", "gpt-4o"), "Model name")
	flag.StringVar(&apiKey, "llm.key", os.Getenv("OPENAI_API_KEY"), "API key")
	flag.StringVar(&cacheDir, "cache.dir", ".husky-cache", "LLM response cache directory (empty disables)")
	flag.DurationVar(&pause, "pause", 30*time.Second, "Wait between API calls")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	transportCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		transportCfg.BaseURL = baseURL
	}
	builder := &synth.Builder{
		Client: &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)},
		Model:  model,
		Pause:  pause,
	}
	if cacheDir != "" {
		builder.Cache = &cache.LLMCache{Dir: cacheDir}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errFiles, err := builder.Run(ctx, inputDir, outputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset run failed")
	}
	if len(errFiles) > 0 {
		log.Warn().Strs("files", errFiles).Int("count", len(errFiles)).Msg("some files failed")
		os.Exit(1)
	}
	log.Info().Msg("dataset run complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
