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

	"github.com/HuskyLLM/husky-scraper/internal/app"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath string
		userAgent  string
		timeout    time.Duration
		reportPDF  string
		verbose    bool
	)
	flag.StringVar(&configPath, "config", "configs/scraper_config.yaml", "Path to the scraping task configuration (YAML or JSON)")
	flag.StringVar(&userAgent, "ua", "husky-scraper/1.0 (+https://github.com/HuskyLLM/husky-scraper)", "User-Agent for catalog requests")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")
	flag.StringVar(&reportPDF, "report.pdf", "", "Optional path for a PDF digest of the run")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// An absent or unreadable configuration is the one fatal error: nothing
	// is fetched without a task table.
	fc, err := app.LoadConfigFile(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", configPath).Msg("load configuration failed")
	}
	cfg := app.Config{
		Tasks:     fc.ScrapingTasks,
		UserAgent: userAgent,
		Timeout:   timeout,
		ReportPDF: reportPDF,
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.TimeoutSecs > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSecs) * time.Second
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(cfg).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("scrape run failed")
	}
	log.Info().Msg("scrape run complete")
}
