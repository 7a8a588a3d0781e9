package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"RiskFrontier/internal/analysis"
	"RiskFrontier/internal/collector"
	"RiskFrontier/internal/config"
	"RiskFrontier/internal/notifier"
	"RiskFrontier/internal/recorder"
	"RiskFrontier/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] RiskFrontier starting...")

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, relying on environment variables")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	assets := make([]collector.Asset, len(cfg.Assets))
	for i, a := range cfg.Assets {
		assets[i] = collector.Asset{Symbol: a.Symbol, Alias: a.Alias}
	}
	col := collector.NewCollector(fetcher, assets)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	var n notifier.Notifier
	if cfg.TelegramEnabled() {
		n = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	pairs := make([]analysis.Pair, len(cfg.Pairs))
	for i, p := range cfg.Pairs {
		pairs[i] = analysis.Pair{A: p.A, B: p.B}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.NewScheduler(ctx, col, rec, n, os.Stdout, scheduler.Options{
		Pairs:      pairs,
		GridPoints: cfg.Frontier.GridPoints,
		Lookback:   time.Duration(cfg.DataSource.LookbackDays) * 24 * time.Hour,
	})

	// One-shot mode
	if cfg.Schedule.Cron == "" {
		if _, err := sched.RunNow(); err != nil {
			log.Printf("[ERROR] analysis failed: %v", err)
			rec.Close()
			os.Exit(1)
		}
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, running analysis now")
		go func() {
			if _, err := sched.RunNow(); err != nil {
				log.Printf("[ERROR] analysis: %v", err)
			}
		}()
	}

	log.Printf("[INFO] RiskFrontier is running on %q. Press Ctrl+C to stop.", cfg.Schedule.Cron)
	<-ctx.Done()
	log.Println("[INFO] shutdown signal received, stopping...")
}
