package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AssetConfig is one instrument to analyse.
type AssetConfig struct {
	Symbol string `yaml:"symbol"`
	Alias  string `yaml:"alias"`
}

// Name returns the alias, falling back to the symbol.
func (a AssetConfig) Name() string {
	if a.Alias != "" {
		return a.Alias
	}
	return a.Symbol
}

// PairConfig names two assets (by alias) for a frontier sweep.
type PairConfig struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// Config holds all application configuration.
type Config struct {
	Assets     []AssetConfig `yaml:"assets"`
	Pairs      []PairConfig  `yaml:"pairs"`
	DataSource struct {
		BaseURL      string `yaml:"base_url"`
		APIKey       string `yaml:"api_key"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"data_source"`
	Frontier struct {
		GridPoints int `yaml:"grid_points"`
	} `yaml:"frontier"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error: defaults reproduce the classic
// SP500/VIX/BABA/EBAY exercise over a four-year window.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("REST_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("REST_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse LOOKBACK_DAYS: %w", err)
		}
		cfg.DataSource.LookbackDays = n
	}
	if v := os.Getenv("GRID_POINTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse GRID_POINTS: %w", err)
		}
		cfg.Frontier.GridPoints = n
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}

	// Defaults
	if len(cfg.Assets) == 0 {
		cfg.Assets = []AssetConfig{
			{Symbol: "^GSPC", Alias: "SP500"},
			{Symbol: "^VIX", Alias: "VIX"},
			{Symbol: "BABA"},
			{Symbol: "EBAY"},
		}
	}
	if len(cfg.Pairs) == 0 {
		cfg.Pairs = []PairConfig{{A: "BABA", B: "EBAY"}, {A: "SP500", B: "VIX"}}
	}
	if cfg.DataSource.LookbackDays == 0 {
		cfg.DataSource.LookbackDays = 4 * 365
	}
	if cfg.Frontier.GridPoints == 0 {
		cfg.Frontier.GridPoints = 51
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable analysis.
func (c *Config) Validate() error {
	if len(c.Assets) < 2 {
		return fmt.Errorf("assets: at least 2 are required, got %d", len(c.Assets))
	}
	names := make(map[string]bool, len(c.Assets))
	for i, a := range c.Assets {
		if a.Symbol == "" {
			return fmt.Errorf("assets[%d].symbol is required", i)
		}
		if names[a.Name()] {
			return fmt.Errorf("assets[%d]: duplicate name %q", i, a.Name())
		}
		names[a.Name()] = true
	}
	seen := make(map[PairConfig]bool, len(c.Pairs))
	for i, p := range c.Pairs {
		if seen[p] {
			return fmt.Errorf("pairs[%d]: duplicate pair %s/%s", i, p.A, p.B)
		}
		seen[p] = true
		if !names[p.A] {
			return fmt.Errorf("pairs[%d].a: unknown asset %q", i, p.A)
		}
		if !names[p.B] {
			return fmt.Errorf("pairs[%d].b: unknown asset %q", i, p.B)
		}
		if p.A == p.B {
			return fmt.Errorf("pairs[%d]: assets must differ, got %q twice", i, p.A)
		}
	}
	if c.DataSource.LookbackDays <= 0 {
		return fmt.Errorf("data_source.lookback_days must be positive")
	}
	if c.Frontier.GridPoints < 2 {
		return fmt.Errorf("frontier.grid_points must be at least 2")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// TelegramEnabled reports whether report delivery is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
