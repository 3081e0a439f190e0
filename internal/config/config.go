// Load envs from .env
// Load YAML config over defaults
// Override with env vars
// Validate config

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Browser
	Headless      bool `yaml:"headless" env:"SCRAPER_HEADLESS"`
	PageDelayMs   int  `yaml:"page_delay_ms"`
	NavTimeoutMs  int  `yaml:"nav_timeout_ms"`
	ScrollResults bool `yaml:"scroll_results"`
	//Paths
	OutputDir     string `yaml:"output_dir"`
	CookiesFile   string `yaml:"cookies_file"`
	CachePath     string `yaml:"cache_path"`
	ScreenshotDir string `yaml:"screenshot_dir"`

	Selectors Selectors `yaml:"selectors"`
}

// Default returns the configuration used when no file or env var is present.
func Default() *Config {
	return &Config{
		Headless:     false,
		PageDelayMs:  6000,
		NavTimeoutMs: 30000,
		OutputDir:    ".",
		Selectors: Selectors{
			Links:    DefaultLinksSelector,
			Company:  DefaultCompanySelector,
			Role:     DefaultRoleSelector,
			Location: DefaultLocationSelector,
			Salary:   DefaultSalarySelector,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Printf("ℹ️ No config file at %s, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}

	if headless := os.Getenv("SCRAPER_HEADLESS"); headless != "" {
		v, err := strconv.ParseBool(headless)
		if err != nil {
			return fmt.Errorf("invalid SCRAPER_HEADLESS: %w", err)
		}
		c.Headless = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.PageDelayMs < 0 {
		return fmt.Errorf("page_delay_ms must not be negative, got %d", c.PageDelayMs)
	}
	if c.NavTimeoutMs <= 0 {
		return fmt.Errorf("nav_timeout_ms must be positive, got %d", c.NavTimeoutMs)
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	if _, err := c.Selectors.Compile(); err != nil {
		return err
	}
	return nil
}

func (c *Config) PageDelay() time.Duration {
	return time.Duration(c.PageDelayMs) * time.Millisecond
}

func (c *Config) NavTimeout() time.Duration {
	return time.Duration(c.NavTimeoutMs) * time.Millisecond
}

// NotifyEnabled reports whether a Telegram run summary should be sent.
func (c *Config) NotifyEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
