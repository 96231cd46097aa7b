package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings" // For LogLevel normalization

	"github.com/joho/godotenv"
)

const (
	StoreBackendJSON     = "json"
	StoreBackendPostgres = "postgres"

	NotifierDesktop  = "desktop"
	NotifierTelegram = "telegram"
	NotifierLog      = "log"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	LogLevel       string
	Environment    string
	HomeDir        string // Root of the per-user reminder directory
	DataFile       string
	PhotosDir      string
	PhotoExt       string
	AppName        string
	StoreBackend   string
	DatabaseURL    string
	Notifier       string
	TelegramToken  string
	TelegramChatID int64
	CronSpec       string // For the daemon mode
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.HomeDir = os.Getenv("REMINDER_HOME")
	if cfg.HomeDir == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("REMINDER_HOME is not set and home directory is unknown: %w", err)
		}
		cfg.HomeDir = filepath.Join(userHome, ".birthdays_reminder")
	}

	cfg.DataFile = os.Getenv("REMINDER_DATA_FILE")
	if cfg.DataFile == "" {
		cfg.DataFile = filepath.Join(cfg.HomeDir, "data.json")
	}

	cfg.PhotosDir = os.Getenv("REMINDER_PHOTOS_DIR")
	if cfg.PhotosDir == "" {
		cfg.PhotosDir = filepath.Join(cfg.HomeDir, "contacts")
	}

	cfg.PhotoExt = os.Getenv("REMINDER_PHOTO_EXT")
	if cfg.PhotoExt == "" {
		cfg.PhotoExt = ".png"
	}
	if !strings.HasPrefix(cfg.PhotoExt, ".") {
		cfg.PhotoExt = "." + cfg.PhotoExt
	}

	cfg.AppName = os.Getenv("REMINDER_APP_NAME")
	if cfg.AppName == "" {
		cfg.AppName = "Birthday Reminder"
	}

	cfg.StoreBackend = strings.ToLower(os.Getenv("STORE_BACKEND"))
	switch cfg.StoreBackend {
	case "":
		cfg.StoreBackend = StoreBackendJSON
	case StoreBackendJSON:
	case StoreBackendPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q", cfg.StoreBackend)
	}

	cfg.Notifier = strings.ToLower(os.Getenv("NOTIFIER"))
	switch cfg.Notifier {
	case "":
		cfg.Notifier = NotifierDesktop
	case NotifierDesktop, NotifierLog:
	case NotifierTelegram:
		cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
		if cfg.TelegramToken == "" {
			return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
		}
		chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
		if chatIDStr == "" {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
		}
		cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
	default:
		return nil, fmt.Errorf("invalid NOTIFIER %q", cfg.Notifier)
	}

	cfg.CronSpec = os.Getenv("CRON_SPEC")
	if cfg.CronSpec == "" {
		cfg.CronSpec = "0 9 * * *" // Default: 9 AM daily
	}

	return cfg, nil
}
