package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// It is resolved once at startup and treated as immutable afterwards.
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8000"`
	LogFile     string `env:"LOG_FILE"`

	// Database Configuration. DatabaseName is informational only; the
	// connection itself is driven by DatabaseURL.
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseName string `env:"DATABASE_NAME"`

	// WhatsApp notification configuration
	WhatsApp WhatsAppConfig
}

// WhatsAppConfig holds the Twilio WhatsApp notification settings.
// Missing values disable notifications rather than failing startup.
type WhatsAppConfig struct {
	Enabled    bool   `env:"TWILIO_WHATSAPP_ENABLED" envDefault:"false"`
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	From       string `env:"TWILIO_WHATSAPP_FROM"` // e.g. 'whatsapp:+14155238886'
	To         string `env:"OWNER_WHATSAPP_TO"`    // e.g. 'whatsapp:+919782017257'
}

// Load loads the configuration from environment variables and a .env file
func Load() (*Config, error) {
	// Load .env file if it exists; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	return cfg, nil
}
