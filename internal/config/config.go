package config

import (
	"log"

	env "github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
// See .env.example for more documentation
type Config struct {
	// Telegram defaults; the wizard pre-fills from these.
	BotToken string `env:"BOT_TOKEN" envDefault:""`

	// Deployment defaults.
	UUID       string `env:"UUID" envDefault:""`
	HostDomain string `env:"HOST_DOMAIN" envDefault:"m.visa.com.sg"`
	SourceRepo string `env:"SOURCE_REPO" envDefault:"https://github.com/vlessops/vless-cloudrun.git"`
	WorkDir    string `env:"WORK_DIR" envDefault:"vless-cloudrun"`
	OutputFile string `env:"OUTPUT_FILE" envDefault:"deployment-info.txt"`

	// Lifetime of a deployed service, e.g. "5h30m". Drives the expiry
	// label in notifications only; nothing tears the service down.
	Lifetime string `env:"LIFETIME" envDefault:"5h30m"`

	Verbose bool `env:"VERBOSE" envDefault:"false"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file found or error loading .env file: %v", err)
	}
	var cfg Config
	err = env.ParseWithOptions(&cfg, env.Options{
		Prefix: "VLESSCTL_",
	})
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if cfg.UUID == "" {
		cfg.UUID = uuid.NewString()
	}
	return &cfg
}
