package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"freightdesk/storage"
)

type Config struct {
	// Server
	Port        int    `mapstructure:"PORT"`
	Env         string `mapstructure:"APP_ENV"` // development | production
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"` // comma separated, "*" for any

	// Database
	DBType         string `mapstructure:"DB_TYPE"` // postgres | mongo
	PostgresURL    string `mapstructure:"POSTGRES_URL"`
	MongoURL       string `mapstructure:"MONGO_URL"`
	MongoDatabase  string `mapstructure:"MONGO_DATABASE"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	// Documents
	PDFDir            string `mapstructure:"PDF_DIR"`
	R2AccountID       string `mapstructure:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `mapstructure:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `mapstructure:"R2_SECRET_ACCESS_KEY"`
	R2Bucket          string `mapstructure:"R2_BUCKET"`
	R2PublicURL       string `mapstructure:"R2_PUBLIC_URL"`

	// Auth
	AdminPasswordHash    string `mapstructure:"ADMIN_PASSWORD_HASH"`
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	JWTExpirationMinutes int    `mapstructure:"JWT_EXPIRATION_MINUTES"`
}

var defaults = map[string]any{
	"PORT":                   8080,
	"APP_ENV":                "development",
	"LOG_LEVEL":              "info",
	"CORS_ORIGINS":           "*",
	"DB_TYPE":                "postgres",
	"POSTGRES_URL":           "",
	"MONGO_URL":              "",
	"MONGO_DATABASE":         "freightdesk",
	"MIGRATIONS_PATH":        "db/migrations",
	"PDF_DIR":                "./pdfs",
	"R2_ACCOUNT_ID":          "",
	"R2_ACCESS_KEY_ID":       "",
	"R2_SECRET_ACCESS_KEY":   "",
	"R2_BUCKET":              "",
	"R2_PUBLIC_URL":          "",
	"ADMIN_PASSWORD_HASH":    "",
	"JWT_SECRET":             "",
	"JWT_EXPIRATION_MINUTES": 720,
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBType {
	case "postgres":
		if c.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is required when DB_TYPE=postgres")
		}
	case "mongo":
		if c.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required when DB_TYPE=mongo")
		}
	default:
		return fmt.Errorf("DB_TYPE %q not supported", c.DBType)
	}
	if c.Port <= 0 {
		return fmt.Errorf("PORT must be positive")
	}
	if c.AdminPasswordHash != "" && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
	}
	return nil
}

func (c *Config) R2() storage.R2Config {
	return storage.R2Config{
		AccountID:       c.R2AccountID,
		AccessKeyID:     c.R2AccessKeyID,
		SecretAccessKey: c.R2SecretAccessKey,
		Bucket:          c.R2Bucket,
		PublicURL:       c.R2PublicURL,
	}
}

// Origins splits CORS_ORIGINS. An empty result means any origin.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" && o != "*" {
			out = append(out, o)
		}
	}
	return out
}
