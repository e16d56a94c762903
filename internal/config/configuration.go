package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int    `mapstructure:"WEBSERVER_PORT" validate:"min=1,max=65535"`
	SessionSecret string `mapstructure:"SESSION_SECRET" validate:"omitempty,min=32"`

	// Backend API Configuration
	APIBaseURL         string `mapstructure:"API_BASE_URL" validate:"required,url"`
	PlatformID         string `mapstructure:"HYDRA_PLATFORM_ID" validate:"required,uuid"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS" validate:"min=1"`

	// Database Configuration (optional, enables Postgres-backed storage)
	DatabaseDSN     string `mapstructure:"DATABASE_DSN"`
	DatabaseRetries int    `mapstructure:"DATABASE_RETRIES" validate:"min=1"`

	// Encryption of stored values (optional)
	EncryptionKey    string `mapstructure:"ENCRYPTION_KEY" validate:"omitempty,hexadecimal,len=64"`
	EncryptionCipher string `mapstructure:"ENCRYPTION_CIPHER" validate:"omitempty,oneof=chacha20-poly1305 xchacha20-poly1305 aes-256-gcm"`

	// Element behaviour
	StrictStyleOverrides bool `mapstructure:"STRICT_STYLE_OVERRIDES"`

	// Demo backend credentials
	DemoUsername string `mapstructure:"DEMO_USERNAME"`
	DemoPassword string `mapstructure:"DEMO_PASSWORD" validate:"omitempty,min=8,max=512"`
}

// HTTPTimeout is HTTPTimeoutSeconds as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// LogValue keeps secrets out of log lines.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("webserver_port", c.WebServerPort),
		slog.String("api_base_url", c.APIBaseURL),
		slog.String("platform_id", c.PlatformID),
		slog.Int("http_timeout_seconds", c.HTTPTimeoutSeconds),
		slog.Bool("database", c.DatabaseDSN != ""),
		slog.Int("database_retries", c.DatabaseRetries),
		slog.Bool("encryption", c.EncryptionKey != ""),
		slog.Bool("strict_style_overrides", c.StrictStyleOverrides),
		slog.String("demo_username", c.DemoUsername),
	)
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag != "" {
			viper.BindEnv(tag)
		}

		// Handle nested structs
		if field.Type.Kind() == reflect.Struct && tag == "" {
			nestedTyp := fieldVal.Type()
			for j := 0; j < fieldVal.NumField(); j++ {
				nestedField := nestedTyp.Field(j)
				nestedTag := nestedField.Tag.Get("mapstructure")
				if nestedTag != "" {
					viper.BindEnv(nestedTag)
				}
			}
		}
	}
	slog.Debug("Environment variables bound", "fields", typ.NumField())
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("DATABASE_RETRIES", 10)
	viper.SetDefault("STRICT_STYLE_OVERRIDES", false)
	viper.SetDefault("DEMO_USERNAME", "demo")

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	slog.InfoContext(ctx, "Loaded configuration", "config", cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
