// Package config provides configuration loading from environment variables.
// Nothing here is required: a missing OpenAI key only degrades captioning to
// the fixed fallback string.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the environment-backed settings for a run. The CLI supplies
// the URL, working directory, and clip duration through flags.
type Config struct {
	OpenAIAPIKey  string `env:"OPENAI_API_KEY" json:"-"` // Masked in JSON
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" json:"openai_base_url,omitempty" validate:"omitempty,url"`
	OpenAIModel   string `env:"OPENAI_MODEL, default=gpt-4o-mini" json:"openai_model" validate:"required"`

	YtdlpPath string `env:"YTDLP_PATH, default=yt-dlp" json:"ytdlp_path" validate:"required"`

	LogLevel string `env:"LOG_LEVEL, default=info" json:"log_level" validate:"oneof=debug info warn error"`
}

// Load reads configuration from environment variables and validates it.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the console logger used for the whole run.
func (c *Config) NewLogger() *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		parseLogLevel(c.LogLevel),
	)
	return zap.New(core)
}

func parseLogLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// String returns the config with sensitive values masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{OpenAIModel: %s, OpenAIBaseURL: %s, YtdlpPath: %s, LogLevel: %s}",
		c.OpenAIModel, c.OpenAIBaseURL, c.YtdlpPath, c.LogLevel)
}
