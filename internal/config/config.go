// Package config loads application configuration from environment variables
// (prefix MHEDA_) and an optional mheda.yaml file, with validated defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Model     ModelConfig     `mapstructure:"model" validate:"required"`
	Stopwords StopwordsConfig `mapstructure:"stopwords" validate:"required"`
	Assets    AssetsConfig    `mapstructure:"assets"`
}

// ServerConfig contains HTTP server and logging settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=text json"`
}

// ModelConfig locates the pre-trained artifacts. All three files must exist
// before the engine can serve a single request.
type ModelConfig struct {
	ClassifierPath string `mapstructure:"classifier_path" validate:"required"`
	VocabPath      string `mapstructure:"vocab_path" validate:"required"`
	IDFPath        string `mapstructure:"idf_path" validate:"required"`
}

// StopwordsConfig locates the stop-word list and the remote fallback used
// when the local file is missing.
type StopwordsConfig struct {
	Path string `mapstructure:"path" validate:"required"`
	URL  string `mapstructure:"url" validate:"required,url"`
}

// AssetsConfig controls the decorative animation endpoints.
type AssetsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration with this precedence: environment variables,
// then mheda.yaml in the working directory, then defaults. The result is
// validated before being returned.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "text")
	v.SetDefault("model.classifier_path", "models/emotion_model.onnx")
	v.SetDefault("model.vocab_path", "models/tfidf_vocab.txt")
	v.SetDefault("model.idf_path", "models/tfidf_idf.safetensors")
	v.SetDefault("stopwords.path", "models/stopwords.txt")
	v.SetDefault("stopwords.url", "https://raw.githubusercontent.com/stopwords-iso/stopwords-en/master/stopwords-en.txt")
	v.SetDefault("assets.enabled", true)

	v.SetConfigName("mheda")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
		// No config file is fine; env vars and defaults cover everything.
	}

	v.SetEnvPrefix("MHEDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
