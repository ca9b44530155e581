// Package config loads service configuration from YAML, .env and the
// environment, in that order of precedence from lowest to highest.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Click-Movement/ContentSoftware/internal/persona"
)

// Configuration validation errors.
var (
	ErrMissingPort          = errors.New("server.port is required")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidAITimeout     = errors.New("ai.timeout must be positive")
	ErrInvalidFetchTimeout  = errors.New("fetch.timeout must be positive")
	ErrUnknownPersona       = errors.New("rewrite.default_persona is not a known persona")
	ErrUnknownModel         = errors.New("ai.default_model must be 'gpt' or 'claude'")
	ErrMissingWorkerPersona = errors.New("worker.persona is required")
	ErrInvalidWorkerMode    = errors.New("worker.mode must be 'rule' or 'ai'")
	ErrInvalidMaxRetries    = errors.New("worker.max_retries must be at least 1")
)

const DefaultPath = "config.yaml"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	AI       AIConfig       `yaml:"ai"`
	Rewrite  RewriteConfig  `yaml:"rewrite"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Worker   WorkerConfig   `yaml:"worker"`
	Logging  LoggingConfig  `yaml:"logging"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type RedisConfig struct {
	URL      string        `yaml:"url"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// AIConfig holds backend settings. Keys only ever come from the environment.
type AIConfig struct {
	DefaultModel   string        `yaml:"default_model"`
	OpenAIModel    string        `yaml:"openai_model"`
	AnthropicModel string        `yaml:"anthropic_model"`
	Timeout        time.Duration `yaml:"timeout"`
	OpenAIKey      string        `yaml:"-"`
	AnthropicKey   string        `yaml:"-"`
}

type RewriteConfig struct {
	DefaultPersona string `yaml:"default_persona"`
}

type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	Feeds      []string      `yaml:"feeds"`
	Limit      int           `yaml:"limit"`
	FinnhubKey string        `yaml:"-"`
}

type WorkerConfig struct {
	Persona    string        `yaml:"persona"`
	Mode       string        `yaml:"mode"`
	Model      string        `yaml:"model"`
	MaxRetries int           `yaml:"max_retries"`
	Backoff    time.Duration `yaml:"backoff"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Redis: RedisConfig{CacheTTL: 15 * time.Minute},
		AI: AIConfig{
			DefaultModel:   "claude",
			OpenAIModel:    "gpt-4o",
			AnthropicModel: "claude-haiku-4-5",
			Timeout:        120 * time.Second,
		},
		Rewrite: RewriteConfig{DefaultPersona: string(persona.Default)},
		Fetch:   FetchConfig{Timeout: 30 * time.Second, Limit: 50},
		Worker: WorkerConfig{
			Persona:    string(persona.Default),
			Mode:       "rule",
			MaxRetries: 3,
			Backoff:    5 * time.Second,
		},
		Logging: LoggingConfig{Level: "info"},
		Tracing: TracingConfig{ServiceName: "contentsoftware"},
	}
}

// Load reads path (a missing file is not an error), then .env, then the
// environment, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	_ = godotenv.Load()
	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// PathFromEnv returns CONFIG_PATH or DefaultPath.
func PathFromEnv() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := getenv(k); v != "" {
				*dst = v
				return
			}
		}
	}

	set(&c.Server.Port, "PORT")
	set(&c.Database.URL, "DATABASE_URL")
	set(&c.Redis.URL, "REDIS_URL")
	set(&c.AI.OpenAIKey, "OPENAI_API_KEY")
	set(&c.AI.AnthropicKey, "CLAUDE_API_KEY", "ANTHROPIC_API_KEY")
	set(&c.Fetch.FinnhubKey, "FINNHUB_API_KEY")
	set(&c.Logging.Level, "LOG_LEVEL")
	set(&c.Tracing.Endpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")

	if u := getenv("FRONTEND_URL"); u != "" {
		c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, u)
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return ErrMissingPort
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	if c.AI.Timeout <= 0 {
		return ErrInvalidAITimeout
	}
	if c.Fetch.Timeout <= 0 {
		return ErrInvalidFetchTimeout
	}

	if _, err := persona.Lookup(c.Rewrite.DefaultPersona); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownPersona, c.Rewrite.DefaultPersona)
	}
	if c.AI.DefaultModel != "gpt" && c.AI.DefaultModel != "claude" {
		return ErrUnknownModel
	}

	if c.Worker.Persona == "" {
		return ErrMissingWorkerPersona
	}
	if c.Worker.Mode != "rule" && c.Worker.Mode != "ai" {
		return ErrInvalidWorkerMode
	}
	if c.Worker.MaxRetries < 1 {
		return ErrInvalidMaxRetries
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}
