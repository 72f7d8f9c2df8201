package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"portfolio/models"

	"gopkg.in/yaml.v3"
)

// Backends accepted by AI_BACKEND / ai.backend.
const (
	BackendREST  = "rest"
	BackendGenAI = "genai"
	BackendDummy = "dummy"
)

// DefaultEndpoint is the generateContent URL template; {model} is replaced
// with the configured model name.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/{model}:generateContent"

// Config is the full runtime configuration.
type Config struct {
	Port     string               `yaml:"port"`
	LogLevel string               `yaml:"log_level"`
	AI       AIConfig             `yaml:"ai"`
	Discord  models.DiscordConfig `yaml:"discord"`
	Chat     ChatConfig           `yaml:"chat"`
	Carousel CarouselConfig       `yaml:"carousel"`

	// Fallbacks overrides page-authored fallback sentences, keyed by
	// "<slug>/<action>".
	Fallbacks map[string]models.Fallbacks `yaml:"fallbacks"`
}

// AIConfig configures the generateContent endpoint.
type AIConfig struct {
	Backend  string        `yaml:"backend"`
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"` // zero leaves the transport default
}

// ChatConfig bounds the in-memory chat sessions.
type ChatConfig struct {
	MaxSessions int `yaml:"max_sessions"`
}

// CarouselConfig controls the featured post rotation.
type CarouselConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Port:     "8080",
		LogLevel: "info",
		AI: AIConfig{
			Backend:  BackendREST,
			Model:    "gemini-2.0-flash",
			Endpoint: DefaultEndpoint,
		},
		Discord: models.DiscordConfig{
			CommandPrefix: "!ask ",
			Enabled:       true,
		},
		Chat:      ChatConfig{MaxSessions: 256},
		Carousel:  CarouselConfig{Interval: 8 * time.Second},
		Fallbacks: map[string]models.Fallbacks{},
	}
}

// LoadConfig reads an optional YAML file over the defaults and then applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	c.AI.APIKey = FirstNonEmpty(os.Getenv("GEMINI_API_KEY"), os.Getenv("NEXT_PUBLIC_GEMINI_API_KEY"), c.AI.APIKey)
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("GEMINI_ENDPOINT"); v != "" {
		c.AI.Endpoint = v
	}
	if v := os.Getenv("AI_BACKEND"); v != "" {
		c.AI.Backend = v
	}
	if v := os.Getenv("AI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid AI_TIMEOUT %q: %w", v, err)
		}
		c.AI.Timeout = d
	}
	if v := os.Getenv("DISCORD_BOT_TOKEN"); v != "" {
		c.Discord.Token = v
	}
	if v := os.Getenv("DISCORD_COMMAND_PREFIX"); v != "" {
		c.Discord.CommandPrefix = v
	}
	if v := os.Getenv("DISCORD_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DISCORD_ENABLED %q: %w", v, err)
		}
		c.Discord.Enabled = enabled
	}
	return nil
}

// Validate reports configuration values the server cannot run with.
func (c Config) Validate() error {
	switch c.AI.Backend {
	case BackendREST, BackendGenAI, BackendDummy:
	default:
		return fmt.Errorf("unknown ai backend %q", c.AI.Backend)
	}
	if c.AI.Model == "" {
		return fmt.Errorf("ai model must not be empty")
	}
	if c.AI.Timeout < 0 {
		return fmt.Errorf("ai timeout must not be negative")
	}
	if c.Chat.MaxSessions <= 0 {
		return fmt.Errorf("chat max_sessions must be positive")
	}
	if c.Carousel.Interval <= 0 {
		return fmt.Errorf("carousel interval must be positive")
	}
	return nil
}

// FallbacksFor returns the configured override for one page action.
func (c Config) FallbacksFor(slug, action string) models.Fallbacks {
	return c.Fallbacks[slug+"/"+action]
}
