package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// maxPageSize is the largest page the Data API accepts for playlist listings.
const maxPageSize = 50

type Config struct {
	YouTube    YouTubeConfig    `yaml:"youtube"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type YouTubeConfig struct {
	Language                   string `yaml:"language"`
	MaxPageSize                int64  `yaml:"max_page_size"`
	EnforceCutoffOnExplicitIDs bool   `yaml:"enforce_cutoff_on_explicit_ids"`
}

type SummarizerConfig struct {
	Model      string `yaml:"model"`
	PromptPath string `yaml:"prompt_path"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a config with every field at its default value.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.YouTube.Language == "" {
		c.YouTube.Language = "en"
	}
	if c.YouTube.MaxPageSize <= 0 || c.YouTube.MaxPageSize > maxPageSize {
		c.YouTube.MaxPageSize = maxPageSize
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}
	if c.Summarizer.PromptPath == "" {
		c.Summarizer.PromptPath = "prompt.txt"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "processed"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}
