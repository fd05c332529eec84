package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "config/config.yaml"
	DefaultDotEnvFile = ".env"

	VisualCrossingBaseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Weather WeatherConfig `yaml:"weather"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Env     string `yaml:"env"`
	Service string `yaml:"service"`
	Author  string `yaml:"author"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
}

// WeatherConfig describes the timeline provider. The key is read from WEATHER_API_KEY, then API_KEY.
type WeatherConfig struct {
	BaseURL          string        `yaml:"base_url" split_words:"true"`
	APIKey           string        `yaml:"api_key,omitempty" envconfig:"API_KEY"`
	Timeout          time.Duration `yaml:"timeout"`
	FailureThreshold uint32        `yaml:"failure_threshold" split_words:"true"`
	OpenInterval     time.Duration `yaml:"open_interval" split_words:"true"`
}

type StorageConfig struct {
	EmptyListNotFound bool `yaml:"empty_list_not_found" split_words:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn"`
	Debug bool   `yaml:"debug"`
}

type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, a YAML file, a .env file and the environment.
type FileConfigProvider struct {
	configPath string
	dotEnvPath string
}

func NewFileConfigProvider(configPath string) *FileConfigProvider {
	return &FileConfigProvider{
		configPath: configPath,
		dotEnvPath: DefaultDotEnvFile,
	}
}

func (p *FileConfigProvider) WithDotEnv(path string) *FileConfigProvider {
	p.dotEnvPath = path
	return p
}

func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-stats",
			Version: "0.1.0",
			Env:     "development",
			Service: "weather",
			Author:  "KhudyakovGleb",
		},
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Weather: WeatherConfig{
			BaseURL:          VisualCrossingBaseURL,
			Timeout:          10 * time.Second,
			FailureThreshold: 5,
			OpenInterval:     30 * time.Second,
		},
		Storage: StorageConfig{
			EmptyListNotFound: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cfg := Defaults()

	if err := p.loadFromFile(cfg); err != nil {
		return nil, err
	}

	if err := p.loadDotEnv(); err != nil {
		return nil, err
	}

	// Environment wins over everything loaded above.
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cfg, nil
}

func (p *FileConfigProvider) loadFromFile(config *Config) error {
	yamlData, err := os.ReadFile(p.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.configPath, err)
	}

	if err := yaml.Unmarshal(yamlData, config); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.configPath, err)
	}

	return nil
}

// loadDotEnv never overrides variables that are already set.
func (p *FileConfigProvider) loadDotEnv() error {
	if p.dotEnvPath == "" {
		return nil
	}

	if err := godotenv.Load(p.dotEnvPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", p.dotEnvPath, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	if config.App.Name == "" {
		return errors.New("app.name is required")
	}
	if config.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 || config.Server.IdleTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if config.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}
	if config.Weather.BaseURL == "" {
		return errors.New("weather.base_url is required")
	}
	if config.Weather.Timeout <= 0 {
		return errors.New("weather.timeout must be positive")
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not supported", config.Log.Level)
	}

	switch config.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q is not supported", config.Log.Format)
	}

	return nil
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cfg, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigFile))
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
