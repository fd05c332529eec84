package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml").WithDotEnv("")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-stats", config.App.Name)
	assert.Equal(t, "0.1.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "weather", config.App.Service)
	assert.Equal(t, "KhudyakovGleb", config.App.Author)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, config.Server.IdleTimeout)
	assert.Equal(t, VisualCrossingBaseURL, config.Weather.BaseURL)
	assert.Equal(t, 10*time.Second, config.Weather.Timeout)
	assert.True(t, config.Storage.EmptyListNotFound)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("WEATHER_TIMEOUT", "3s")
	t.Setenv("STORAGE_EMPTY_LIST_NOT_FOUND", "false")
	t.Setenv("LOG_LEVEL", "debug")

	provider := NewFileConfigProvider("nonexistent.yaml").WithDotEnv("")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "secret", config.Weather.APIKey)
	assert.Equal(t, 3*time.Second, config.Weather.Timeout)
	assert.False(t, config.Storage.EmptyListNotFound)
	assert.Equal(t, "debug", config.Log.Level)
	assert.True(t, config.IsProduction())
}

func TestConfig_LegacyAPIKeyVariable(t *testing.T) {
	t.Setenv("API_KEY", "legacy-key")

	config, err := NewConfigWithProvider(NewFileConfigProvider("nonexistent.yaml").WithDotEnv(""))
	require.NoError(t, err)

	assert.Equal(t, "legacy-key", config.Weather.APIKey)
}

func TestConfig_YAMLThenEnvironment(t *testing.T) {
	path := writeFile(t, "config.yaml", `
app:
  name: from-yaml
  author: someone
server:
  port: "7070"
weather:
  api_key: yaml-key
  timeout: 15s
log:
  format: console
`)
	t.Setenv("SERVER_PORT", "6060")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path).WithDotEnv(""))
	require.NoError(t, err)

	assert.Equal(t, "from-yaml", config.App.Name)
	assert.Equal(t, "someone", config.App.Author)
	assert.Equal(t, "6060", config.Server.Port)
	assert.Equal(t, "yaml-key", config.Weather.APIKey)
	assert.Equal(t, 15*time.Second, config.Weather.Timeout)
	assert.Equal(t, "console", config.Log.Format)
	// untouched sections keep their defaults
	assert.Equal(t, "0.1.0", config.App.Version)
}

func TestConfig_DotEnvFile(t *testing.T) {
	dotEnv := writeFile(t, ".env", "WEATHER_API_KEY=from-dotenv\nAPP_AUTHOR=dotenv-author\n")

	require.NoError(t, os.Unsetenv("WEATHER_API_KEY"))
	t.Setenv("APP_AUTHOR", "already-set")
	t.Cleanup(func() { _ = os.Unsetenv("WEATHER_API_KEY") })

	config, err := NewConfigWithProvider(NewFileConfigProvider("nonexistent.yaml").WithDotEnv(dotEnv))
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", config.Weather.APIKey)
	assert.Equal(t, "already-set", config.App.Author)
}

func TestConfig_BrokenYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "app: [unterminated")

	_, err := NewConfigWithProvider(NewFileConfigProvider(path).WithDotEnv(""))
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider(DefaultConfigFile)

	assert.NoError(t, provider.Validate(Defaults()))

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "server.port is required"},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "server timeouts must be positive"},
		{"missing base url", func(c *Config) { c.Weather.BaseURL = "" }, "weather.base_url is required"},
		{"zero provider timeout", func(c *Config) { c.Weather.Timeout = 0 }, "weather.timeout must be positive"},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := provider.Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{
		App: AppConfig{
			Env: "development",
		},
	}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: Defaults()}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "weather-stats", config.App.Name)

	_, err = NewConfigWithProvider(&MockConfigProvider{err: os.ErrPermission})
	assert.ErrorIs(t, err, os.ErrPermission)
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
