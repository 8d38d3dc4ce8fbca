package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "test-app",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Weather: WeatherConfig{
			BaseURL: OpenWeatherMapForecastURL,
			Timeout: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-forecast", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, OpenWeatherMapForecastURL, config.Weather.BaseURL)
	assert.Equal(t, 10*time.Second, config.WeatherTimeout())
	assert.Equal(t, "info", config.Log.Level)
	assert.Empty(t, config.Sentry.DSN)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WEATHER_TIMEOUT", "3")
	t.Setenv("WEATHER_BASE_URL", "http://localhost:9999/forecast")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, 3*time.Second, config.WeatherTimeout())
	assert.Equal(t, "http://localhost:9999/forecast", config.Weather.BaseURL)
	assert.True(t, config.IsProduction())
}

func TestConfigFileLoading(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: from-file
  env: staging
weather:
  timeout: 4
  secrets_file: /run/secrets/weather.toml
log:
  level: warn
`), 0o600))

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.App.Name)
	assert.Equal(t, "staging", config.App.Env)
	// keys missing from the file keep their defaults
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 4, config.Weather.Timeout)
	assert.Equal(t, "/run/secrets/weather.toml", config.Weather.SecretsFile)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestConfigFileLoading_EnvOverridesFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	config, err := NewConfigWithProvider(NewFileConfigProvider("config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "weather-forecast", config.App.Name)
	assert.Equal(t, "error", config.Log.Level)
}

func TestConfigFileLoading_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := NewConfigWithProvider(NewFileConfigProvider(path))
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config.yaml")

	assert.NoError(t, provider.Validate(validConfig()))

	invalid := validConfig()
	invalid.App.Name = ""
	err := provider.Validate(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	invalid = validConfig()
	invalid.Weather.Timeout = 0
	invalid.Log.Level = "verbose"
	err = provider.Validate(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather.timeout must be positive")
	assert.Contains(t, err.Error(), `log.level "verbose"`)
}

func TestConfigHelperMethods(t *testing.T) {
	config := validConfig()

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	read, write, idle := config.Server.Timeouts()
	assert.Equal(t, 10*time.Second, read)
	assert.Equal(t, 10*time.Second, write)
	assert.Equal(t, 120*time.Second, idle)
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: validConfig()}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	_, err = NewConfigWithProvider(&MockConfigProvider{err: errors.New("load failed")})
	assert.EqualError(t, err, "load failed")
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
