package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfig tests configuration loading from the environment
func TestLoadConfig(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PREDICTION_RETENTION_DAYS", "30")
	t.Setenv("CROP_TOP_N", "3")
	t.Setenv("SEED_MIN_CONFIDENCE", "0.55")
	t.Setenv("OPENWEATHER_API_KEY", "owm-key")
	t.Setenv("WEATHER_TIMEOUT_SECONDS", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Environment != "test" {
		t.Errorf("Expected environment 'test', got '%s'", cfg.Environment)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.LogLevel)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port '9090', got '%s'", cfg.Port)
	}

	if cfg.StoreDriver != "memory" {
		t.Errorf("Expected store driver 'memory', got '%s'", cfg.StoreDriver)
	}

	if cfg.RetentionDays != 30 {
		t.Errorf("Expected RetentionDays 30, got %d", cfg.RetentionDays)
	}

	if cfg.CropFlow.TopN != 3 {
		t.Errorf("Expected crop TopN 3, got %d", cfg.CropFlow.TopN)
	}

	if cfg.SeedFlow.MinConfidence != 0.55 {
		t.Errorf("Expected seed MinConfidence 0.55, got %v", cfg.SeedFlow.MinConfidence)
	}

	if cfg.WeatherAPIKey != "owm-key" {
		t.Errorf("Expected weather API key 'owm-key', got '%s'", cfg.WeatherAPIKey)
	}

	if cfg.WeatherTimeout != 3 {
		t.Errorf("Expected weather timeout 3, got %d", cfg.WeatherTimeout)
	}
}

// TestLoadConfigDefaults tests default values
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("Expected default environment 'development', got '%s'", cfg.Environment)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port '8080', got '%s'", cfg.Port)
	}

	if cfg.StoreDriver != "sqlite" {
		t.Errorf("Expected default store driver 'sqlite', got '%s'", cfg.StoreDriver)
	}

	if cfg.RetentionSchedule != "@daily" {
		t.Errorf("Expected default schedule '@daily', got '%s'", cfg.RetentionSchedule)
	}

	if cfg.CropFlow.Strategy != "extended" || cfg.CropFlow.TopN != 5 || cfg.CropFlow.MinConfidence != 0 {
		t.Errorf("Unexpected crop flow defaults: %+v", cfg.CropFlow)
	}

	if cfg.SeedFlow.Strategy != "simple" || cfg.SeedFlow.TopN != 0 || cfg.SeedFlow.MinConfidence != 0.4 {
		t.Errorf("Unexpected seed flow defaults: %+v", cfg.SeedFlow)
	}

	if cfg.WeatherURL != "https://api.openweathermap.org/data/2.5" || cfg.WeatherAPIKey != "" {
		t.Errorf("Unexpected weather defaults: %s %q", cfg.WeatherURL, cfg.WeatherAPIKey)
	}
}

// TestLoadConfigFile tests that the YAML file is applied under environment overrides
func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agriadvisor.yaml")
	data := []byte(`
port: "7000"
store_driver: memory
retention_days: 0
seed_flow:
  strategy: extended
  min_confidence: 0.6
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7100")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Port != "7100" {
		t.Errorf("Expected env to override file port, got '%s'", cfg.Port)
	}

	if cfg.StoreDriver != "memory" {
		t.Errorf("Expected store driver from file, got '%s'", cfg.StoreDriver)
	}

	if cfg.RetentionDays != 0 {
		t.Errorf("Expected retention disabled, got %d", cfg.RetentionDays)
	}

	if cfg.SeedFlow.Strategy != "extended" || cfg.SeedFlow.MinConfidence != 0.6 {
		t.Errorf("Unexpected seed flow: %+v", cfg.SeedFlow)
	}

	// untouched keys keep their defaults
	if cfg.CropFlow.TopN != 5 {
		t.Errorf("Expected default crop TopN 5, got %d", cfg.CropFlow.TopN)
	}
}

// TestLoadConfigInvalid tests validation failures
func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "STORE_DRIVER", "postgres"},
		{"negative retention", "PREDICTION_RETENTION_DAYS", "-1"},
		{"negative top n", "CROP_TOP_N", "-2"},
		{"confidence above one", "SEED_MIN_CONFIDENCE", "1.5"},
		{"zero weather timeout", "WEATHER_TIMEOUT_SECONDS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
		if _, err := LoadConfig(); err == nil {
			t.Error("Expected error for missing config file")
		}
	})
}
