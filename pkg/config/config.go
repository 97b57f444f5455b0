package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FlowConfig tunes one recommendation flow
type FlowConfig struct {
	Strategy      string  `yaml:"strategy"`
	TopN          int     `yaml:"top_n"`
	MinConfidence float64 `yaml:"min_confidence"`
}

// Config holds the application configuration
type Config struct {
	Environment       string     `yaml:"environment"`
	LogLevel          string     `yaml:"log_level"`
	Port              string     `yaml:"port"`
	StoreDriver       string     `yaml:"store_driver"`
	DatabasePath      string     `yaml:"database_path"`
	RetentionSchedule string     `yaml:"retention_schedule"`
	RetentionDays     int        `yaml:"retention_days"`
	CropFlow          FlowConfig `yaml:"crop_flow"`
	SeedFlow          FlowConfig `yaml:"seed_flow"`
	WeatherURL        string     `yaml:"weather_url"`
	WeatherAPIKey     string     `yaml:"weather_api_key"`
	WeatherTimeout    int        `yaml:"weather_timeout_seconds"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Environment:       "development",
		LogLevel:          "info",
		Port:              "8080",
		StoreDriver:       "sqlite",
		DatabasePath:      "agriadvisor.db",
		RetentionSchedule: "@daily",
		RetentionDays:     90,
		CropFlow:          FlowConfig{Strategy: "extended", TopN: 5, MinConfidence: 0},
		SeedFlow:          FlowConfig{Strategy: "simple", TopN: 0, MinConfidence: 0.4},
		WeatherURL:        "https://api.openweathermap.org/data/2.5",
		WeatherTimeout:    10,
	}
}

// LoadConfig loads configuration. Precedence, lowest first: defaults, the
// YAML file named by CONFIG_FILE, environment variables. A .env file in the
// working directory is loaded into the environment when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := DefaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.Environment = getEnv("ENVIRONMENT", config.Environment)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.Port = getEnv("PORT", config.Port)
	config.StoreDriver = getEnv("STORE_DRIVER", config.StoreDriver)
	config.DatabasePath = getEnv("DATABASE_PATH", config.DatabasePath)
	config.RetentionSchedule = getEnv("PREDICTION_RETENTION_SCHEDULE", config.RetentionSchedule)
	config.RetentionDays = getEnvAsInt("PREDICTION_RETENTION_DAYS", config.RetentionDays)
	config.CropFlow.Strategy = getEnv("CROP_STRATEGY", config.CropFlow.Strategy)
	config.CropFlow.TopN = getEnvAsInt("CROP_TOP_N", config.CropFlow.TopN)
	config.CropFlow.MinConfidence = getEnvAsFloat("CROP_MIN_CONFIDENCE", config.CropFlow.MinConfidence)
	config.SeedFlow.Strategy = getEnv("SEED_STRATEGY", config.SeedFlow.Strategy)
	config.SeedFlow.TopN = getEnvAsInt("SEED_TOP_N", config.SeedFlow.TopN)
	config.SeedFlow.MinConfidence = getEnvAsFloat("SEED_MIN_CONFIDENCE", config.SeedFlow.MinConfidence)
	config.WeatherURL = getEnv("WEATHER_API_URL", config.WeatherURL)
	config.WeatherAPIKey = getEnv("OPENWEATHER_API_KEY", config.WeatherAPIKey)
	config.WeatherTimeout = getEnvAsInt("WEATHER_TIMEOUT_SECONDS", config.WeatherTimeout)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "sqlite":
		if c.DatabasePath == "" {
			return fmt.Errorf("DATABASE_PATH is required for the sqlite store")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want sqlite or memory)", c.StoreDriver)
	}

	if c.WeatherURL == "" {
		return fmt.Errorf("WEATHER_API_URL must not be empty")
	}
	if c.WeatherTimeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT_SECONDS must be positive")
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("PREDICTION_RETENTION_DAYS must not be negative")
	}
	for name, flow := range map[string]FlowConfig{"crop": c.CropFlow, "seed": c.SeedFlow} {
		if flow.TopN < 0 {
			return fmt.Errorf("%s flow top_n must not be negative", name)
		}
		if flow.MinConfidence < 0 || flow.MinConfidence > 1 {
			return fmt.Errorf("%s flow min_confidence must be within [0,1]", name)
		}
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
