package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB, used for confirmed order records. Optional: when empty the
	// server runs without order history.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration for session persistence. Optional: when the addr
	// is empty sessions live in process memory only.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Square collaborator.
	SquareBaseURL    string `mapstructure:"SQUARE_BASE_URL"`
	SquareToken      string `mapstructure:"SQUARE_TOKEN"`
	SquareLocationID string `mapstructure:"SQUARE_LOCATION_ID"`

	// Gemini API key for the optional LLM intent scorer.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Conversation tunables.
	MatchMinConfidence    float64 `mapstructure:"MATCH_MIN_CONFIDENCE"`
	CatalogTTLMinutes     int     `mapstructure:"CATALOG_TTL_MINUTES"`
	CatalogRefreshMinutes int     `mapstructure:"CATALOG_REFRESH_MINUTES"`
	CollaboratorTimeoutMS int     `mapstructure:"COLLABORATOR_TIMEOUT_MS"`
	SessionTTLMinutes     int     `mapstructure:"SESSION_TTL_MINUTES"`
}

// AppConfig is the loaded global configuration.
var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SQUARE_BASE_URL", "https://connect.squareupsandbox.com")
	viper.SetDefault("MATCH_MIN_CONFIDENCE", 0.5)
	viper.SetDefault("CATALOG_TTL_MINUTES", 10)
	viper.SetDefault("CATALOG_REFRESH_MINUTES", 60)
	viper.SetDefault("COLLABORATOR_TIMEOUT_MS", 5000)
	viper.SetDefault("SESSION_TTL_MINUTES", 120)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// CollaboratorTimeout returns the bounded timeout applied to catalog and
// order backend calls.
func CollaboratorTimeout() time.Duration {
	return time.Duration(AppConfig.CollaboratorTimeoutMS) * time.Millisecond
}

// GetEnv returns the application environment.
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}
