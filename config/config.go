package config

import (
	"log"

	"github.com/spf13/viper"
)

// DefaultAPIBaseURL is used when no backend URL is configured.
const DefaultAPIBaseURL = "http://localhost:8000"

// Config holds all configuration values.
type Config struct {
	APIBaseURL        string `mapstructure:"FARMGURU_API_URL"`
	HTTPTimeoutSec    int    `mapstructure:"FARMGURU_HTTP_TIMEOUT"`
	DefaultLang       string `mapstructure:"FARMGURU_LANG"`
	AnalyticsDisabled bool   `mapstructure:"FARMGURU_ANALYTICS_DISABLED"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("FARMGURU_API_URL", DefaultAPIBaseURL)
	viper.SetDefault("FARMGURU_HTTP_TIMEOUT", 30)
	viper.SetDefault("FARMGURU_LANG", "en")
	viper.SetDefault("FARMGURU_ANALYTICS_DISABLED", false)
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
