package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string  `mapstructure:"APP_PORT"`
	DatabaseURL       string  `mapstructure:"DATABASE_URL"`
	DatabaseName      string  `mapstructure:"DATABASE_NAME"`
	Env               string  `mapstructure:"ENV"`
	LogLevel          string  `mapstructure:"LOG_LEVEL"`
	ExchangeRate      float64 `mapstructure:"EXCHANGE_RATE"`
	MaxRequestsPerMin int     `mapstructure:"MAX_REQUESTS_PER_MIN"`
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
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "taxibot")
	viper.SetDefault("EXCHANGE_RATE", 36.5)

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
