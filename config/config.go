package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	WeatherAPIKey     string
	WeatherAPIBaseURL string
	GeolocationURL    string

	ForecastDays    int
	DebounceDelay   time.Duration
	MinSearchLength int
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-sync")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 175)
	v.SetDefault("WEATHER_API_BASE_URL", "https://api.weatherapi.com/v1")
	v.SetDefault("GEOLOCATION_URL", "http://ip-api.com/json")
	v.SetDefault("FORECAST_DAYS", 7)
	v.SetDefault("DEBOUNCE_DELAY", 500*time.Millisecond)
	v.SetDefault("MIN_SEARCH_LENGTH", 3)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:       v.GetString("SERVICE_NAME"),
		ServerAddress:     v.GetString("SERVER_ADDRESS"),
		DBName:            v.GetString("DATABASE_NAME"),
		DBPassword:        v.GetString("DATABASE_PASSWORD"),
		DBUser:            v.GetString("DATABASE_USER"),
		DBPort:            v.GetString("DATABASE_PORT"),
		DBHost:            v.GetString("DATABASE_HOST"),
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		HTTPTimeout:       v.GetInt32("HTTP_TIMEOUT"),
		WeatherAPIKey:     v.GetString("WEATHER_API_KEY"),
		WeatherAPIBaseURL: v.GetString("WEATHER_API_BASE_URL"),
		GeolocationURL:    v.GetString("GEOLOCATION_URL"),
		ForecastDays:      v.GetInt("FORECAST_DAYS"),
		DebounceDelay:     v.GetDuration("DEBOUNCE_DELAY"),
		MinSearchLength:   v.GetInt("MIN_SEARCH_LENGTH"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
