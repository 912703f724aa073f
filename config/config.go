package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	ServerAddress  string
	PublicBaseURL  string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenMeteoBaseURL string

	QueryLogEnabled bool
	DBName          string
	DBPassword      string
	DBUser          string
	DBPort          string
	DBHost          string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "LHospitalet Weather Service")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8000")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("OPEN_METEO_BASE_URL", "https://api.open-meteo.com")
	v.SetDefault("QUERY_LOG_ENABLED", false)
	v.SetDefault("DATABASE_PORT", "5432")

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
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServiceVersion:   v.GetString("SERVICE_VERSION"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		PublicBaseURL:    v.GetString("PUBLIC_BASE_URL"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		OpenMeteoBaseURL: v.GetString("OPEN_METEO_BASE_URL"),
		QueryLogEnabled:  v.GetBool("QUERY_LOG_ENABLED"),
		DBName:           v.GetString("DATABASE_NAME"),
		DBPassword:       v.GetString("DATABASE_PASSWORD"),
		DBUser:           v.GetString("DATABASE_USER"),
		DBPort:           v.GetString("DATABASE_PORT"),
		DBHost:           v.GetString("DATABASE_HOST"),
	}

	if config.QueryLogEnabled && config.DBHost == "" {
		return nil, fmt.Errorf("QUERY_LOG_ENABLED requires DATABASE_HOST")
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
