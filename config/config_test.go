package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-tools/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "LHospitalet Weather Service", conf.ServiceName)
	assert.Equal(t, "0.0.0.0:8000", conf.ServerAddress)
	assert.Equal(t, "https://api.open-meteo.com", conf.OpenMeteoBaseURL)
	assert.Equal(t, 15*time.Second, conf.HTTPTimeoutDuration())
	assert.False(t, conf.QueryLogEnabled)
	assert.Equal(t, "5432", conf.DBPort)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("OPEN_METEO_BASE_URL", "http://localhost:8080")
	t.Setenv("HTTP_TIMEOUT", "3")
	t.Setenv("QUERY_LOG_ENABLED", "true")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("LOG_LEVEL", "debug")

	conf, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", conf.ServerAddress)
	assert.Equal(t, "http://localhost:8080", conf.OpenMeteoBaseURL)
	assert.Equal(t, 3*time.Second, conf.HTTPTimeoutDuration())
	assert.True(t, conf.QueryLogEnabled)
	assert.Equal(t, "db", conf.DBHost)
	assert.Equal(t, "debug", conf.LogLevel)
}

func TestLoadConfigQueryLogRequiresDatabase(t *testing.T) {
	t.Setenv("QUERY_LOG_ENABLED", "true")
	t.Setenv("DATABASE_HOST", "")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "DATABASE_HOST")
}
