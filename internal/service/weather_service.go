package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"ulascansenturk/weather-tools/internal/cities"
	"ulascansenturk/weather-tools/internal/db/weatherquery"
	"ulascansenturk/weather-tools/internal/providers"
	"ulascansenturk/weather-tools/internal/report"
)

// WeatherService resolves a city, fetches its current observation and
// renders the result. GetWeather and GetWeatherDefault never fail: every
// error is rendered as a sentence.
type WeatherService interface {
	Lookup(ctx context.Context, cityKey string) (report.WeatherReport, error)
	GetWeather(ctx context.Context, cityKey string) string
	GetWeatherDefault(ctx context.Context) string
	DefaultKey() string
	Cities() []cities.CityEntry
	RecentQuery(ctx context.Context, cityKey string) (*weatherquery.WeatherQuery, error)
}

var (
	ErrQueryLogDisabled = errors.New("query log is disabled")
	ErrNoRecentQuery    = errors.New("no recorded query for this city")
)

type weatherService struct {
	registry         *cities.Registry
	weatherAPI       providers.WeatherProvider
	weatherQueryRepo weatherquery.Repository
}

// NewWeatherService wires the pipeline. weatherQueryRepo may be nil, in
// which case invocations are not recorded.
func NewWeatherService(
	registry *cities.Registry,
	weatherAPI providers.WeatherProvider,
	weatherQueryRepo weatherquery.Repository,
) WeatherService {
	return &weatherService{
		registry:         registry,
		weatherAPI:       weatherAPI,
		weatherQueryRepo: weatherQueryRepo,
	}
}

func (s *weatherService) Lookup(ctx context.Context, cityKey string) (report.WeatherReport, error) {
	requestID := uuid.NewString()
	logger := log.With().Str("request_id", requestID).Str("city", cityKey).Logger()

	city, err := s.registry.Resolve(cityKey)
	if err != nil {
		logger.Info().Msg("city not registered")
		s.logQuery(requestID, cities.Normalize(cityKey), weatherquery.OutcomeNotFound, nil)
		return report.WeatherReport{}, err
	}

	obs, err := s.weatherAPI.GetCurrentWeather(ctx, city.Latitude, city.Longitude, city.Timezone)
	if err != nil {
		outcome := providers.KindUnexpected.String()
		var fetchErr *providers.FetchError
		if errors.As(err, &fetchErr) {
			outcome = fetchErr.Kind.String()
		}
		logger.Warn().Err(err).Str("kind", outcome).Msg("failed to fetch current weather")
		s.logQuery(requestID, city.Key, outcome, nil)
		return report.WeatherReport{}, err
	}

	logger.Debug().
		Float64("temperature", obs.TemperatureCelsius).
		Float64("humidity", obs.RelativeHumidityPercent).
		Int("weather_code", obs.WeatherCode).
		Msg("fetched current weather")
	s.logQuery(requestID, city.Key, weatherquery.OutcomeOK, obs)

	return report.New(city.DisplayName, *obs), nil
}

func (s *weatherService) GetWeather(ctx context.Context, cityKey string) string {
	weatherReport, err := s.Lookup(ctx, cityKey)
	if err != nil {
		return report.FormatError(err)
	}
	return weatherReport.String()
}

func (s *weatherService) GetWeatherDefault(ctx context.Context) string {
	return s.GetWeather(ctx, s.registry.DefaultKey())
}

func (s *weatherService) DefaultKey() string {
	return s.registry.DefaultKey()
}

func (s *weatherService) Cities() []cities.CityEntry {
	return s.registry.Entries()
}

// RecentQuery returns the latest recorded invocation for a registered city.
// It reads the query log only and never triggers a fetch.
func (s *weatherService) RecentQuery(ctx context.Context, cityKey string) (*weatherquery.WeatherQuery, error) {
	if s.weatherQueryRepo == nil {
		return nil, ErrQueryLogDisabled
	}

	city, err := s.registry.Resolve(cityKey)
	if err != nil {
		return nil, err
	}

	query, err := s.weatherQueryRepo.GetRecentWeatherQuery(ctx, city.Key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRecentQuery
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read query log: %w", err)
	}
	return query, nil
}

func (s *weatherService) logQuery(requestID, cityKey, outcome string, obs *providers.CurrentObservation) {
	if s.weatherQueryRepo == nil {
		return
	}

	query := &weatherquery.WeatherQuery{
		RequestID: requestID,
		CityKey:   cityKey,
		Outcome:   outcome,
	}
	if obs != nil {
		query.TemperatureCelsius = obs.TemperatureCelsius
		query.RelativeHumidityPercent = obs.RelativeHumidityPercent
		query.WeatherCode = obs.WeatherCode
	}

	// detached from the caller so a finished tool call does not cancel the insert
	go func() {
		if err := s.weatherQueryRepo.LogWeatherQuery(context.Background(), query); err != nil {
			log.Error().Err(err).Str("request_id", requestID).Msg("failed to log weather query")
		}
	}()
}
