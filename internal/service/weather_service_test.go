package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"ulascansenturk/weather-tools/internal/cities"
	"ulascansenturk/weather-tools/internal/db/weatherquery"
	"ulascansenturk/weather-tools/internal/mocks"
	"ulascansenturk/weather-tools/internal/providers"
	"ulascansenturk/weather-tools/internal/report"
	"ulascansenturk/weather-tools/internal/service"
)

type WeatherServiceTestSuite struct {
	suite.Suite
	mockWeatherAPI *mocks.MockWeatherProvider
	mockRepo       *mocks.MockRepository
	registry       *cities.Registry
	service        service.WeatherService
	logged         chan *weatherquery.WeatherQuery
	ctx            context.Context
}

func (s *WeatherServiceTestSuite) SetupTest() {
	s.mockWeatherAPI = mocks.NewMockWeatherProvider(s.T())
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.registry = cities.Default()
	s.service = service.NewWeatherService(s.registry, s.mockWeatherAPI, s.mockRepo)
	s.logged = make(chan *weatherquery.WeatherQuery, 4)
	s.ctx = context.Background()
}

func (s *WeatherServiceTestSuite) expectQueryLog() {
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.AnythingOfType("*weatherquery.WeatherQuery")).
		Run(func(args mock.Arguments) {
			s.logged <- args.Get(1).(*weatherquery.WeatherQuery)
		}).
		Return(nil).
		Once()
}

func (s *WeatherServiceTestSuite) waitForQueryLog() *weatherquery.WeatherQuery {
	select {
	case query := <-s.logged:
		return query
	case <-time.After(time.Second):
		s.FailNow("query was not logged in time")
		return nil
	}
}

func (s *WeatherServiceTestSuite) TestGetWeatherSuccess() {
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 41.3874, 2.1686, "Europe/Madrid").
		Return(&providers.CurrentObservation{TemperatureCelsius: 21.4, RelativeHumidityPercent: 55, WeatherCode: 0}, nil).
		Once()
	s.expectQueryLog()

	result := s.service.GetWeather(s.ctx, "barcelona")

	s.Equal("Weather in Barcelona: 21.4°C, Humidity: 55%, Sky: Clear sky. Data from Open-Meteo.", result)

	query := s.waitForQueryLog()
	s.Equal("barcelona", query.CityKey)
	s.Equal(weatherquery.OutcomeOK, query.Outcome)
	s.Equal(21.4, query.TemperatureCelsius)
	s.Equal(55.0, query.RelativeHumidityPercent)
	s.Len(query.RequestID, 36)
}

func (s *WeatherServiceTestSuite) TestGetWeatherNormalizesKey() {
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 40.4168, -3.7038, "Europe/Madrid").
		Return(&providers.CurrentObservation{TemperatureCelsius: 30.1, RelativeHumidityPercent: 20, WeatherCode: 1}, nil).
		Times(3)
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.Anything).Return(nil).Maybe()

	expected := "Weather in Madrid: 30.1°C, Humidity: 20%, Sky: Mainly clear. Data from Open-Meteo."
	for _, key := range []string{"Madrid", " madrid ", "MADRID"} {
		s.Equal(expected, s.service.GetWeather(s.ctx, key))
	}
}

func (s *WeatherServiceTestSuite) TestLookupReturnsStructuredReport() {
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 39.4699, -0.3763, "Europe/Madrid").
		Return(&providers.CurrentObservation{TemperatureCelsius: 24, RelativeHumidityPercent: 70, WeatherCode: 63}, nil)
	s.expectQueryLog()

	result, err := s.service.Lookup(s.ctx, "valencia")

	s.Require().NoError(err)
	s.Equal(report.WeatherReport{
		City:                    "Valencia",
		TemperatureCelsius:      24,
		RelativeHumidityPercent: 70,
		WeatherCode:             63,
		Sky:                     "Moderate rain",
	}, result)
	s.waitForQueryLog()
}

func (s *WeatherServiceTestSuite) TestGetWeatherUnknownCity() {
	s.expectQueryLog()

	result := s.service.GetWeather(s.ctx, "Atlantis")

	s.Contains(result, "'atlantis'")
	for _, name := range s.registry.DisplayNames() {
		s.Contains(result, name)
	}
	s.mockWeatherAPI.AssertNotCalled(s.T(), "GetCurrentWeather")

	query := s.waitForQueryLog()
	s.Equal("atlantis", query.CityKey)
	s.Equal(weatherquery.OutcomeNotFound, query.Outcome)
}

func (s *WeatherServiceTestSuite) TestLookupUnknownCityIsNotFoundError() {
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := s.service.Lookup(s.ctx, "")

	var notFound *cities.NotFoundError
	s.Require().True(errors.As(err, &notFound))
	s.Equal(s.registry.DisplayNames(), notFound.Available)
}

func (s *WeatherServiceTestSuite) TestGetWeatherTimeout() {
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 41.3874, 2.1686, "Europe/Madrid").
		Return(nil, &providers.FetchError{Kind: providers.KindTimeout, Err: context.DeadlineExceeded}).
		Once()
	s.expectQueryLog()

	result := s.service.GetWeather(s.ctx, "barcelona")

	s.Equal(report.TimeoutMessage, result)
	s.mockWeatherAPI.AssertNumberOfCalls(s.T(), "GetCurrentWeather", 1)
	s.Equal("timeout", s.waitForQueryLog().Outcome)
}

func (s *WeatherServiceTestSuite) TestGetWeatherHTTPStatus() {
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 41.3874, 2.1686, "Europe/Madrid").
		Return(nil, &providers.FetchError{Kind: providers.KindHTTPStatus, Status: 500}).
		Once()
	s.expectQueryLog()

	result := s.service.GetWeather(s.ctx, "barcelona")

	s.Equal("HTTP error while fetching the weather: 500", result)
	s.Contains(result, "500")
	s.Equal("http_status", s.waitForQueryLog().Outcome)
}

func (s *WeatherServiceTestSuite) TestGetWeatherUnexpectedError() {
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 41.3874, 2.1686, "Europe/Madrid").
		Return(nil, errors.New("boom")).
		Once()
	s.expectQueryLog()

	result := s.service.GetWeather(s.ctx, "barcelona")

	s.Equal("Error while fetching the weather: boom", result)
	s.Equal("unexpected", s.waitForQueryLog().Outcome)
}

func (s *WeatherServiceTestSuite) TestGetWeatherDefaultMatchesDefaultKey() {
	obs := &providers.CurrentObservation{TemperatureCelsius: 19.8, RelativeHumidityPercent: 64, WeatherCode: 2}
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 41.3597, 2.1003, "Europe/Madrid").
		Return(obs, nil).
		Twice()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.Anything).Return(nil).Maybe()

	def := s.service.GetWeatherDefault(s.ctx)
	keyed := s.service.GetWeather(s.ctx, cities.DefaultKey)

	s.Equal(keyed, def)
	s.Equal("Weather in L'Hospitalet de Llobregat: 19.8°C, Humidity: 64%, Sky: Partly cloudy. Data from Open-Meteo.", def)
}

func (s *WeatherServiceTestSuite) TestQueryLogFailureDoesNotAffectResult() {
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 43.263, -2.935, "Europe/Madrid").
		Return(&providers.CurrentObservation{TemperatureCelsius: 14, RelativeHumidityPercent: 88, WeatherCode: 51}, nil)
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			s.logged <- args.Get(1).(*weatherquery.WeatherQuery)
		}).
		Return(errors.New("database error")).
		Once()

	result := s.service.GetWeather(s.ctx, "bilbao")

	s.Equal("Weather in Bilbao: 14°C, Humidity: 88%, Sky: Light drizzle. Data from Open-Meteo.", result)
	s.waitForQueryLog()
}

func (s *WeatherServiceTestSuite) TestWithoutRepository() {
	svc := service.NewWeatherService(s.registry, s.mockWeatherAPI, nil)
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 41.3874, 2.1686, "Europe/Madrid").
		Return(&providers.CurrentObservation{TemperatureCelsius: 21.4, RelativeHumidityPercent: 55, WeatherCode: 0}, nil)

	s.Contains(svc.GetWeather(s.ctx, "barcelona"), "Weather in Barcelona")
	s.mockRepo.AssertNotCalled(s.T(), "LogWeatherQuery")
}

func (s *WeatherServiceTestSuite) TestDefaultKeyFollowsRegistry() {
	s.Equal(cities.DefaultKey, s.service.DefaultKey())

	registry := cities.MustNewRegistry("girona", []cities.CityEntry{
		{Key: "barcelona", DisplayName: "Barcelona", Latitude: 41.3874, Longitude: 2.1686, Timezone: "Europe/Madrid"},
		{Key: "girona", DisplayName: "Girona", Latitude: 41.9794, Longitude: 2.8214, Timezone: "Europe/Madrid"},
	})
	svc := service.NewWeatherService(registry, s.mockWeatherAPI, nil)
	s.mockWeatherAPI.On("GetCurrentWeather", mock.Anything, 41.9794, 2.8214, "Europe/Madrid").
		Return(&providers.CurrentObservation{TemperatureCelsius: 16, RelativeHumidityPercent: 72, WeatherCode: 3}, nil).
		Once()

	s.Equal("girona", svc.DefaultKey())
	s.Equal("Weather in Girona: 16°C, Humidity: 72%, Sky: Overcast. Data from Open-Meteo.", svc.GetWeatherDefault(s.ctx))
}

func (s *WeatherServiceTestSuite) TestRecentQuery() {
	recorded := &weatherquery.WeatherQuery{
		RequestID:               "2f9d0c4e-8f0b-4a43-9d67-3e1f1f6b7a10",
		CityKey:                 "lhospitalet",
		Outcome:                 weatherquery.OutcomeOK,
		TemperatureCelsius:      19.8,
		RelativeHumidityPercent: 64,
		WeatherCode:             2,
	}
	s.mockRepo.On("GetRecentWeatherQuery", mock.Anything, "lhospitalet").Return(recorded, nil).Once()

	query, err := s.service.RecentQuery(s.ctx, " Hospitalet ")

	s.Require().NoError(err)
	s.Equal(recorded, query)
	s.mockWeatherAPI.AssertNotCalled(s.T(), "GetCurrentWeather")
}

func (s *WeatherServiceTestSuite) TestRecentQueryErrors() {
	s.Run("unknown city", func() {
		_, err := s.service.RecentQuery(s.ctx, "atlantis")

		var notFound *cities.NotFoundError
		s.Require().ErrorAs(err, &notFound)
		s.mockRepo.AssertNotCalled(s.T(), "GetRecentWeatherQuery", mock.Anything, mock.Anything)
	})

	s.Run("nothing recorded", func() {
		s.mockRepo.On("GetRecentWeatherQuery", mock.Anything, "madrid").Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := s.service.RecentQuery(s.ctx, "madrid")

		s.ErrorIs(err, service.ErrNoRecentQuery)
	})

	s.Run("database failure", func() {
		s.mockRepo.On("GetRecentWeatherQuery", mock.Anything, "bilbao").Return(nil, errors.New("connection reset")).Once()

		_, err := s.service.RecentQuery(s.ctx, "bilbao")

		s.Require().Error(err)
		s.Contains(err.Error(), "connection reset")
		s.NotErrorIs(err, service.ErrNoRecentQuery)
	})

	s.Run("query log disabled", func() {
		svc := service.NewWeatherService(s.registry, s.mockWeatherAPI, nil)

		_, err := svc.RecentQuery(s.ctx, "barcelona")

		s.ErrorIs(err, service.ErrQueryLogDisabled)
	})
}

func (s *WeatherServiceTestSuite) TestCities() {
	s.Equal(s.registry.Entries(), s.service.Cities())
}

func TestWeatherServiceSuite(t *testing.T) {
	suite.Run(t, new(WeatherServiceTestSuite))
}

// TestGetWeatherAgainstOpenMeteoStub drives the whole pipeline with the real
// provider against a local upstream.
func TestGetWeatherAgainstOpenMeteoStub(t *testing.T) {
	var hits atomic.Int32
	payload := `{"current":{"temperature_2m":21.4,"relative_humidity_2m":55,"weather_code":0}}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Query().Get("latitude") {
		case "41.3874", "41.3597":
			w.Write([]byte(payload))
		case "40.4168":
			w.Write([]byte(`{"current":{"temperature_2m":10,"relative_humidity_2m":80}}`))
		case "43.263":
			w.Write([]byte(`{"current":{"temperature_2m":21.0,"relative_humidity_2m":55.0,"weather_code":3.0}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer upstream.Close()

	svc := service.NewWeatherService(cities.Default(), providers.NewOpenMeteoService(upstream.URL), nil)
	ctx := context.Background()

	assert := assert.New(t)

	assert.Equal("Weather in Barcelona: 21.4°C, Humidity: 55%, Sky: Clear sky. Data from Open-Meteo.", svc.GetWeather(ctx, "barcelona"))
	assert.Equal("Weather in Madrid: 10°C, Humidity: 80%, Sky: Clear sky. Data from Open-Meteo.", svc.GetWeather(ctx, "madrid"))
	assert.Equal("Weather in Bilbao: 21.0°C, Humidity: 55.0%, Sky: Overcast. Data from Open-Meteo.", svc.GetWeather(ctx, "bilbao"))
	assert.Equal("HTTP error while fetching the weather: 500", svc.GetWeather(ctx, "valencia"))
	assert.Equal(
		"Weather in L'Hospitalet de Llobregat: 21.4°C, Humidity: 55%, Sky: Clear sky. Data from Open-Meteo.",
		svc.GetWeatherDefault(ctx),
	)
	assert.Equal(int32(5), hits.Load())
}
