package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-tools/internal/cities"
	"ulascansenturk/weather-tools/internal/report"
	"ulascansenturk/weather-tools/internal/service"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/weather":
		h.GetWeather(w, r)
	case "/weather/default":
		h.GetWeatherDefault(w, r)
	case "/cities":
		h.ListCities(w, r)
	case "/queries/recent":
		h.GetRecentQuery(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.URL.Path != "/weather" {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	city := r.URL.Query().Get("city")
	if strings.TrimSpace(city) == "" {
		respondWithError(w, http.StatusBadRequest, "city parameter 'city' is required")
		return
	}

	h.lookup(w, r, city)
}

func (h *WeatherHandler) GetWeatherDefault(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.lookup(w, r, h.weatherService.DefaultKey())
}

func (h *WeatherHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	entries := h.weatherService.Cities()
	defaultKey := h.weatherService.DefaultKey()
	response := CitiesResponse{Cities: make([]City, 0, len(entries))}
	for _, entry := range entries {
		response.Cities = append(response.Cities, City{
			Key:         entry.Key,
			DisplayName: entry.DisplayName,
			Latitude:    entry.Latitude,
			Longitude:   entry.Longitude,
			Timezone:    entry.Timezone,
			Default:     entry.Key == defaultKey,
		})
	}

	respondWithJSON(w, http.StatusOK, response)
}

// GetRecentQuery reports the latest recorded invocation for a city. It reads
// the query log only; the upstream is never called.
func (h *WeatherHandler) GetRecentQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := r.URL.Query().Get("city")
	if strings.TrimSpace(city) == "" {
		respondWithError(w, http.StatusBadRequest, "city parameter 'city' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query, err := h.weatherService.RecentQuery(ctx, city)
	if err != nil {
		status := statusForRecentQueryError(err)
		detail := err.Error()
		var notFound *cities.NotFoundError
		if errors.As(err, &notFound) {
			detail = report.FormatError(err)
		}
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("city", city).Msg("failed to read query log")
			detail = "failed to read query log"
		}
		respondWithError(w, status, detail)
		return
	}

	respondWithJSON(w, http.StatusOK, RecentQueryResponse{
		RequestID:               query.RequestID,
		City:                    query.CityKey,
		Outcome:                 query.Outcome,
		TemperatureCelsius:      query.TemperatureCelsius,
		RelativeHumidityPercent: query.RelativeHumidityPercent,
		WeatherCode:             query.WeatherCode,
		CreatedAt:               query.CreatedAt,
	})
}

func (h *WeatherHandler) lookup(w http.ResponseWriter, r *http.Request, city string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	weatherReport, err := h.weatherService.Lookup(ctx, city)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to get weather data")
		respondWithError(w, statusForLookupError(err), report.FormatError(err))
		return
	}

	respondWithJSON(w, http.StatusOK, WeatherResponse{
		City:    weatherReport.City,
		Summary: weatherReport.String(),
		Report:  weatherReport,
	})
}
