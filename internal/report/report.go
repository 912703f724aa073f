// Package report renders weather observations and lookup failures into the
// sentences returned to tool callers.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ulascansenturk/weather-tools/internal/cities"
	"ulascansenturk/weather-tools/internal/providers"
	"ulascansenturk/weather-tools/internal/weathercode"
)

const TimeoutMessage = "Error: timed out while querying the weather API."

type WeatherReport struct {
	City                    string  `json:"city"`
	TemperatureCelsius      float64 `json:"temperature_celsius"`
	RelativeHumidityPercent float64 `json:"relative_humidity_percent"`
	WeatherCode             int     `json:"weather_code"`
	Sky                     string  `json:"sky"`

	// Literal upstream spellings of the numbers; when set they are printed
	// instead of the float values.
	TemperatureText string `json:"-"`
	HumidityText    string `json:"-"`
}

func New(city string, obs providers.CurrentObservation) WeatherReport {
	return WeatherReport{
		City:                    city,
		TemperatureCelsius:      obs.TemperatureCelsius,
		RelativeHumidityPercent: obs.RelativeHumidityPercent,
		WeatherCode:             obs.WeatherCode,
		Sky:                     weathercode.Describe(obs.WeatherCode),
		TemperatureText:         obs.TemperatureText,
		HumidityText:            obs.HumidityText,
	}
}

func (r WeatherReport) String() string {
	return fmt.Sprintf("Weather in %s: %s°C, Humidity: %s%%, Sky: %s. Data from %s.",
		r.City,
		formatNumber(r.TemperatureText, r.TemperatureCelsius),
		formatNumber(r.HumidityText, r.RelativeHumidityPercent),
		r.Sky,
		providers.ProviderName,
	)
}

func Format(city string, obs providers.CurrentObservation) string {
	return New(city, obs).String()
}

// FormatError turns any lookup failure into a single user facing sentence.
// Errors outside the known taxonomy are reported like unexpected fetch errors.
func FormatError(err error) string {
	var notFound *cities.NotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("City '%s' is not available. Available cities: %s.",
			notFound.Key, strings.Join(notFound.Available, ", "))
	}

	var fetchErr *providers.FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case providers.KindTimeout:
			return TimeoutMessage
		case providers.KindHTTPStatus:
			return fmt.Sprintf("HTTP error while fetching the weather: %d", fetchErr.Status)
		default:
			return "Error while fetching the weather: " + fetchErr.Detail
		}
	}

	detail := "unknown error"
	if err != nil {
		detail = err.Error()
	}
	return "Error while fetching the weather: " + detail
}

// formatNumber prints the upstream literal when known ("21.0" stays "21.0"),
// otherwise v in its shortest exact decimal form.
func formatNumber(literal string, v float64) string {
	if literal != "" {
		return literal
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
