package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderName = "Open-Meteo"

	DefaultBaseURL = "https://api.open-meteo.com"

	// RequestTimeout bounds a single upstream call.
	RequestTimeout = 10 * time.Second

	currentFields = "temperature_2m,relative_humidity_2m,weather_code"
)

type CurrentObservation struct {
	TemperatureCelsius      float64 `json:"temperature_celsius"`
	RelativeHumidityPercent float64 `json:"relative_humidity_percent"`
	WeatherCode             int     `json:"weather_code"`
	// TemperatureText and HumidityText hold the numbers exactly as the
	// upstream wrote them, e.g. "21.0".
	TemperatureText string `json:"-"`
	HumidityText    string `json:"-"`
}

type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, latitude, longitude float64, timezone string) (*CurrentObservation, error)
	GetHTTPClient() *http.Client
}

type openMeteoService struct {
	baseURL string
	client  *http.Client
}

func NewOpenMeteoService(baseURL string) WeatherProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &openMeteoService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// openMeteoResponse keeps the raw field values so that absent fields, string
// typed values and the literal number text can all be told apart.
type openMeteoResponse struct {
	Current *struct {
		Temperature2M      json.RawMessage `json:"temperature_2m"`
		RelativeHumidity2M json.RawMessage `json:"relative_humidity_2m"`
		WeatherCode        json.RawMessage `json:"weather_code"`
	} `json:"current"`
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// GetCurrentWeather issues exactly one request; failures are never retried.
func (s *openMeteoService) GetCurrentWeather(ctx context.Context, latitude, longitude float64, timezone string) (*CurrentObservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.requestURL(latitude, longitude, timezone), nil)
	if err != nil {
		return nil, unexpectedError("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, classifyTransportError("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, statusError(resp.StatusCode)
	}

	var apiResp openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, classifyTransportError("malformed JSON", err)
	}

	if apiResp.Error {
		return nil, unexpectedError("API error: "+apiResp.Reason, nil)
	}

	if apiResp.Current == nil {
		return nil, unexpectedError("response has no 'current' object", nil)
	}

	temperature, temperatureText, err := requiredNumber("temperature_2m", apiResp.Current.Temperature2M)
	if err != nil {
		return nil, err
	}

	humidity, humidityText, err := requiredNumber("relative_humidity_2m", apiResp.Current.RelativeHumidity2M)
	if err != nil {
		return nil, err
	}

	code, err := weatherCode(apiResp.Current.WeatherCode)
	if err != nil {
		return nil, err
	}

	return &CurrentObservation{
		TemperatureCelsius:      temperature,
		RelativeHumidityPercent: humidity,
		WeatherCode:             code,
		TemperatureText:         temperatureText,
		HumidityText:            humidityText,
	}, nil
}

func (s *openMeteoService) GetHTTPClient() *http.Client {
	return s.client
}

func (s *openMeteoService) requestURL(latitude, longitude float64, timezone string) string {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current", currentFields)
	params.Set("timezone", timezone)

	return fmt.Sprintf("%s/v1/forecast?%s", s.baseURL, params.Encode())
}

func requiredNumber(field string, raw json.RawMessage) (float64, string, error) {
	value, text, ok, err := numberField(field, raw)
	if err != nil {
		return 0, "", err
	}
	if !ok {
		return 0, "", unexpectedError(fmt.Sprintf("response is missing 'current.%s'", field), nil)
	}
	return value, text, nil
}

// weatherCode accepts whole numbers in any JSON spelling (3, 3.0, 3e0) and
// defaults to 0 when the field is absent or null.
func weatherCode(raw json.RawMessage) (int, error) {
	value, _, ok, err := numberField("weather_code", raw)
	if err != nil || !ok {
		return 0, err
	}
	if math.Trunc(value) != value || value > math.MaxInt32 || value < math.MinInt32 {
		return 0, unexpectedError(fmt.Sprintf("invalid 'current.weather_code': %s is not a whole number", strings.TrimSpace(string(raw))), nil)
	}
	return int(value), nil
}

// numberField parses a raw JSON value that must be a number literal. ok is
// false when the field is absent or null. Quoted numbers are rejected.
func numberField(field string, raw json.RawMessage) (value float64, text string, ok bool, err error) {
	text = strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, "", false, nil
	}

	value, parseErr := json.Number(text).Float64()
	if parseErr != nil {
		return 0, "", false, unexpectedError(fmt.Sprintf("invalid 'current.%s': %s is not a JSON number", field, text), nil)
	}
	return value, text, true, nil
}
