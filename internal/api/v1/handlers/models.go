package handlers

import (
	"time"

	"ulascansenturk/weather-tools/internal/report"
)

type WeatherResponse struct {
	City    string               `json:"city"`
	Summary string               `json:"summary"`
	Report  report.WeatherReport `json:"report"`
}

type City struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Default     bool    `json:"default"`
}

type CitiesResponse struct {
	Cities []City `json:"cities"`
}

type RecentQueryResponse struct {
	RequestID               string    `json:"request_id"`
	City                    string    `json:"city"`
	Outcome                 string    `json:"outcome"`
	TemperatureCelsius      float64   `json:"temperature_celsius"`
	RelativeHumidityPercent float64   `json:"relative_humidity_percent"`
	WeatherCode             int       `json:"weather_code"`
	CreatedAt               time.Time `json:"created_at"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
