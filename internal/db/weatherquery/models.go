package weatherquery

import (
	"time"
)

// WeatherQuery is one tool invocation as recorded in the query log.
type WeatherQuery struct {
	ID                      uint      `json:"id" gorm:"primaryKey"`
	RequestID               string    `json:"request_id" gorm:"column:request_id;size:36"`
	CityKey                 string    `json:"city_key" gorm:"index:idx_city_key;index:idx_city_key_created_at"`
	Outcome                 string    `json:"outcome" gorm:"column:outcome"`
	TemperatureCelsius      float64   `json:"temperature_celsius" gorm:"column:temperature_celsius"`
	RelativeHumidityPercent float64   `json:"relative_humidity_percent" gorm:"column:relative_humidity_percent"`
	WeatherCode             int       `json:"weather_code" gorm:"column:weather_code"`
	CreatedAt               time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_key_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}

// Outcomes besides these are the fetch error kinds (timeout, http_status,
// unexpected).
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
)
