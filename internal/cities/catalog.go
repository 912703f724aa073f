// Package cities holds the static catalog of supported cities and resolves
// user supplied city keys against it.
package cities

import (
	_ "time/tzdata"
)

var catalog = []CityEntry{
	{
		Key:         DefaultKey,
		DisplayName: "L'Hospitalet de Llobregat",
		Latitude:    41.3597,
		Longitude:   2.1003,
		Timezone:    "Europe/Madrid",
		Aliases:     []string{"hospitalet", "l'hospitalet", "l'hospitalet de llobregat"},
	},
	{Key: "barcelona", DisplayName: "Barcelona", Latitude: 41.3874, Longitude: 2.1686, Timezone: "Europe/Madrid"},
	{Key: "madrid", DisplayName: "Madrid", Latitude: 40.4168, Longitude: -3.7038, Timezone: "Europe/Madrid"},
	{Key: "valencia", DisplayName: "Valencia", Latitude: 39.4699, Longitude: -0.3763, Timezone: "Europe/Madrid"},
	{Key: "sevilla", DisplayName: "Sevilla", Latitude: 37.3891, Longitude: -5.9845, Timezone: "Europe/Madrid"},
	{Key: "bilbao", DisplayName: "Bilbao", Latitude: 43.2630, Longitude: -2.9350, Timezone: "Europe/Madrid"},
	{Key: "zaragoza", DisplayName: "Zaragoza", Latitude: 41.6488, Longitude: -0.8891, Timezone: "Europe/Madrid"},
	{Key: "malaga", DisplayName: "Málaga", Latitude: 36.7213, Longitude: -4.4214, Timezone: "Europe/Madrid"},
	{Key: "palma", DisplayName: "Palma", Latitude: 39.5696, Longitude: 2.6502, Timezone: "Europe/Madrid"},
	{Key: "las palmas", DisplayName: "Las Palmas de Gran Canaria", Latitude: 28.1235, Longitude: -15.4363, Timezone: "Atlantic/Canary"},
}

var defaultRegistry = MustNewRegistry(DefaultKey, catalog)

// Default returns the process-wide registry built from the static catalog.
// It is read-only and safe for concurrent use.
func Default() *Registry {
	return defaultRegistry
}
