// Package tools exposes the weather service as MCP tools.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-tools/internal/service"
)

const (
	GetWeatherToolName        = "get_weather"
	GetWeatherDefaultToolName = "get_weather_lhospitalet"

	cityArgument = "city"
)

const getWeatherDescription = `Get the current weather for a supported city.
Returns temperature in degrees Celsius, relative humidity and a description of the sky.
Data comes from the Open-Meteo API.`

const getWeatherDefaultDescription = `Get the current weather in L'Hospitalet de Llobregat (Barcelona, Spain).
Returns temperature in degrees Celsius, relative humidity and a description of the sky.

Use this tool when the user asks about the weather in:
- L'Hospitalet de Llobregat
- Hospitalet
- Hospi
- L'Hospi
- L'H

Data comes from the Open-Meteo API.`

type Tool struct {
	Definition mcp.Tool
	Handler    server.ToolHandlerFunc
}

// Tools returns the tool definitions bound to svc.
func Tools(svc service.WeatherService) []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool(GetWeatherToolName,
				mcp.WithDescription(getWeatherDescription),
				mcp.WithString(cityArgument,
					mcp.Required(),
					mcp.Description("City key, e.g. barcelona, madrid or lhospitalet. Case and surrounding spaces are ignored."),
				),
			),
			Handler: getWeatherHandler(svc),
		},
		{
			Definition: mcp.NewTool(GetWeatherDefaultToolName,
				mcp.WithDescription(getWeatherDefaultDescription),
			),
			Handler: getWeatherDefaultHandler(svc),
		},
	}
}

func NewServer(svc service.WeatherService, name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(false))

	for _, tool := range Tools(svc) {
		s.AddTool(tool.Definition, tool.Handler)
	}

	return s
}

// getWeatherHandler never returns an error: a missing city argument is
// resolved like an unknown city so the caller gets the list of valid ones.
func getWeatherHandler(svc service.WeatherService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		city := request.GetString(cityArgument, "")
		log.Debug().Str("tool", GetWeatherToolName).Str("city", city).Msg("tool called")

		return mcp.NewToolResultText(svc.GetWeather(ctx, city)), nil
	}
}

func getWeatherDefaultHandler(svc service.WeatherService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Debug().Str("tool", GetWeatherDefaultToolName).Msg("tool called")

		return mcp.NewToolResultText(svc.GetWeatherDefault(ctx)), nil
	}
}
