package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-tools/internal/cities"
	"ulascansenturk/weather-tools/internal/providers"
	"ulascansenturk/weather-tools/internal/service"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "UPSTREAM_ERROR"
		title = "Bad Gateway"
	case http.StatusGatewayTimeout:
		errorCode = "UPSTREAM_TIMEOUT"
		title = "Gateway Timeout"
	case http.StatusServiceUnavailable:
		errorCode = "SERVICE_UNAVAILABLE"
		title = "Service Unavailable"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// statusForLookupError maps a lookup failure to the HTTP status returned by
// the REST surface.
func statusForLookupError(err error) int {
	var notFound *cities.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var fetchErr *providers.FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.Kind == providers.KindTimeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func statusForRecentQueryError(err error) int {
	var notFound *cities.NotFoundError
	switch {
	case errors.As(err, &notFound), errors.Is(err, service.ErrNoRecentQuery):
		return http.StatusNotFound
	case errors.Is(err, service.ErrQueryLogDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
