package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type FetchErrorKind int

const (
	KindUnexpected FetchErrorKind = iota
	KindTimeout
	KindHTTPStatus
)

func (k FetchErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindHTTPStatus:
		return "http_status"
	default:
		return "unexpected"
	}
}

// FetchError classifies a failed upstream call.
type FetchError struct {
	Kind   FetchErrorKind
	Status int
	Detail string
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindTimeout:
		return "weather API request timed out"
	case KindHTTPStatus:
		return fmt.Sprintf("weather API returned status code: %d", e.Status)
	default:
		return "weather API request failed: " + e.Detail
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func statusError(status int) *FetchError {
	return &FetchError{Kind: KindHTTPStatus, Status: status}
}

func unexpectedError(detail string, err error) *FetchError {
	if err != nil {
		detail = fmt.Sprintf("%s: %v", detail, err)
	}
	return &FetchError{Kind: KindUnexpected, Detail: detail, Err: err}
}

// classifyTransportError maps errors from the HTTP client, including those
// surfacing while the body is read, to a FetchError.
func classifyTransportError(detail string, err error) *FetchError {
	if isTimeout(err) {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	return unexpectedError(detail, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
