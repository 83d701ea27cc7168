package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error taxonomy for character API calls.
var (
	ErrNetwork           = errors.New("character api unreachable")
	ErrUnexpectedStatus  = errors.New("character api returned non-success status")
	ErrMalformedResponse = errors.New("malformed character api response")
	ErrEmptyResult       = errors.New("character api returned no results")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is lets errors.Is(err, ErrUnexpectedStatus) match any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Kind returns a short label for the failure class of err, for logging.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNetwork):
		return "network_failure"
	case errors.Is(err, ErrUnexpectedStatus):
		return "unexpected_status"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrEmptyResult):
		return "empty_result"
	default:
		return "unknown"
	}
}
