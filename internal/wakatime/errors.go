package wakatime

import "errors"

var (
	// ErrUnavailable indicates the API could not be reached.
	ErrUnavailable = errors.New("wakatime api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("wakatime request timed out")

	// ErrUnauthorized indicates the API rejected the key (401/403).
	ErrUnauthorized = errors.New("wakatime api key rejected")

	// ErrUnexpectedStatus indicates any other non-200 response.
	ErrUnexpectedStatus = errors.New("unexpected wakatime response status")

	// ErrInvalidResponse indicates the body was not the expected JSON.
	ErrInvalidResponse = errors.New("invalid wakatime response")
)
