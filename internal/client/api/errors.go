package api

import "errors"

var (
	// ErrUnavailable: the request never produced an HTTP response
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("authority unavailable")

	// ErrRejected: the authority answered with a non-2xx status.
	ErrRejected = errors.New("request rejected by authority")

	// ErrMalformedResponse: a 2xx response whose body cannot back a session
	// or account record.
	ErrMalformedResponse = errors.New("malformed authority response")
)
