package registry

import "errors"

// Registry error sentinels. Transport problems are split into timeout
// and connection classes so callers can decide whether falling back to
// the local cache is appropriate.
var (
	ErrTimeout           = errors.New("request to package server timed out")
	ErrNoConnection      = errors.New("cannot connect to package server")
	ErrTransport         = errors.New("package server request failed")
	ErrMalformedResponse = errors.New("malformed server response")
	ErrServerReported    = errors.New("server rejected the request")
)
