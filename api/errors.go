package api

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey  = errors.New("api key is required")
	ErrInvalidOptions = errors.New("invalid options")
	ErrEncodeParams   = errors.New("failed to encode parameters")
	ErrDecodeResponse = errors.New("failed to decode response")

	// ErrRestResponse is matched by a REST envelope carrying a failure status or an error message.
	ErrRestResponse = errors.New("explorer returned an error")
	// ErrRPCResponse is matched by a proxy envelope carrying an error code.
	ErrRPCResponse = errors.New("explorer rpc returned an error")
)

// ResponseError is a well-formed envelope that reports a failure. Envelope is the
// compacted response body; Options the encoded request options as JSON.
type ResponseError struct {
	Kind     error
	Envelope string
	Options  string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("Error: %s. Options: %s", e.Envelope, e.Options)
}

func (e *ResponseError) Unwrap() error {
	return e.Kind
}

// HTTPError is a response outside the 2xx range. The body is kept as received.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, string(e.Body))
}
