package translation

import (
	"errors"
	"fmt"
)

// ErrNoTranslation indicates a well-formed provider response that
// contained no translation candidate.
var ErrNoTranslation = errors.New("no translation returned")

// TransportError is a failed provider call: a network error, a
// timeout or a non-2xx HTTP response. StatusCode is 0 when no
// response arrived. The caller may retry; nothing in this package
// retries on its own.
type TransportError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s translation failed with HTTP %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s translation request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseError is a reply that arrived fine but carried no usable
// translation, either an empty candidate list or an undecodable
// payload. It wraps ErrNoTranslation for the empty case.
type ResponseError struct {
	Provider string
	Err      error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s translation response unusable: %v", e.Provider, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
