package client

import (
	"errors"
	"fmt"
)

// ErrHTTPStatus matches every *HTTPError.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// HTTPError is returned when the service answers with a non-2xx status and
// no SOAP fault.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string // truncated
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Status)
}

// Is makes errors.Is(err, ErrHTTPStatus) true for any *HTTPError.
func (e *HTTPError) Is(target error) bool { return target == ErrHTTPStatus }
