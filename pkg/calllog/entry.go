package calllog

import "time"

// Entry captures one SOAP call handled by the mock server.
type Entry struct {
	// ID is a unique identifier for the entry.
	ID string `json:"id"`

	// Timestamp is when the call was received.
	Timestamp time.Time `json:"timestamp"`

	// Operation is the resolved operation name (e.g. "s1157"), empty when
	// the call could not be resolved.
	Operation string `json:"operation,omitempty"`

	// SOAPAction is the raw soapaction header.
	SOAPAction string `json:"soapAction,omitempty"`

	// SOAPVersion is "1.1" or "1.2".
	SOAPVersion string `json:"soapVersion,omitempty"`

	// Params holds the text of each child of the operation element, keyed by
	// local name (P1, P2, ...).
	Params map[string]string `json:"params,omitempty"`

	// Headers are the request headers.
	Headers map[string][]string `json:"headers,omitempty"`

	// RemoteAddr is the client address.
	RemoteAddr string `json:"remoteAddr,omitempty"`

	// ResponseStatus is the HTTP status returned.
	ResponseStatus int `json:"responseStatus"`

	// Fault is set when a SOAP fault was returned.
	Fault     bool   `json:"fault,omitempty"`
	FaultCode string `json:"faultCode,omitempty"`

	// DurationMs is the handling time in milliseconds.
	DurationMs int `json:"durationMs"`
}
