package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind buckets a gateway failure into one user-facing category.
type Kind int

const (
	KindUnknown Kind = iota
	KindTimeout
	KindOffline
	KindNotFound
	KindRateLimited
	KindServer
)

// APIError wraps a transport failure or non-success status with its
// classification.
type APIError struct {
	Kind   Kind
	Status int // HTTP status when the response arrived, zero otherwise
	Op     string
	Err    error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// classifyStatus maps a non-success HTTP status to a Kind.
func classifyStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return KindTimeout
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// classifyTransport maps a request error (no response) to a Kind.
func classifyTransport(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindOffline
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindOffline
	}
	return KindUnknown
}

// ClassifyError returns the Kind recorded on err, or KindUnknown for
// errors that did not come from the gateway.
func ClassifyError(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// Message returns the single human-readable string for err's class.
func Message(err error) string {
	switch ClassifyError(err) {
	case KindTimeout:
		return "The request timed out. Check your connection and try again."
	case KindOffline:
		return "You appear to be offline. Check your connection."
	case KindNotFound:
		return "That entry could not be found."
	case KindRateLimited:
		return "Too many requests. Wait a moment and try again."
	case KindServer:
		return "The catalog service is having trouble. Try again later."
	default:
		return "Something went wrong. Try again."
	}
}
