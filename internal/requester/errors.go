package requester

import (
	"context"
	"errors"
	"net"
	"os"
)

// Error is the closed set of reasons a request can fail.
type Error int

const (
	// BadURL means endpoint+path did not form a usable http(s) URL.
	BadURL Error = iota
	// ConnectionError covers every I/O failure that is not a timeout.
	ConnectionError
	// Timeout means connecting or reading exceeded its bound.
	Timeout
)

// String returns the human readable reason reported to callers.
func (e Error) String() string {
	switch e {
	case BadURL:
		return "bad url"
	case ConnectionError:
		return "connection error"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error implements error.
func (e Error) Error() string {
	return e.String()
}

// Classify maps err onto the failure taxonomy. Anything that is neither a
// timeout nor already an Error becomes ConnectionError.
func Classify(err error) Error {
	var reason Error
	if errors.As(err, &reason) {
		return reason
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}
	return ConnectionError
}
