// Package weavererr defines the fixed taxonomy of server-observable
// failures and how they map onto HTTP responses.
package weavererr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a weaver error into one of the categories from the
// failure taxonomy: registration errors, lifecycle errors, connection
// errors, and request-time conditions.
type Kind int

const (
	// InvalidPath means a route pattern failed to parse (bad capture
	// syntax, empty segment, duplicate capture name, ...).
	InvalidPath Kind = iota
	// RouteOccupied means a (path pattern, method) pair was already
	// registered.
	RouteOccupied
	// InitFailed means the listener failed to bind.
	InitFailed
	// ConnectionError means a per-connection I/O or protocol failure.
	ConnectionError
	// ServeExited means the underlying HTTP library's connection serve
	// loop returned, for reasons other than a clean peer close.
	ServeExited
	// NotFound means no route matched the request path.
	NotFound
	// MethodNotAllowed means the path matched but not the method.
	MethodNotAllowed
)

func (k Kind) String() string {
	switch k {
	case InvalidPath:
		return "InvalidPath"
	case RouteOccupied:
		return "RouteOccupied"
	case InitFailed:
		return "InitFailed"
	case ConnectionError:
		return "ConnectionError"
	case ServeExited:
		return "ServeExited"
	case NotFound:
		return "NotFound"
	case MethodNotAllowed:
		return "MethodNotAllowed"
	default:
		return "Unknown"
	}
}

// Error is a weaver error: a Kind, a message, and an optional wrapped
// cause from a lower layer (e.g. the underlying HTTP library).
type Error struct {
	kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Kind reports the error's category.
func (e *Error) Kind() Kind { return e.kind }

// New builds a weaver error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap builds a weaver error of the given kind around a lower-layer cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{kind: kind, msg: msg, cause: cause}
}

// Is reports whether err is a weaver error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}

// Chain joins err's wrapped cause chain with " -> ", per the diagnostics
// convention: errors originating from the underlying HTTP library keep
// their full provenance visible in logs.
func Chain(err error) string {
	if err == nil {
		return ""
	}
	var parts []string
	for err != nil {
		parts = append(parts, err.Error())
		err = errors.Unwrap(err)
	}
	return strings.Join(dedupe(parts), " -> ")
}

// dedupe removes the redundant tail that Error() already embeds via its
// own cause.Error() call, keeping Chain's output readable instead of
// repeating the same cause text twice.
func dedupe(parts []string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := []string{parts[0]}
	for i := 1; i < len(parts); i++ {
		if !strings.Contains(out[len(out)-1], parts[i]) {
			out = append(out, parts[i])
		}
	}
	return out
}

// Fmt is a convenience constructor matching fmt.Errorf's call shape for
// registration-time errors that need interpolation.
func Fmt(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}
