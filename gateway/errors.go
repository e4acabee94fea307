// Package gateway file: gateway/errors.go
package gateway

import (
	"errors"
	"fmt"
)

// ----------------------- error taxonomy -----------------------

// Kind classifies a failed API call.
type Kind int

const (
	// KindNetwork: the request never reached the server or no response came back.
	KindNetwork Kind = iota
	// KindAuth: 401/403 — missing, expired or insufficient token.
	KindAuth
	// KindValidation: any other 4xx carrying a structured message.
	KindValidation
	// KindServer: 5xx, or a success response whose body could not be decoded.
	KindServer
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// APIError is the single error type surfaced by every gateway call.
// The gateway never retries and never swallows a failure; callers
// branch on Kind.
type APIError struct {
	Kind    Kind
	Status  int // HTTP status, 0 when the request never completed
	Message string
	Err     error // underlying cause, may be nil
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("gateway: %s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("gateway: %s error: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *APIError) Unwrap() error { return e.Err }

// ----------------------- classification helpers -----------------------

// IsAuth reports whether err is an authorization failure (401/403).
func IsAuth(err error) bool { return hasKind(err, KindAuth) }

// IsValidation reports whether err is a rejected-input failure.
func IsValidation(err error) bool { return hasKind(err, KindValidation) }

// IsNetwork reports whether err means the server was never reached.
func IsNetwork(err error) bool { return hasKind(err, KindNetwork) }

// IsServer reports whether err is a server-side failure.
func IsServer(err error) bool { return hasKind(err, KindServer) }

func hasKind(err error, k Kind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// Notice converts an error into a human-readable notice for the UI.
// Validation errors keep the server's own message; everything else
// collapses to a generic failure line.
func Notice(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case KindValidation:
			if apiErr.Message != "" {
				return apiErr.Message
			}
		case KindAuth:
			return "You are not authorized to perform this action."
		}
	}
	return "Something went wrong. Please try again."
}
