package ai

import (
	"fmt"
	"strings"
)

// ErrorKind classifies an API failure so callers can decide whether to retry,
// reprompt the user for credentials, or back off.
type ErrorKind string

// Error kinds for APICallError classification
const (
	KindAuth    ErrorKind = "auth"
	KindQuota   ErrorKind = "quota"
	KindNetwork ErrorKind = "network"
	KindUnknown ErrorKind = "unknown"
)

// APICallError wraps a failure from the generative AI provider with a
// coarse classification.
type APICallError struct {
	Kind  ErrorKind
	Cause error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("ai service call failed (%s): %v", e.Kind, e.Cause)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError indicates the model responded but its output was not the JSON
// shape we asked for.
type ParseError struct {
	Content string
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse ai response: %v (content: %s)", e.Cause, truncate(e.Content, 200))
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// classifyAPIError maps provider error text to an ErrorKind. The Gemini SDK
// does not expose structured error codes for all failure modes, so this is a
// string match on the known markers.
func classifyAPIError(err error) ErrorKind {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "permission"):
		return KindAuth
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource exhausted") || strings.Contains(msg, "429"):
		return KindQuota
	case strings.Contains(msg, "connection") || strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline") || strings.Contains(msg, "unavailable"):
		return KindNetwork
	default:
		return KindUnknown
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
