package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals that a requested record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// TrustBoundaryError is raised when privileged store access is requested
// from a context that is reachable by untrusted (browser-shipped) code.
// 🛡️ This is always a programming or deployment mistake, never user input.
type TrustBoundaryError struct {
	Operation string
}

func (e *TrustBoundaryError) Error() string {
	return fmt.Sprintf("trust boundary violation: privileged handle requested from an untrusted context (%s)", e.Operation)
}

// FieldViolation describes a single failed constraint on a submission field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field of a submission.
// Callers surface it as a 400 with the full field list, never just the first hit.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return "invalid submission: " + strings.Join(fields, ", ")
}

// PersistenceError carries whatever the hosted store reported for a failed
// write or read: a code, a message, and an optional hint for operability.
type PersistenceError struct {
	Code    string
	Message string
	Hint    string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store operation failed (%s): %s", e.Code, e.Message)
	}
	return "store operation failed: " + e.Message
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError marks a failed email send. It is terminal at the
// workflow layer: logged once, then swallowed, never surfaced to callers.
type NotificationError struct {
	Recipient string
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification to %s failed: %v", e.Recipient, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
