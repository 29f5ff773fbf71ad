package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies client errors into the categories callers branch on.
type Kind int

const (
	// KindNetwork covers transport failures and unexpected server errors.
	KindNetwork Kind = iota
	// KindNotFound means the requested resource does not exist.
	KindNotFound
	// KindValidation means the input was rejected locally before any call.
	KindValidation
	// KindConflict means the operation is not a valid transition.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "network"
	}
}

// Error is the structured error returned by this package.
type Error struct {
	Kind    Kind
	Op      string // e.g. "fetch profile"
	Message string // server-provided or local detail
	Status  int    // HTTP status when the server answered
	Err     error  // wrapped transport error, if any
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError builds a local validation failure for the given field.
func ValidationError(field, detail string) *Error {
	return &Error{Kind: KindValidation, Op: field, Message: detail}
}

// ConflictError builds a locally rejected invalid transition.
func ConflictError(op, detail string) *Error {
	return &Error{Kind: KindConflict, Op: op, Message: detail}
}

// ErrKind reports the Kind of err, defaulting to KindNetwork for errors that
// did not originate in this package.
func ErrKind(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindNetwork
}

// IsNotFound reports whether err denotes a missing resource.
func IsNotFound(err error) bool { return ErrKind(err) == KindNotFound }

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool { return ErrKind(err) == KindValidation }

// IsConflict reports whether err is a locally rejected transition.
func IsConflict(err error) bool { return ErrKind(err) == KindConflict }

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindNetwork
	}
}
