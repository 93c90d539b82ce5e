package schedule

import (
	"errors"
	"fmt"
)

// Kind classifies scheduling failures so the HTTP edge can map them to
// responses without parsing messages.
type Kind string

const (
	// KindNotFound: associate, day availability or slot does not exist.
	KindNotFound Kind = "not_found"
	// KindConflict: the slot exists but is booked/unavailable, or the
	// requested duration is not in its allowed set.
	KindConflict Kind = "conflict"
	// KindRace: a concurrent writer changed the aggregate and the bounded
	// retries were exhausted.
	KindRace Kind = "race"
	// KindValidation: malformed input rejected before any mutation.
	KindValidation Kind = "validation"
	// KindFatal: the persistence layer failed for reasons unrelated to
	// concurrency; never retried.
	KindFatal Kind = "fatal"
)

// Error is the typed failure result returned by the availability and booking
// engines.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a typed scheduling error.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError attaches a cause to a typed scheduling error.
func WrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the failure kind from err. Unclassified errors are treated
// as fatal infrastructure failures.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindFatal
}

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
