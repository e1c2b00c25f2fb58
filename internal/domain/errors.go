package domain

import "errors"

type ErrorKind string

const (
	KindNotFound       ErrorKind = "NOT_FOUND"
	KindConflict       ErrorKind = "CONFLICT"
	KindInvalidState   ErrorKind = "INVALID_STATE"
	KindStorageFailure ErrorKind = "STORAGE_FAILURE"
)

// Error is a business-rule or storage failure carrying the human-readable
// message callers are expected to surface verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func InvalidState(msg string) *Error {
	return &Error{Kind: KindInvalidState, Message: msg}
}

func StorageFailure(msg string, cause error) *Error {
	return &Error{Kind: KindStorageFailure, Message: msg, Cause: cause}
}

// KindOf classifies any error; non-domain errors count as storage failures.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorageFailure
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

func IsInvalidState(err error) bool {
	return KindOf(err) == KindInvalidState
}
