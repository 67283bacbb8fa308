// Package apperr is the error taxonomy shared by every core operation.
// Detection sites raise the most specific kind; nothing below the HTTP
// boundary reclassifies, and unclassified errors pass through untouched.
package apperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	// KindExpiredToken is unauthorized to the caller but signals the
	// token manager to clean up the stale refresh record.
	KindExpiredToken
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func ExpiredToken(message string) *Error {
	return &Error{Kind: KindExpiredToken, Message: message}
}

// KindOf reports the kind of err and whether err belongs to the taxonomy.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
