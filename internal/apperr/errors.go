package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the airport service can return.
type Kind string

const (
	KindDuplicateEntity Kind = "DUPLICATE_ENTITY"
	KindEntityNotFound  Kind = "ENTITY_NOT_FOUND"
	KindInvalidData     Kind = "INVALID_DATA"
	KindFlightFull      Kind = "FLIGHT_FULL"
	KindIncompleteCrew  Kind = "INCOMPLETE_CREW"
	KindInvalidBaggage  Kind = "INVALID_BAGGAGE"
)

// Error is a typed service failure. The taxonomy is closed: every error the
// orchestrator returns is one of the Kinds above.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Duplicatef(format string, args ...any) *Error {
	return newf(KindDuplicateEntity, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return newf(KindEntityNotFound, format, args...)
}

func Invalidf(format string, args ...any) *Error {
	return newf(KindInvalidData, format, args...)
}

func FlightFullf(format string, args ...any) *Error {
	return newf(KindFlightFull, format, args...)
}

func IncompleteCrewf(format string, args ...any) *Error {
	return newf(KindIncompleteCrew, format, args...)
}

func InvalidBaggagef(format string, args ...any) *Error {
	return newf(KindInvalidBaggage, format, args...)
}

// IsKind reports whether err (or anything it wraps) is a service error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
