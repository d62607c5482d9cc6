// Package fail defines the closed error taxonomy of the revision service.
//
// Expected failures never travel as plain strings or panics: malformed input
// is a DataError, a violated business rule is a ValidationError, and anything
// the caller cannot self-correct (store failures, corrupted persisted data)
// is an Incident. Callers discriminate with errors.As.
package fail

import (
	"errors"
)

// Fail is implemented by every member of the taxonomy.
type Fail interface {
	error
	Code() string
	Description() string
}

// DataError marks request-shape failures caught before any domain logic runs.
// Attribute names the offending field as it appears on the wire.
type DataError interface {
	Fail
	Attribute() string
}

// AsFail extracts the typed failure from an error chain.
func AsFail(err error) (Fail, bool) {
	var f Fail
	ok := errors.As(err, &f)
	return f, ok
}

// AsDataError extracts a request-shape failure from an error chain.
func AsDataError(err error) (DataError, bool) {
	var d DataError
	ok := errors.As(err, &d)
	return d, ok
}

// AsIncident extracts an infrastructure failure from an error chain.
func AsIncident(err error) (Incident, bool) {
	var i Incident
	ok := errors.As(err, &i)
	return i, ok
}
