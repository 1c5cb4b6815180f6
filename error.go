package easysteam

import (
	"errors"
	"fmt"
)

// Error is a generic interface for error handling.
type Error interface {
	error
	Fatal() bool // should return true if the error is fatal, otherwise false.
}

var (
	_ error = &RecordError{}
	_ Error = &RecordError{}
)

var (
	// ErrNilRecord is used when the upstream producer handed over a nil record or a nil nested entry.
	ErrNilRecord = errors.New("nil record")

	// ErrRecordMismatch is used when the record's type doesn't belong to the record kind.
	ErrRecordMismatch = errors.New("record type mismatch")

	// ErrUnknownKind is used when no mapper exists for the record kind.
	ErrUnknownKind = errors.New("unknown record kind")
)

// RecordError is the error returned when a record violates the upstream contract.
// Such records are never translated, since any callback built from them would carry fabricated data.
type RecordError struct {
	Kind RecordKind
	Err  error
}

func (re *RecordError) Error() string {
	return fmt.Sprintf("translate %s: %s", re.Kind, re.Err)
}

func (re *RecordError) Unwrap() error {
	return re.Err
}

func (re *RecordError) Fatal() bool {
	return true
}

func newRecordError(kind RecordKind, format string, args ...interface{}) *RecordError {
	return &RecordError{Kind: kind, Err: fmt.Errorf(format, args...)}
}
