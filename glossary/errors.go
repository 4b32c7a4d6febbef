package glossary

import (
	"errors"
	"fmt"
)

// Sentinel errors; the typed errors below unwrap to them.
var (
	ErrNotFound        = errors.New("not found")
	ErrMalformedRecord = errors.New("malformed record")
	ErrDecode          = errors.New("decode error")
)

// NotFoundError reports a lookup of an absent headword or Chinese word.
type NotFoundError struct {
	Kind string // "headword" or "chinese word"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// MalformedRecordError reports a source line without a headword.
type MalformedRecordError struct {
	Line int
	Text string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: malformed record %q", e.Line, e.Text)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// DecodeError reports bytes that are invalid under the declared encoding.
type DecodeError struct {
	Line     int
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid %s: %v", e.Line, e.Encoding, e.Err)
	}
	return fmt.Sprintf("invalid %s: %v", e.Encoding, e.Err)
}

// Unwrap exposes both ErrDecode and the underlying cause.
func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }
