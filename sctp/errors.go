package sctp

import (
	"errors"
	"fmt"
)

// Sentinel errors for packet, chunk, and parameter decoding. Callers
// distinguish failure modes with errors.Is.
var (
	// ErrTruncated means the input ended before a declared or structural
	// length was satisfied.
	ErrTruncated = errors.New("sctp: truncated input")

	// ErrInvalidLength means a length field is inconsistent with the
	// record structure, e.g. below the header minimum or leaving a
	// remainder that is not a whole number of fixed-size records.
	ErrInvalidLength = errors.New("sctp: invalid length field")

	// ErrChecksumMismatch means the header checksum disagrees with the
	// CRC32c computed over the packet. DecodePacket still returns the
	// structurally decoded packet alongside this error.
	ErrChecksumMismatch = errors.New("sctp: checksum mismatch")

	// ErrUnrecognizedType means a chunk or parameter type is absent from
	// the registry and its action bits demand the packet be rejected.
	ErrUnrecognizedType = errors.New("sctp: unrecognized type")

	// ErrMalformedValue means a recognized chunk or parameter carries a
	// value that fails its type-specific structural checks.
	ErrMalformedValue = errors.New("sctp: malformed value")
)

// DecodeError records which structure was being decoded when the error
// occurred. It wraps one of the sentinel errors above.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("sctp: decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TypeAction is the handling policy encoded in the two most significant
// bits of a chunk or parameter type.
type TypeAction uint8

const (
	// ActionStopError aborts processing and rejects the whole packet.
	ActionStopError TypeAction = 0
	// ActionStopSilent aborts processing of the remaining records but
	// accepts the packet.
	ActionStopSilent TypeAction = 1
	// ActionSkip skips the record and continues.
	ActionSkip TypeAction = 2
	// ActionSkipReport skips the record, continues, and surfaces a
	// non-fatal notice to the caller.
	ActionSkipReport TypeAction = 3
)

func (a TypeAction) String() string {
	switch a {
	case ActionStopError:
		return "stop-error"
	case ActionStopSilent:
		return "stop-silent"
	case ActionSkip:
		return "skip"
	case ActionSkipReport:
		return "skip-report"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// UnrecognizedTypeError reports a chunk or parameter type absent from
// the registry together with the action its high bits resolved to. It
// is only returned as a fatal error when Action is ActionStopError.
type UnrecognizedTypeError struct {
	Type   uint16 // chunk types occupy the low 8 bits
	Action TypeAction
}

func (e *UnrecognizedTypeError) Error() string {
	return fmt.Sprintf("sctp: unrecognized type 0x%04X (%s)", e.Type, e.Action)
}

func (e *UnrecognizedTypeError) Unwrap() error {
	return ErrUnrecognizedType
}
