package sctp

import "fmt"

const (
	causeHeaderSize = 4

	// T bit: the sender had no TCB to destroy (RFC 4960 §3.3.7).
	abortFlagTBit = 0x01
)

// CauseCode identifies an error cause inside ABORT and ERROR chunks.
type CauseCode uint16

// Error cause codes from RFC 4960 §3.3.10.
const (
	CauseInvalidStreamID         CauseCode = 1
	CauseMissingParam            CauseCode = 2
	CauseStaleCookie             CauseCode = 3
	CauseOutOfResource           CauseCode = 4
	CauseUnresolvableAddress     CauseCode = 5
	CauseUnrecognizedChunkType   CauseCode = 6
	CauseInvalidMandatoryParam   CauseCode = 7
	CauseUnrecognizedParams      CauseCode = 8
	CauseNoUserData              CauseCode = 9
	CauseCookieWhileShuttingDown CauseCode = 10
	CauseRestartWithNewAddress   CauseCode = 11
	CauseUserInitiatedAbort      CauseCode = 12
	CauseProtocolViolation       CauseCode = 13
)

func (c CauseCode) String() string {
	switch c {
	case CauseInvalidStreamID:
		return "invalid stream identifier"
	case CauseMissingParam:
		return "missing mandatory parameter"
	case CauseStaleCookie:
		return "stale cookie"
	case CauseOutOfResource:
		return "out of resource"
	case CauseUnresolvableAddress:
		return "unresolvable address"
	case CauseUnrecognizedChunkType:
		return "unrecognized chunk type"
	case CauseInvalidMandatoryParam:
		return "invalid mandatory parameter"
	case CauseUnrecognizedParams:
		return "unrecognized parameters"
	case CauseNoUserData:
		return "no user data"
	case CauseCookieWhileShuttingDown:
		return "cookie received while shutting down"
	case CauseRestartWithNewAddress:
		return "restart with new addresses"
	case CauseUserInitiatedAbort:
		return "user-initiated abort"
	case CauseProtocolViolation:
		return "protocol violation"
	}
	return fmt.Sprintf("cause(%d)", uint16(c))
}

// ErrorCause is one TLV-framed cause record. The detail bytes are kept
// opaque; cause-specific structure is an association-level concern.
type ErrorCause struct {
	Code   CauseCode
	Detail []byte
}

// decodeErrorCauses parses the cause list shared by ABORT and ERROR.
// The framing mirrors parameter framing, but every cause code is
// accepted: unknown causes carry no action bits.
func decodeErrorCauses(body []byte) ([]ErrorCause, error) {
	var causes []ErrorCause
	r := newReader(body)
	for r.remaining() > 0 {
		if r.remaining() < causeHeaderSize {
			return nil, ErrTruncated
		}
		code, _ := r.u16()
		length, _ := r.u16()
		if length < causeHeaderSize {
			return nil, ErrInvalidLength
		}
		vlen := int(length) - causeHeaderSize
		if vlen > r.remaining() {
			return nil, ErrInvalidLength
		}
		detail, _ := r.bytes(vlen)
		if err := skipPadding(r, vlen, "error cause padding"); err != nil {
			return nil, err
		}
		causes = append(causes, ErrorCause{
			Code:   CauseCode(code),
			Detail: append([]byte(nil), detail...),
		})
	}
	return causes, nil
}

func encodeErrorCauses(w *writer, causes []ErrorCause) error {
	for _, c := range causes {
		length := causeHeaderSize + len(c.Detail)
		if length > 0xFFFF {
			return ErrInvalidLength
		}
		w.u16(uint16(c.Code))
		w.u16(uint16(length))
		w.bytes(c.Detail)
		w.pad()
	}
	return nil
}

// Abort closes an association, optionally reporting why (RFC 4960
// §3.3.7).
type Abort struct {
	// TBit is set when the sender has no verification tag of its own
	// and reflected the peer's.
	TBit   bool
	Causes []ErrorCause
}

func (*Abort) Type() ChunkType { return ChunkAbort }

func (a *Abort) chunkFlags() uint8 {
	if a.TBit {
		return abortFlagTBit
	}
	return 0
}

func (a *Abort) decodeValue(flags uint8, value []byte) error {
	a.TBit = flags&abortFlagTBit != 0
	causes, err := decodeErrorCauses(value)
	if err != nil {
		return err
	}
	a.Causes = causes
	return nil
}

func (a *Abort) encodeValue() ([]byte, error) {
	w := &writer{}
	if err := encodeErrorCauses(w, a.Causes); err != nil {
		return nil, err
	}
	return w.buf, nil
}

// OperationError reports error causes without closing the association
// (RFC 4960 §3.3.10).
type OperationError struct {
	Causes []ErrorCause
}

func (*OperationError) Type() ChunkType   { return ChunkError }
func (*OperationError) chunkFlags() uint8 { return 0 }

func (e *OperationError) decodeValue(_ uint8, value []byte) error {
	causes, err := decodeErrorCauses(value)
	if err != nil {
		return err
	}
	e.Causes = causes
	return nil
}

func (e *OperationError) encodeValue() ([]byte, error) {
	w := &writer{}
	if err := encodeErrorCauses(w, e.Causes); err != nil {
		return nil, err
	}
	return w.buf, nil
}
