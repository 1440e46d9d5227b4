package sctp

import "fmt"

const chunkHeaderSize = 4

// ChunkType identifies a chunk kind. The two most significant bits
// also encode the handling policy for types absent from the registry.
type ChunkType uint8

// Chunk type identifiers from the IANA SCTP registry.
const (
	ChunkData             ChunkType = 0
	ChunkInit             ChunkType = 1
	ChunkInitAck          ChunkType = 2
	ChunkSack             ChunkType = 3
	ChunkHeartbeat        ChunkType = 4
	ChunkHeartbeatAck     ChunkType = 5
	ChunkAbort            ChunkType = 6
	ChunkShutdown         ChunkType = 7
	ChunkShutdownAck      ChunkType = 8
	ChunkError            ChunkType = 9
	ChunkCookieEcho       ChunkType = 10
	ChunkCookieAck        ChunkType = 11
	ChunkShutdownComplete ChunkType = 14
	ChunkReconfig         ChunkType = 130
	ChunkForwardTSN       ChunkType = 192
)

func (t ChunkType) String() string {
	switch t {
	case ChunkData:
		return "DATA"
	case ChunkInit:
		return "INIT"
	case ChunkInitAck:
		return "INIT-ACK"
	case ChunkSack:
		return "SACK"
	case ChunkHeartbeat:
		return "HEARTBEAT"
	case ChunkHeartbeatAck:
		return "HEARTBEAT-ACK"
	case ChunkAbort:
		return "ABORT"
	case ChunkShutdown:
		return "SHUTDOWN"
	case ChunkShutdownAck:
		return "SHUTDOWN-ACK"
	case ChunkError:
		return "ERROR"
	case ChunkCookieEcho:
		return "COOKIE-ECHO"
	case ChunkCookieAck:
		return "COOKIE-ACK"
	case ChunkShutdownComplete:
		return "SHUTDOWN-COMPLETE"
	case ChunkReconfig:
		return "RECONFIG"
	case ChunkForwardTSN:
		return "FORWARD-TSN"
	}
	return fmt.Sprintf("CHUNK(%d)", uint8(t))
}

// action resolves the unrecognized-type policy from the type's two
// high bits.
func (t ChunkType) action() TypeAction {
	return TypeAction(t >> 6)
}

// Chunk is the interface implemented by every chunk kind. The decode
// and encode methods are unexported, so the set of implementations is
// closed to this package; callers construct the concrete types
// directly and switch over them exhaustively.
type Chunk interface {
	Type() ChunkType
	chunkFlags() uint8
	decodeValue(flags uint8, value []byte) error
	encodeValue() ([]byte, error)
}

// newChunk returns a fresh value for a registered chunk type, or false
// when the type is unrecognized and the framer's action policy
// applies.
func newChunk(t ChunkType) (Chunk, bool) {
	switch t {
	case ChunkData:
		return &Data{}, true
	case ChunkInit:
		return &Init{}, true
	case ChunkInitAck:
		return &InitAck{}, true
	case ChunkSack:
		return &Sack{}, true
	case ChunkHeartbeat:
		return &Heartbeat{}, true
	case ChunkHeartbeatAck:
		return &HeartbeatAck{}, true
	case ChunkAbort:
		return &Abort{}, true
	case ChunkShutdown:
		return &Shutdown{}, true
	case ChunkShutdownAck:
		return &ShutdownAck{}, true
	case ChunkError:
		return &OperationError{}, true
	case ChunkCookieEcho:
		return &CookieEcho{}, true
	case ChunkCookieAck:
		return &CookieAck{}, true
	case ChunkShutdownComplete:
		return &ShutdownComplete{}, true
	case ChunkReconfig:
		return &Reconfig{}, true
	case ChunkForwardTSN:
		return &ForwardTSN{}, true
	}
	return nil, false
}

// UnknownChunk carries an unregistered chunk verbatim. Decoding never
// places one in a packet's chunk list (the action policy governs
// unregistered types), but skip-and-report chunks are surfaced through
// Packet.Notices as UnknownChunks, and encoding one is legal.
type UnknownChunk struct {
	RawType ChunkType
	Flags   uint8
	Value   []byte
}

func (u *UnknownChunk) Type() ChunkType { return u.RawType }
func (u *UnknownChunk) chunkFlags() uint8 {
	return u.Flags
}

func (u *UnknownChunk) decodeValue(flags uint8, value []byte) error {
	u.Flags = flags
	u.Value = append([]byte(nil), value...)
	return nil
}

func (u *UnknownChunk) encodeValue() ([]byte, error) {
	return u.Value, nil
}

// decodeChunks splits a packet body into chunks. Framing errors and
// decoder failures for registered types are fatal; unregistered types
// follow their action policy, with skip-and-report chunks collected as
// notices.
func decodeChunks(body []byte) ([]Chunk, []UnknownChunk, error) {
	var (
		chunks  []Chunk
		notices []UnknownChunk
	)
	r := newReader(body)
	for r.remaining() > 0 {
		if r.remaining() < chunkHeaderSize {
			return nil, nil, &DecodeError{Field: "chunk header", Err: ErrTruncated}
		}
		typ, _ := r.u8()
		flags, _ := r.u8()
		length, _ := r.u16()
		if length < chunkHeaderSize {
			return nil, nil, &DecodeError{Field: "chunk header", Err: ErrInvalidLength}
		}
		vlen := int(length) - chunkHeaderSize
		if vlen > r.remaining() {
			return nil, nil, &DecodeError{Field: "chunk value", Err: ErrInvalidLength}
		}
		value, _ := r.bytes(vlen)
		if err := skipPadding(r, vlen, "chunk padding"); err != nil {
			return nil, nil, err
		}

		t := ChunkType(typ)
		c, known := newChunk(t)
		if !known {
			switch t.action() {
			case ActionStopError:
				return nil, nil, &DecodeError{
					Field: "chunk",
					Err:   &UnrecognizedTypeError{Type: uint16(t), Action: ActionStopError},
				}
			case ActionStopSilent:
				return chunks, notices, nil
			case ActionSkipReport:
				notices = append(notices, UnknownChunk{
					RawType: t,
					Flags:   flags,
					Value:   append([]byte(nil), value...),
				})
				continue
			default: // ActionSkip
				continue
			}
		}
		if err := c.decodeValue(flags, value); err != nil {
			return nil, nil, &DecodeError{Field: t.String(), Err: err}
		}
		chunks = append(chunks, c)
	}
	return chunks, notices, nil
}

// skipPadding consumes the zero bytes that align an n-byte value to a
// 4-byte boundary. Missing padding is ErrTruncated; nonzero padding is
// rejected as ErrMalformedValue, the strict reading of RFC 4960 §3.2.
func skipPadding(r *reader, n int, field string) error {
	pad, err := r.bytes(padLen(n))
	if err != nil {
		return &DecodeError{Field: field, Err: ErrTruncated}
	}
	for _, b := range pad {
		if b != 0 {
			return &DecodeError{Field: field, Err: ErrMalformedValue}
		}
	}
	return nil
}

// encodeChunk writes one chunk with its header and trailing padding.
// The length field records the unpadded size.
func encodeChunk(w *writer, c Chunk) error {
	value, err := c.encodeValue()
	if err != nil {
		return err
	}
	length := chunkHeaderSize + len(value)
	if length > 0xFFFF {
		return fmt.Errorf("sctp: chunk value of %d bytes overflows length field: %w",
			len(value), ErrInvalidLength)
	}
	w.u8(uint8(c.Type()))
	w.u8(c.chunkFlags())
	w.u16(uint16(length))
	w.bytes(value)
	w.pad()
	return nil
}
