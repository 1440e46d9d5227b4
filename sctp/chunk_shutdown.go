package sctp

// Shutdown starts the graceful close sequence (RFC 4960 §3.3.8). The
// value is exactly the cumulative TSN ack.
type Shutdown struct {
	CumulativeTSNAck uint32
}

func (*Shutdown) Type() ChunkType   { return ChunkShutdown }
func (*Shutdown) chunkFlags() uint8 { return 0 }

func (s *Shutdown) decodeValue(_ uint8, value []byte) error {
	if len(value) != 4 {
		return ErrMalformedValue
	}
	r := newReader(value)
	s.CumulativeTSNAck, _ = r.u32()
	return nil
}

func (s *Shutdown) encodeValue() ([]byte, error) {
	w := &writer{buf: make([]byte, 0, 4)}
	w.u32(s.CumulativeTSNAck)
	return w.buf, nil
}

// ShutdownAck acknowledges a SHUTDOWN; it carries no value (RFC 4960
// §3.3.9).
type ShutdownAck struct{}

func (*ShutdownAck) Type() ChunkType   { return ChunkShutdownAck }
func (*ShutdownAck) chunkFlags() uint8 { return 0 }

func (*ShutdownAck) decodeValue(_ uint8, value []byte) error {
	if len(value) != 0 {
		return ErrMalformedValue
	}
	return nil
}

func (*ShutdownAck) encodeValue() ([]byte, error) { return nil, nil }

// ShutdownComplete finishes the close sequence (RFC 4960 §3.3.13).
type ShutdownComplete struct {
	TBit bool
}

func (*ShutdownComplete) Type() ChunkType { return ChunkShutdownComplete }

func (s *ShutdownComplete) chunkFlags() uint8 {
	if s.TBit {
		return abortFlagTBit
	}
	return 0
}

func (s *ShutdownComplete) decodeValue(flags uint8, value []byte) error {
	if len(value) != 0 {
		return ErrMalformedValue
	}
	s.TBit = flags&abortFlagTBit != 0
	return nil
}

func (*ShutdownComplete) encodeValue() ([]byte, error) { return nil, nil }

// CookieEcho returns the state cookie from an INIT-ACK (RFC 4960
// §3.3.11). The cookie is opaque to the sender.
type CookieEcho struct {
	Cookie []byte
}

func (*CookieEcho) Type() ChunkType   { return ChunkCookieEcho }
func (*CookieEcho) chunkFlags() uint8 { return 0 }

func (c *CookieEcho) decodeValue(_ uint8, value []byte) error {
	c.Cookie = append([]byte(nil), value...)
	return nil
}

func (c *CookieEcho) encodeValue() ([]byte, error) {
	return c.Cookie, nil
}

// CookieAck acknowledges a COOKIE-ECHO; no value (RFC 4960 §3.3.12).
type CookieAck struct{}

func (*CookieAck) Type() ChunkType   { return ChunkCookieAck }
func (*CookieAck) chunkFlags() uint8 { return 0 }

func (*CookieAck) decodeValue(_ uint8, value []byte) error {
	if len(value) != 0 {
		return ErrMalformedValue
	}
	return nil
}

func (*CookieAck) encodeValue() ([]byte, error) { return nil, nil }
