// Package sctp implements encoding and decoding of the SCTP wire
// format per RFC 4960: the common packet header with its CRC32c
// checksum, the chunk framing layer, typed decoders for the standard
// chunk kinds, and the nested parameter framing carried by negotiation
// chunks. The codec is a pure transform between byte buffers and
// in-memory structures; it keeps no state across calls and performs no
// I/O, so decoding hostile input can never do worse than return an
// error.
package sctp

import "fmt"

const (
	headerSize     = 12
	checksumOffset = 8
	checksumSize   = 4

	// MaxPacketSize bounds a serialized packet to what the underlying
	// datagram transport can carry.
	MaxPacketSize = 65535
)

// Packet is one SCTP packet: the common header fields and the ordered
// chunks of its body. The wire checksum is not stored; Encode computes
// it and DecodePacket verifies it.
type Packet struct {
	SourcePort      uint16
	DestinationPort uint16
	VerificationTag uint32
	Chunks          []Chunk

	// Notices lists unrecognized chunks that were skipped under the
	// skip-and-report action. They are advisory and are not re-encoded.
	Notices []UnknownChunk
}

// DecodePacket parses a serialized packet. Structural errors are fatal
// and return a nil packet. A checksum mismatch is special: the fully
// decoded packet is returned together with an error wrapping
// ErrChecksumMismatch, leaving the accept/reject decision to the
// caller.
func DecodePacket(raw []byte) (*Packet, error) {
	if len(raw) < headerSize {
		return nil, &DecodeError{Field: "common header", Err: ErrTruncated}
	}
	if len(raw) > MaxPacketSize {
		return nil, &DecodeError{Field: "packet", Err: ErrInvalidLength}
	}
	r := newReader(raw)
	p := &Packet{}
	p.SourcePort, _ = r.u16()
	p.DestinationPort, _ = r.u16()
	p.VerificationTag, _ = r.u32()
	if _, err := r.u32(); err != nil { // checksum, verified below
		return nil, &DecodeError{Field: "common header", Err: err}
	}

	var err error
	p.Chunks, p.Notices, err = decodeChunks(raw[headerSize:])
	if err != nil {
		return nil, err
	}

	if !VerifyChecksum(raw) {
		return p, &DecodeError{Field: "common header", Err: ErrChecksumMismatch}
	}
	return p, nil
}

// Encode serializes the packet, padding every chunk to a 4-byte
// boundary and patching the checksum after the body is written.
func (p *Packet) Encode() ([]byte, error) {
	w := &writer{buf: make([]byte, 0, headerSize)}
	w.u16(p.SourcePort)
	w.u16(p.DestinationPort)
	w.u32(p.VerificationTag)
	w.u32(0) // checksum placeholder

	for i, c := range p.Chunks {
		if err := encodeChunk(w, c); err != nil {
			return nil, fmt.Errorf("encode chunk %d (type %d): %w", i, c.Type(), err)
		}
	}

	if len(w.buf) > MaxPacketSize {
		return nil, fmt.Errorf("sctp: packet size %d exceeds maximum %d: %w",
			len(w.buf), MaxPacketSize, ErrInvalidLength)
	}

	crc := packetChecksum(w.buf)
	w.buf[checksumOffset] = byte(crc >> 24)
	w.buf[checksumOffset+1] = byte(crc >> 16)
	w.buf[checksumOffset+2] = byte(crc >> 8)
	w.buf[checksumOffset+3] = byte(crc)
	return w.buf, nil
}
