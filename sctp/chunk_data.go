package sctp

// DATA chunk flag bits (RFC 4960 §3.3.1, RFC 7053 for I).
const (
	dataFlagEnding    = 0x01
	dataFlagBeginning = 0x02
	dataFlagUnordered = 0x04
	dataFlagImmediate = 0x08
)

const dataPrefixSize = 12

// Data is a payload DATA chunk.
type Data struct {
	Unordered bool
	Beginning bool
	Ending    bool
	Immediate bool

	TSN               uint32
	StreamID          uint16
	StreamSequence    uint16
	PayloadProtocolID uint32
	UserData          []byte
}

func (d *Data) Type() ChunkType { return ChunkData }

func (d *Data) chunkFlags() uint8 {
	var f uint8
	if d.Ending {
		f |= dataFlagEnding
	}
	if d.Beginning {
		f |= dataFlagBeginning
	}
	if d.Unordered {
		f |= dataFlagUnordered
	}
	if d.Immediate {
		f |= dataFlagImmediate
	}
	return f
}

func (d *Data) decodeValue(flags uint8, value []byte) error {
	if len(value) < dataPrefixSize {
		return ErrMalformedValue
	}
	d.Ending = flags&dataFlagEnding != 0
	d.Beginning = flags&dataFlagBeginning != 0
	d.Unordered = flags&dataFlagUnordered != 0
	d.Immediate = flags&dataFlagImmediate != 0

	r := newReader(value)
	d.TSN, _ = r.u32()
	d.StreamID, _ = r.u16()
	d.StreamSequence, _ = r.u16()
	d.PayloadProtocolID, _ = r.u32()
	rest, _ := r.bytes(r.remaining())
	d.UserData = append([]byte(nil), rest...)
	return nil
}

func (d *Data) encodeValue() ([]byte, error) {
	w := &writer{buf: make([]byte, 0, dataPrefixSize+len(d.UserData))}
	w.u32(d.TSN)
	w.u16(d.StreamID)
	w.u16(d.StreamSequence)
	w.u32(d.PayloadProtocolID)
	w.bytes(d.UserData)
	return w.buf, nil
}
