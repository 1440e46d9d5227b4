package sctp

const initPrefixSize = 16

// InitFields is the fixed prefix shared by INIT and INIT-ACK, followed
// by a parameter list.
type InitFields struct {
	InitiateTag      uint32
	AdvertisedWindow uint32
	OutboundStreams  uint16
	InboundStreams   uint16
	InitialTSN       uint32
	Params           []Param
}

func (f *InitFields) decodeValue(_ uint8, value []byte) error {
	if len(value) < initPrefixSize {
		return ErrMalformedValue
	}
	r := newReader(value)
	f.InitiateTag, _ = r.u32()
	f.AdvertisedWindow, _ = r.u32()
	f.OutboundStreams, _ = r.u16()
	f.InboundStreams, _ = r.u16()
	f.InitialTSN, _ = r.u32()

	rest, _ := r.bytes(r.remaining())
	params, err := decodeParamList(rest)
	if err != nil {
		return err
	}
	f.Params = params
	return nil
}

func (f *InitFields) encodeValue() ([]byte, error) {
	w := &writer{buf: make([]byte, 0, initPrefixSize)}
	w.u32(f.InitiateTag)
	w.u32(f.AdvertisedWindow)
	w.u16(f.OutboundStreams)
	w.u16(f.InboundStreams)
	w.u32(f.InitialTSN)
	if err := encodeParamList(w, f.Params); err != nil {
		return nil, err
	}
	return w.buf, nil
}

// Init starts an association (RFC 4960 §3.3.2).
type Init struct {
	InitFields
}

func (*Init) Type() ChunkType   { return ChunkInit }
func (*Init) chunkFlags() uint8 { return 0 }

// InitAck acknowledges an INIT (RFC 4960 §3.3.3). Same layout as Init;
// a state cookie parameter is mandatory on the wire, but the codec
// leaves that association-level rule to the caller.
type InitAck struct {
	InitFields
}

func (*InitAck) Type() ChunkType   { return ChunkInitAck }
func (*InitAck) chunkFlags() uint8 { return 0 }
