package sctp

const (
	sackPrefixSize   = 12
	gapBlockSize     = 4
	dupTSNSize       = 4
	forwardEntrySize = 4
)

// GapAckBlock is one gap report in a SACK, offsets relative to the
// cumulative TSN ack.
type GapAckBlock struct {
	Start uint16
	End   uint16
}

// Sack is a selective acknowledgement chunk (RFC 4960 §3.3.4).
type Sack struct {
	CumulativeTSNAck uint32
	AdvertisedWindow uint32
	GapAckBlocks     []GapAckBlock
	DuplicateTSNs    []uint32
}

func (*Sack) Type() ChunkType   { return ChunkSack }
func (*Sack) chunkFlags() uint8 { return 0 }

func (s *Sack) decodeValue(_ uint8, value []byte) error {
	if len(value) < sackPrefixSize {
		return ErrMalformedValue
	}
	r := newReader(value)
	s.CumulativeTSNAck, _ = r.u32()
	s.AdvertisedWindow, _ = r.u32()
	gaps, _ := r.u16()
	dups, _ := r.u16()

	// The declared counts must account for exactly the remaining bytes.
	if r.remaining() != int(gaps)*gapBlockSize+int(dups)*dupTSNSize {
		return ErrInvalidLength
	}
	for i := 0; i < int(gaps); i++ {
		var b GapAckBlock
		b.Start, _ = r.u16()
		b.End, _ = r.u16()
		s.GapAckBlocks = append(s.GapAckBlocks, b)
	}
	for i := 0; i < int(dups); i++ {
		tsn, _ := r.u32()
		s.DuplicateTSNs = append(s.DuplicateTSNs, tsn)
	}
	return nil
}

func (s *Sack) encodeValue() ([]byte, error) {
	if len(s.GapAckBlocks) > 0xFFFF || len(s.DuplicateTSNs) > 0xFFFF {
		return nil, ErrInvalidLength
	}
	w := &writer{buf: make([]byte, 0,
		sackPrefixSize+len(s.GapAckBlocks)*gapBlockSize+len(s.DuplicateTSNs)*dupTSNSize)}
	w.u32(s.CumulativeTSNAck)
	w.u32(s.AdvertisedWindow)
	w.u16(uint16(len(s.GapAckBlocks)))
	w.u16(uint16(len(s.DuplicateTSNs)))
	for _, b := range s.GapAckBlocks {
		w.u16(b.Start)
		w.u16(b.End)
	}
	for _, tsn := range s.DuplicateTSNs {
		w.u32(tsn)
	}
	return w.buf, nil
}

// ForwardEntry advances one stream's sequence number in a FORWARD-TSN.
type ForwardEntry struct {
	StreamID       uint16
	StreamSequence uint16
}

// ForwardTSN tells the peer to move its cumulative TSN point forward
// past abandoned DATA chunks (RFC 3758 §3.2).
type ForwardTSN struct {
	NewCumulativeTSN uint32
	Entries          []ForwardEntry
}

func (*ForwardTSN) Type() ChunkType   { return ChunkForwardTSN }
func (*ForwardTSN) chunkFlags() uint8 { return 0 }

func (f *ForwardTSN) decodeValue(_ uint8, value []byte) error {
	if len(value) < 4 {
		return ErrMalformedValue
	}
	r := newReader(value)
	f.NewCumulativeTSN, _ = r.u32()
	if r.remaining()%forwardEntrySize != 0 {
		return ErrInvalidLength
	}
	for r.remaining() > 0 {
		var e ForwardEntry
		e.StreamID, _ = r.u16()
		e.StreamSequence, _ = r.u16()
		f.Entries = append(f.Entries, e)
	}
	return nil
}

func (f *ForwardTSN) encodeValue() ([]byte, error) {
	w := &writer{buf: make([]byte, 0, 4+len(f.Entries)*forwardEntrySize)}
	w.u32(f.NewCumulativeTSN)
	for _, e := range f.Entries {
		w.u16(e.StreamID)
		w.u16(e.StreamSequence)
	}
	return w.buf, nil
}
