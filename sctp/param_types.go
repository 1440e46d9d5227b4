package sctp

// HeartbeatInfo is sender-specific opaque data echoed by the peer
// (RFC 4960 §3.3.5).
type HeartbeatInfo struct {
	Data []byte
}

func (*HeartbeatInfo) Type() ParamType { return ParamHeartbeatInfo }

func (p *HeartbeatInfo) decodeParam(value []byte) error {
	p.Data = append([]byte(nil), value...)
	return nil
}

func (p *HeartbeatInfo) encodeParam() ([]byte, error) {
	return p.Data, nil
}

// IPv4Address advertises an endpoint address (RFC 4960 §3.3.2.1).
type IPv4Address struct {
	Addr [4]byte
}

func (*IPv4Address) Type() ParamType { return ParamIPv4Address }

func (p *IPv4Address) decodeParam(value []byte) error {
	if len(value) != 4 {
		return ErrMalformedValue
	}
	copy(p.Addr[:], value)
	return nil
}

func (p *IPv4Address) encodeParam() ([]byte, error) {
	return p.Addr[:], nil
}

// IPv6Address advertises an endpoint address (RFC 4960 §3.3.2.1).
type IPv6Address struct {
	Addr [16]byte
}

func (*IPv6Address) Type() ParamType { return ParamIPv6Address }

func (p *IPv6Address) decodeParam(value []byte) error {
	if len(value) != 16 {
		return ErrMalformedValue
	}
	copy(p.Addr[:], value)
	return nil
}

func (p *IPv6Address) encodeParam() ([]byte, error) {
	return p.Addr[:], nil
}

// StateCookie is the opaque cookie an INIT-ACK hands to the peer
// (RFC 4960 §3.3.3.1).
type StateCookie struct {
	Cookie []byte
}

func (*StateCookie) Type() ParamType { return ParamStateCookie }

func (p *StateCookie) decodeParam(value []byte) error {
	p.Cookie = append([]byte(nil), value...)
	return nil
}

func (p *StateCookie) encodeParam() ([]byte, error) {
	return p.Cookie, nil
}

// UnrecognizedParam echoes a parameter the sender could not interpret,
// complete with its original TLV header (RFC 4960 §3.3.3.1).
type UnrecognizedParam struct {
	Raw []byte
}

func (*UnrecognizedParam) Type() ParamType { return ParamUnrecognizedParam }

func (p *UnrecognizedParam) decodeParam(value []byte) error {
	p.Raw = append([]byte(nil), value...)
	return nil
}

func (p *UnrecognizedParam) encodeParam() ([]byte, error) {
	return p.Raw, nil
}

// CookiePreservative asks the peer to extend its cookie lifespan
// (RFC 4960 §3.3.2.1).
type CookiePreservative struct {
	// LifeSpanIncrement is in milliseconds.
	LifeSpanIncrement uint32
}

func (*CookiePreservative) Type() ParamType { return ParamCookiePreservative }

func (p *CookiePreservative) decodeParam(value []byte) error {
	if len(value) != 4 {
		return ErrMalformedValue
	}
	r := newReader(value)
	p.LifeSpanIncrement, _ = r.u32()
	return nil
}

func (p *CookiePreservative) encodeParam() ([]byte, error) {
	w := &writer{buf: make([]byte, 0, 4)}
	w.u32(p.LifeSpanIncrement)
	return w.buf, nil
}

// HostName advertises an endpoint by DNS name (RFC 4960 §3.3.2.1).
// The bytes are kept verbatim, including any trailing NUL the sender
// put on the wire.
type HostName struct {
	Name string
}

func (*HostName) Type() ParamType { return ParamHostName }

func (p *HostName) decodeParam(value []byte) error {
	p.Name = string(value)
	return nil
}

func (p *HostName) encodeParam() ([]byte, error) {
	return []byte(p.Name), nil
}

// SupportedAddressTypes lists the address parameter types the sender
// can handle (RFC 4960 §3.3.2.1).
type SupportedAddressTypes struct {
	Types []ParamType
}

func (*SupportedAddressTypes) Type() ParamType { return ParamSupportedAddressTypes }

func (p *SupportedAddressTypes) decodeParam(value []byte) error {
	if len(value)%2 != 0 {
		return ErrInvalidLength
	}
	r := newReader(value)
	for r.remaining() > 0 {
		t, _ := r.u16()
		p.Types = append(p.Types, ParamType(t))
	}
	return nil
}

func (p *SupportedAddressTypes) encodeParam() ([]byte, error) {
	w := &writer{buf: make([]byte, 0, 2*len(p.Types))}
	for _, t := range p.Types {
		w.u16(uint16(t))
	}
	return w.buf, nil
}

// OutgoingResetRequest asks the peer to reset outbound streams
// (RFC 6525 §4.1). An empty StreamIDs list resets all streams.
type OutgoingResetRequest struct {
	RequestSequence  uint32
	ResponseSequence uint32
	LastAssignedTSN  uint32
	StreamIDs        []uint16
}

func (*OutgoingResetRequest) Type() ParamType { return ParamOutgoingResetRequest }

func (p *OutgoingResetRequest) decodeParam(value []byte) error {
	if len(value) < 12 {
		return ErrMalformedValue
	}
	r := newReader(value)
	p.RequestSequence, _ = r.u32()
	p.ResponseSequence, _ = r.u32()
	p.LastAssignedTSN, _ = r.u32()
	if r.remaining()%2 != 0 {
		return ErrInvalidLength
	}
	for r.remaining() > 0 {
		id, _ := r.u16()
		p.StreamIDs = append(p.StreamIDs, id)
	}
	return nil
}

func (p *OutgoingResetRequest) encodeParam() ([]byte, error) {
	w := &writer{buf: make([]byte, 0, 12+2*len(p.StreamIDs))}
	w.u32(p.RequestSequence)
	w.u32(p.ResponseSequence)
	w.u32(p.LastAssignedTSN)
	for _, id := range p.StreamIDs {
		w.u16(id)
	}
	return w.buf, nil
}

// Re-configuration response results (RFC 6525 §4.4).
const (
	ReconfigResultSuccessNop      uint32 = 0
	ReconfigResultPerformed       uint32 = 1
	ReconfigResultDenied          uint32 = 2
	ReconfigResultErrorWrongSSN   uint32 = 3
	ReconfigResultErrorInProgress uint32 = 4
	ReconfigResultErrorBadSeqno   uint32 = 5
	ReconfigResultInProgress      uint32 = 6
)

// ReconfigResponse answers a re-configuration request (RFC 6525 §4.4).
// The two TSN fields appear on the wire together or not at all.
type ReconfigResponse struct {
	ResponseSequence uint32
	Result           uint32

	HasTSNs         bool
	SenderNextTSN   uint32
	ReceiverNextTSN uint32
}

func (*ReconfigResponse) Type() ParamType { return ParamReconfigResponse }

func (p *ReconfigResponse) decodeParam(value []byte) error {
	if len(value) != 8 && len(value) != 16 {
		return ErrMalformedValue
	}
	r := newReader(value)
	p.ResponseSequence, _ = r.u32()
	p.Result, _ = r.u32()
	if r.remaining() > 0 {
		p.HasTSNs = true
		p.SenderNextTSN, _ = r.u32()
		p.ReceiverNextTSN, _ = r.u32()
	}
	return nil
}

func (p *ReconfigResponse) encodeParam() ([]byte, error) {
	w := &writer{buf: make([]byte, 0, 16)}
	w.u32(p.ResponseSequence)
	w.u32(p.Result)
	if p.HasTSNs {
		w.u32(p.SenderNextTSN)
		w.u32(p.ReceiverNextTSN)
	}
	return w.buf, nil
}

// Random carries entropy for chunk authentication (RFC 4895 §3.1).
type Random struct {
	Data []byte
}

func (*Random) Type() ParamType { return ParamRandom }

func (p *Random) decodeParam(value []byte) error {
	p.Data = append([]byte(nil), value...)
	return nil
}

func (p *Random) encodeParam() ([]byte, error) {
	return p.Data, nil
}

// SupportedExtensions lists extension chunk types the sender
// understands (RFC 5061 §4.2.7).
type SupportedExtensions struct {
	ChunkTypes []ChunkType
}

func (*SupportedExtensions) Type() ParamType { return ParamSupportedExtensions }

func (p *SupportedExtensions) decodeParam(value []byte) error {
	for _, b := range value {
		p.ChunkTypes = append(p.ChunkTypes, ChunkType(b))
	}
	return nil
}

func (p *SupportedExtensions) encodeParam() ([]byte, error) {
	out := make([]byte, 0, len(p.ChunkTypes))
	for _, t := range p.ChunkTypes {
		out = append(out, uint8(t))
	}
	return out, nil
}

// ForwardTSNSupported announces RFC 3758 partial-reliability support;
// it carries no value (RFC 3758 §3.1).
type ForwardTSNSupported struct{}

func (*ForwardTSNSupported) Type() ParamType { return ParamForwardTSNSupported }

func (p *ForwardTSNSupported) decodeParam(value []byte) error {
	if len(value) != 0 {
		return ErrMalformedValue
	}
	return nil
}

func (*ForwardTSNSupported) encodeParam() ([]byte, error) { return nil, nil }
