package sctp

// heartbeatInfo extracts the single mandatory heartbeat-info parameter
// from a HEARTBEAT or HEARTBEAT-ACK value.
func heartbeatInfo(value []byte) ([]byte, error) {
	params, err := decodeParamList(value)
	if err != nil {
		return nil, err
	}
	if len(params) != 1 {
		return nil, ErrMalformedValue
	}
	info, ok := params[0].(*HeartbeatInfo)
	if !ok {
		return nil, ErrMalformedValue
	}
	return info.Data, nil
}

func encodeHeartbeatInfo(info []byte) ([]byte, error) {
	w := &writer{}
	if err := encodeParamList(w, []Param{&HeartbeatInfo{Data: info}}); err != nil {
		return nil, err
	}
	return w.buf, nil
}

// Heartbeat probes a destination address; Info is opaque to the peer
// and echoed back verbatim (RFC 4960 §3.3.5).
type Heartbeat struct {
	Info []byte
}

func (*Heartbeat) Type() ChunkType   { return ChunkHeartbeat }
func (*Heartbeat) chunkFlags() uint8 { return 0 }

func (h *Heartbeat) decodeValue(_ uint8, value []byte) error {
	info, err := heartbeatInfo(value)
	if err != nil {
		return err
	}
	h.Info = info
	return nil
}

func (h *Heartbeat) encodeValue() ([]byte, error) {
	return encodeHeartbeatInfo(h.Info)
}

// HeartbeatAck echoes a HEARTBEAT's info (RFC 4960 §3.3.6).
type HeartbeatAck struct {
	Info []byte
}

func (*HeartbeatAck) Type() ChunkType   { return ChunkHeartbeatAck }
func (*HeartbeatAck) chunkFlags() uint8 { return 0 }

func (h *HeartbeatAck) decodeValue(_ uint8, value []byte) error {
	info, err := heartbeatInfo(value)
	if err != nil {
		return err
	}
	h.Info = info
	return nil
}

func (h *HeartbeatAck) encodeValue() ([]byte, error) {
	return encodeHeartbeatInfo(h.Info)
}
