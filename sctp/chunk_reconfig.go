package sctp

// Reconfig carries stream re-configuration requests and responses
// (RFC 6525 §3.1). The value is one or two re-configuration
// parameters.
type Reconfig struct {
	Params []Param
}

func (*Reconfig) Type() ChunkType   { return ChunkReconfig }
func (*Reconfig) chunkFlags() uint8 { return 0 }

func (c *Reconfig) decodeValue(_ uint8, value []byte) error {
	params, err := decodeParamList(value)
	if err != nil {
		return err
	}
	if len(params) < 1 || len(params) > 2 {
		return ErrMalformedValue
	}
	c.Params = params
	return nil
}

func (c *Reconfig) encodeValue() ([]byte, error) {
	if len(c.Params) < 1 || len(c.Params) > 2 {
		return nil, ErrMalformedValue
	}
	w := &writer{}
	if err := encodeParamList(w, c.Params); err != nil {
		return nil, err
	}
	return w.buf, nil
}
