package sctp

import "fmt"

const paramHeaderSize = 4

// ParamType identifies a parameter kind. As with chunk types, the two
// most significant bits encode the policy for unregistered types.
type ParamType uint16

// Parameter type identifiers from the IANA SCTP registry.
const (
	ParamHeartbeatInfo         ParamType = 1
	ParamIPv4Address           ParamType = 5
	ParamIPv6Address           ParamType = 6
	ParamStateCookie           ParamType = 7
	ParamUnrecognizedParam     ParamType = 8
	ParamCookiePreservative    ParamType = 9
	ParamHostName              ParamType = 11
	ParamSupportedAddressTypes ParamType = 12
	ParamOutgoingResetRequest  ParamType = 13
	ParamReconfigResponse      ParamType = 16
	ParamRandom                ParamType = 0x8002
	ParamSupportedExtensions   ParamType = 0x8008
	ParamForwardTSNSupported   ParamType = 0xC000
)

func (t ParamType) String() string {
	switch t {
	case ParamHeartbeatInfo:
		return "heartbeat info"
	case ParamIPv4Address:
		return "IPv4 address"
	case ParamIPv6Address:
		return "IPv6 address"
	case ParamStateCookie:
		return "state cookie"
	case ParamUnrecognizedParam:
		return "unrecognized parameter"
	case ParamCookiePreservative:
		return "cookie preservative"
	case ParamHostName:
		return "host name address"
	case ParamSupportedAddressTypes:
		return "supported address types"
	case ParamOutgoingResetRequest:
		return "outgoing SSN reset request"
	case ParamReconfigResponse:
		return "re-configuration response"
	case ParamRandom:
		return "random"
	case ParamSupportedExtensions:
		return "supported extensions"
	case ParamForwardTSNSupported:
		return "forward TSN supported"
	}
	return fmt.Sprintf("param(0x%04X)", uint16(t))
}

func (t ParamType) action() TypeAction {
	return TypeAction(t >> 14)
}

// Param is the interface implemented by every parameter kind. Like
// Chunk, the codec methods are unexported so the registry is closed to
// this package.
type Param interface {
	Type() ParamType
	decodeParam(value []byte) error
	encodeParam() ([]byte, error)
}

func newParam(t ParamType) (Param, bool) {
	switch t {
	case ParamHeartbeatInfo:
		return &HeartbeatInfo{}, true
	case ParamIPv4Address:
		return &IPv4Address{}, true
	case ParamIPv6Address:
		return &IPv6Address{}, true
	case ParamStateCookie:
		return &StateCookie{}, true
	case ParamUnrecognizedParam:
		return &UnrecognizedParam{}, true
	case ParamCookiePreservative:
		return &CookiePreservative{}, true
	case ParamHostName:
		return &HostName{}, true
	case ParamSupportedAddressTypes:
		return &SupportedAddressTypes{}, true
	case ParamOutgoingResetRequest:
		return &OutgoingResetRequest{}, true
	case ParamReconfigResponse:
		return &ReconfigResponse{}, true
	case ParamRandom:
		return &Random{}, true
	case ParamSupportedExtensions:
		return &SupportedExtensions{}, true
	case ParamForwardTSNSupported:
		return &ForwardTSNSupported{}, true
	}
	return nil, false
}

// UnknownParam preserves an unregistered parameter verbatim so that a
// parameter list survives a round trip. Skip-action types decode into
// it; the skip-and-report distinction is recoverable from the type's
// high bits.
type UnknownParam struct {
	RawType ParamType
	Value   []byte
}

func (u *UnknownParam) Type() ParamType { return u.RawType }

func (u *UnknownParam) decodeParam(value []byte) error {
	u.Value = append([]byte(nil), value...)
	return nil
}

func (u *UnknownParam) encodeParam() ([]byte, error) {
	return u.Value, nil
}

// DecodeParams parses a serialized parameter list into an ordered
// sequence. Order and multiplicity are preserved; repeated parameters
// of the same type are legal.
func DecodeParams(raw []byte) ([]Param, error) {
	return decodeParamList(raw)
}

// EncodeParams serializes a parameter list, padding each parameter to
// a 4-byte boundary.
func EncodeParams(params []Param) ([]byte, error) {
	w := &writer{}
	if err := encodeParamList(w, params); err != nil {
		return nil, err
	}
	return w.buf, nil
}

func decodeParamList(body []byte) ([]Param, error) {
	var params []Param
	r := newReader(body)
	for r.remaining() > 0 {
		if r.remaining() < paramHeaderSize {
			return nil, &DecodeError{Field: "parameter header", Err: ErrTruncated}
		}
		typ, _ := r.u16()
		length, _ := r.u16()
		if length < paramHeaderSize {
			return nil, &DecodeError{Field: "parameter header", Err: ErrInvalidLength}
		}
		vlen := int(length) - paramHeaderSize
		if vlen > r.remaining() {
			return nil, &DecodeError{Field: "parameter value", Err: ErrInvalidLength}
		}
		value, _ := r.bytes(vlen)
		if err := skipPadding(r, vlen, "parameter padding"); err != nil {
			return nil, err
		}

		t := ParamType(typ)
		p, known := newParam(t)
		if !known {
			switch t.action() {
			case ActionStopError:
				return nil, &DecodeError{
					Field: "parameter",
					Err:   &UnrecognizedTypeError{Type: uint16(t), Action: ActionStopError},
				}
			case ActionStopSilent:
				return params, nil
			default: // ActionSkip, ActionSkipReport
				params = append(params, &UnknownParam{
					RawType: t,
					Value:   append([]byte(nil), value...),
				})
				continue
			}
		}
		if err := p.decodeParam(value); err != nil {
			return nil, &DecodeError{Field: t.String(), Err: err}
		}
		params = append(params, p)
	}
	return params, nil
}

func encodeParamList(w *writer, params []Param) error {
	for _, p := range params {
		value, err := p.encodeParam()
		if err != nil {
			return &DecodeError{Field: p.Type().String(), Err: err}
		}
		length := paramHeaderSize + len(value)
		if length > 0xFFFF {
			return &DecodeError{Field: p.Type().String(), Err: ErrInvalidLength}
		}
		w.u16(uint16(p.Type()))
		w.u16(uint16(length))
		w.bytes(value)
		w.pad()
	}
	return nil
}
