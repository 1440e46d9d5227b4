package sctp

import (
	"errors"
	"reflect"
	"testing"
)

func rawParam(typ uint16, value []byte) []byte {
	length := 4 + len(value)
	buf := []byte{byte(typ >> 8), byte(typ), byte(length >> 8), byte(length)}
	buf = append(buf, value...)
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	return buf
}

func TestParams_RoundTrip(t *testing.T) {
	t.Parallel()
	params := []Param{
		&HeartbeatInfo{Data: []byte{1, 2}},
		&IPv4Address{Addr: [4]byte{203, 0, 113, 9}},
		&IPv6Address{Addr: [16]byte{0x20, 0x01, 0x0D, 0xB8}},
		&StateCookie{Cookie: []byte("cookie")},
		&UnrecognizedParam{Raw: []byte{0xC0, 0x01, 0x00, 0x04}},
		&CookiePreservative{LifeSpanIncrement: 30000},
		&HostName{Name: "peer.example\x00"},
		&SupportedAddressTypes{Types: []ParamType{ParamIPv4Address}},
		&OutgoingResetRequest{RequestSequence: 1, ResponseSequence: 2, LastAssignedTSN: 3},
		&ReconfigResponse{ResponseSequence: 2, Result: ReconfigResultPerformed},
		&ReconfigResponse{ResponseSequence: 3, Result: ReconfigResultInProgress,
			HasTSNs: true, SenderNextTSN: 10, ReceiverNextTSN: 20},
		&Random{Data: []byte{9, 9, 9, 9}},
		&SupportedExtensions{ChunkTypes: []ChunkType{ChunkForwardTSN, ChunkReconfig}},
		&ForwardTSNSupported{},
	}

	raw, err := EncodeParams(params)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeParams(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, params) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", got, params)
	}
}

// Order and multiplicity are significant: [A, B, A] must survive.
func TestParams_OrderAndMultiplicity(t *testing.T) {
	t.Parallel()
	a1 := rawParam(uint16(ParamIPv4Address), []byte{10, 0, 0, 1})
	b := rawParam(uint16(ParamCookiePreservative), []byte{0, 0, 0, 60})
	a2 := rawParam(uint16(ParamIPv4Address), []byte{10, 0, 0, 2})

	var raw []byte
	raw = append(raw, a1...)
	raw = append(raw, b...)
	raw = append(raw, a2...)

	params, err := DecodeParams(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(params) != 3 {
		t.Fatalf("got %d params, want 3", len(params))
	}
	first, ok := params[0].(*IPv4Address)
	if !ok || first.Addr != [4]byte{10, 0, 0, 1} {
		t.Errorf("param 0 = %#v, want IPv4 10.0.0.1", params[0])
	}
	if _, ok := params[1].(*CookiePreservative); !ok {
		t.Errorf("param 1 = %T, want *CookiePreservative", params[1])
	}
	last, ok := params[2].(*IPv4Address)
	if !ok || last.Addr != [4]byte{10, 0, 0, 2} {
		t.Errorf("param 2 = %#v, want IPv4 10.0.0.2", params[2])
	}
}

func TestParams_InitChunkPreservesOrder(t *testing.T) {
	t.Parallel()
	in := &Init{InitFields{
		InitiateTag: 7,
		InitialTSN:  1,
		Params: []Param{
			&IPv4Address{Addr: [4]byte{10, 0, 0, 1}},
			&CookiePreservative{LifeSpanIncrement: 5},
			&IPv4Address{Addr: [4]byte{10, 0, 0, 1}},
		},
	}}
	p := &Packet{Chunks: []Chunk{in}}
	raw, err := p.Encode()
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodePacket(raw)
	if err != nil {
		t.Fatal(err)
	}
	out, ok := got.Chunks[0].(*Init)
	if !ok {
		t.Fatalf("chunk = %T, want *Init", got.Chunks[0])
	}
	if !reflect.DeepEqual(out.Params, in.Params) {
		t.Errorf("params = %#v, want %#v", out.Params, in.Params)
	}
}

func TestParams_UnrecognizedActions(t *testing.T) {
	t.Parallel()
	known := rawParam(uint16(ParamIPv4Address), []byte{10, 0, 0, 1})

	t.Run("stop and error", func(t *testing.T) {
		t.Parallel()
		// 0x0100: high bits 00, not registered.
		raw := append(rawParam(0x0100, nil), known...)
		_, err := DecodeParams(raw)
		if !errors.Is(err, ErrUnrecognizedType) {
			t.Errorf("err = %v, want ErrUnrecognizedType", err)
		}
	})

	t.Run("stop silently", func(t *testing.T) {
		t.Parallel()
		// 0x4100: high bits 01.
		var raw []byte
		raw = append(raw, known...)
		raw = append(raw, rawParam(0x4100, nil)...)
		raw = append(raw, known...)
		params, err := DecodeParams(raw)
		if err != nil {
			t.Fatal(err)
		}
		if len(params) != 1 {
			t.Errorf("got %d params, want 1 (remainder dropped)", len(params))
		}
	})

	t.Run("skip keeps raw parameter", func(t *testing.T) {
		t.Parallel()
		// 0x8100: high bits 10.
		var raw []byte
		raw = append(raw, rawParam(0x8100, []byte{0xAB})...)
		raw = append(raw, known...)
		params, err := DecodeParams(raw)
		if err != nil {
			t.Fatal(err)
		}
		if len(params) != 2 {
			t.Fatalf("got %d params, want 2", len(params))
		}
		u, ok := params[0].(*UnknownParam)
		if !ok {
			t.Fatalf("param 0 = %T, want *UnknownParam", params[0])
		}
		if u.RawType != 0x8100 || !reflect.DeepEqual(u.Value, []byte{0xAB}) {
			t.Errorf("unknown param = %#v, want type 0x8100 value [0xAB]", u)
		}
	})
}

func TestParams_Malformed(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		raw  []byte
		want error
	}{
		{"dangling header", []byte{0x00, 0x05}, ErrTruncated},
		{"length below minimum", []byte{0x00, 0x05, 0x00, 0x02}, ErrInvalidLength},
		{"length overruns buffer", []byte{0x00, 0x05, 0x00, 0x20}, ErrInvalidLength},
		{"ipv4 wrong size", rawParam(uint16(ParamIPv4Address), []byte{1, 2}), ErrMalformedValue},
		{"ipv6 wrong size", rawParam(uint16(ParamIPv6Address), []byte{1, 2, 3, 4}), ErrMalformedValue},
		{"preservative wrong size", rawParam(uint16(ParamCookiePreservative), []byte{1}), ErrMalformedValue},
		{"address types odd size", rawParam(uint16(ParamSupportedAddressTypes), []byte{0, 5, 6}), ErrInvalidLength},
		{"reset request too short", rawParam(uint16(ParamOutgoingResetRequest), make([]byte, 8)), ErrMalformedValue},
		{"reset request odd stream ids", rawParam(uint16(ParamOutgoingResetRequest), make([]byte, 13)), ErrInvalidLength},
		{"reconfig response bad size", rawParam(uint16(ParamReconfigResponse), make([]byte, 12)), ErrMalformedValue},
		{"forward tsn supported with value", rawParam(uint16(ParamForwardTSNSupported), []byte{1}), ErrMalformedValue},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeParams(tc.raw)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParams_NonzeroPaddingRejected(t *testing.T) {
	t.Parallel()
	raw := rawParam(uint16(ParamHeartbeatInfo), []byte{1})
	raw[len(raw)-1] = 0x7F
	_, err := DecodeParams(raw)
	if !errors.Is(err, ErrMalformedValue) {
		t.Errorf("err = %v, want ErrMalformedValue", err)
	}
}
