package sctp

import (
	"errors"
	"testing"
)

func FuzzDecodePacket(f *testing.F) {
	// Seed: empty INIT packet.
	init := &Packet{VerificationTag: 1, Chunks: []Chunk{
		&Init{InitFields{InitiateTag: 1, AdvertisedWindow: 1500, InitialTSN: 1,
			Params: []Param{&ForwardTSNSupported{}}}},
	}}
	if raw, err := init.Encode(); err == nil {
		f.Add(raw)
	}

	// Seed: DATA + SACK packet.
	data := &Packet{Chunks: []Chunk{
		&Data{Beginning: true, Ending: true, TSN: 7, UserData: []byte("seed")},
		&Sack{CumulativeTSNAck: 6, GapAckBlocks: []GapAckBlock{{Start: 1, End: 1}}},
	}}
	if raw, err := data.Encode(); err == nil {
		f.Add(raw)
	}

	// Seeds: header truncations and a zero checksum.
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x00, 0x01})
	f.Add([]byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, raw []byte) {
		p, err := DecodePacket(raw) // must not panic
		if p == nil {
			return
		}
		if err != nil && !errors.Is(err, ErrChecksumMismatch) {
			t.Fatalf("packet returned alongside fatal error %v", err)
		}
		// Anything that structurally decodes must re-encode.
		if _, err := p.Encode(); err != nil {
			t.Fatalf("re-encode of decoded packet failed: %v", err)
		}
	})
}

func FuzzDecodeParams(f *testing.F) {
	seed, err := EncodeParams([]Param{
		&IPv4Address{Addr: [4]byte{127, 0, 0, 1}},
		&StateCookie{Cookie: []byte("c")},
		&SupportedAddressTypes{Types: []ParamType{ParamIPv4Address}},
	})
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x01, 0x00, 0x04})

	f.Fuzz(func(t *testing.T, raw []byte) {
		params, err := DecodeParams(raw) // must not panic
		if err != nil {
			return
		}
		// A decoded list must survive re-encoding.
		if _, err := EncodeParams(params); err != nil {
			t.Fatalf("re-encode of decoded params failed: %v", err)
		}
	})
}
