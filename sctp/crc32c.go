package sctp

import "hash/crc32"

// castagnoli is the stdlib's precomputed CRC32c lookup table. It is
// built once and never mutated.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

var zeroChecksum [checksumSize]byte

// packetChecksum computes the CRC32c over a serialized packet with the
// checksum field treated as zero, per RFC 4960 §6.8.
func packetChecksum(raw []byte) uint32 {
	crc := crc32.Update(0, castagnoli, raw[:checksumOffset])
	crc = crc32.Update(crc, castagnoli, zeroChecksum[:])
	return crc32.Update(crc, castagnoli, raw[checksumOffset+checksumSize:])
}

// VerifyChecksum reports whether the checksum field of a serialized
// packet matches the CRC32c computed over it. Inputs shorter than the
// common header never verify.
func VerifyChecksum(raw []byte) bool {
	if len(raw) < headerSize {
		return false
	}
	stored := uint32(raw[checksumOffset])<<24 |
		uint32(raw[checksumOffset+1])<<16 |
		uint32(raw[checksumOffset+2])<<8 |
		uint32(raw[checksumOffset+3])
	return stored == packetChecksum(raw)
}
