package p256k1

import (
	"crypto/subtle"
	"encoding/binary"
)

// readBE64 reads a uint64 in big endian.
func readBE64(p []byte) uint64 {
	return binary.BigEndian.Uint64(p)
}

// writeBE64 writes a uint64 in big endian.
func writeBE64(p []byte, x uint64) {
	binary.BigEndian.PutUint64(p, x)
}

// isZeroArray returns true if every byte of s is zero. Constant-time.
func isZeroArray(s []byte) bool {
	var acc byte
	for i := range s {
		acc |= s[i]
	}
	return subtle.ConstantTimeByteEq(acc, 0) == 1
}
