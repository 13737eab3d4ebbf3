package fixture

import (
	"crypto/rand"
	"encoding/binary"
)

// NewSeed draws a run seed from the OS entropy pool.
func NewSeed() int64 {
	var b [8]byte
	rand.Read(b[:])
	return int64(binary.LittleEndian.Uint64(b[:]))
}
