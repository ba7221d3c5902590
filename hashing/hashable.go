package hashing

import (
	"encoding/binary"
	"hash"
	"math"
)

// writeUint64 writes v in big-endian order. Every fixed-width integer type is
// widened to 64 bits first, so int32(7) and int64(7) produce the same bytes.
func writeUint64(h hash.Hash, v uint64) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], v)

	_, err := h.Write(buf[:])

	return err
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	if b {
		_, err := h.Write([]byte{1})

		return err
	}

	_, err := h.Write([]byte{0})

	return err
}

type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec
}

type HashableInt8 int8

func (i HashableInt8) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec
}

type HashableInt16 int16

func (i HashableInt16) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec
}

type HashableInt32 int32

func (i HashableInt32) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec
}

type HashableUint uint

func (u HashableUint) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(u))
}

type HashableUint8 uint8

func (u HashableUint8) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(u))
}

type HashableUint16 uint16

func (u HashableUint16) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(u))
}

type HashableUint32 uint32

func (u HashableUint32) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(u))
}

type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(u))
}

// HashableFloat32 hashes the IEEE-754 bits of the value, with -0 folded into +0
// since the two compare equal. NaN != NaN, so a NaN key can be digested but
// never found again by equality.
type HashableFloat32 float32

func (f HashableFloat32) UpdateHash(h hash.Hash) error {
	return HashableFloat64(f).UpdateHash(h)
}

type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	if f == 0 {
		f = 0
	}

	return writeUint64(h, math.Float64bits(float64(f)))
}
