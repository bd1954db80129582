package fifo

import (
	"encoding/binary"
	"unicode/utf8"
)

// MaxNameLen is the byte bound for entry names. Longer values are
// truncated, never rejected.
const MaxNameLen = 20

// Name is a bounded-length text label. Construct with NewName, which
// enforces the bound by truncation.
type Name string

// NewName returns s truncated to at most MaxNameLen bytes. Truncation
// backs off to the previous rune boundary so the result is always valid
// UTF-8. Oversized input is a normal condition, not an error.
func NewName(s string) Name {
	if len(s) <= MaxNameLen {
		return Name(s)
	}
	cut := MaxNameLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return Name(s[:cut])
}

// String returns the stored text.
func (n Name) String() string {
	return string(n)
}

// Entry is the record type carried by the demo queue: a plain value,
// copied in and out, never shared.
//
// ID is caller-assigned with no uniqueness enforced. It is 32 bits wide;
// a single-byte ID would wrap silently past 255 insertions, and at this
// width wraparound is unreachable for any realistic volume.
//
// Timestamp holds opaque monotonic clock ticks captured by the caller at
// creation time, typically from pkg/timestamp. The queue never interprets
// it.
type Entry struct {
	ID        uint32
	Name      Name
	Timestamp int64
}

// EntryWireSize is the fixed encoded size of an Entry in snapshots:
// the ID, a zero-padded name field, and the timestamp.
const EntryWireSize = 4 + MaxNameLen + 8

// AppendBinary appends the fixed-size little-endian encoding of e to dst
// and returns the extended slice. The name field is zero-padded to
// MaxNameLen bytes so every entry occupies exactly EntryWireSize bytes,
// keeping snapshot offsets stable. The signature matches Encoder via the
// method expression Entry.AppendBinary.
func (e Entry) AppendBinary(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, e.ID)

	var name [MaxNameLen]byte
	copy(name[:], e.Name)
	dst = append(dst, name[:]...)

	dst = binary.LittleEndian.AppendUint64(dst, uint64(e.Timestamp))
	return dst
}
