// Package guid implements the EFI Globally Unique Identifier.
//
// See UEFI 2.10 "Appendix A - GUID and Time Formats". The wire form
// stores the first three fields little-endian and the remaining eight bytes
// verbatim, which differs from the RFC 4122 byte order used by most UUID
// libraries.
package guid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// Size is the length in bytes of an encoded GUID.
const Size = 16

// GUID is an EFI_GUID. It is a plain value and comparable with ==.
type GUID struct {
	TimeLow               uint32
	TimeMid               uint16
	TimeHiAndVersion      uint16
	ClockSeqHiAndReserved uint8
	ClockSeqLow           uint8
	Node                  [6]byte
}

// Nil is the all-zero GUID.
var Nil = GUID{}

// FromFields builds a GUID from its fields. Bytes writes TimeLow, TimeMid and
// TimeHiAndVersion little-endian and the remaining bytes as given.
func FromFields(timeLow uint32, timeMid, timeHiAndVersion uint16, clockSeqHiAndReserved, clockSeqLow uint8, node [6]byte) GUID {
	return GUID{
		TimeLow:               timeLow,
		TimeMid:               timeMid,
		TimeHiAndVersion:      timeHiAndVersion,
		ClockSeqHiAndReserved: clockSeqHiAndReserved,
		ClockSeqLow:           clockSeqLow,
		Node:                  node,
	}
}

// New generates a random (version 4) GUID.
func New() (GUID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return Nil, fmt.Errorf("generating random GUID: %w", err)
	}
	return FromUUID(u), nil
}

// FromUUID converts an RFC 4122 UUID (big-endian fields) into a GUID.
func FromUUID(u uuid.UUID) GUID {
	g := GUID{
		TimeLow:               binary.BigEndian.Uint32(u[0:4]),
		TimeMid:               binary.BigEndian.Uint16(u[4:6]),
		TimeHiAndVersion:      binary.BigEndian.Uint16(u[6:8]),
		ClockSeqHiAndReserved: u[8],
		ClockSeqLow:           u[9],
	}
	copy(g.Node[:], u[10:16])
	return g
}

// UUID returns the RFC 4122 representation of the GUID. Both share the same
// canonical text form.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.TimeLow)
	binary.BigEndian.PutUint16(u[4:6], g.TimeMid)
	binary.BigEndian.PutUint16(u[6:8], g.TimeHiAndVersion)
	u[8] = g.ClockSeqHiAndReserved
	u[9] = g.ClockSeqLow
	copy(u[10:16], g.Node[:])
	return u
}

// IsNil reports whether g is the all-zero GUID.
func (g GUID) IsNil() bool {
	return g == Nil
}

// AppendTo appends the 16 byte wire form of the GUID to b.
func (g GUID) AppendTo(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, g.TimeLow)
	b = binary.LittleEndian.AppendUint16(b, g.TimeMid)
	b = binary.LittleEndian.AppendUint16(b, g.TimeHiAndVersion)
	b = append(b, g.ClockSeqHiAndReserved, g.ClockSeqLow)
	return append(b, g.Node[:]...)
}

// Bytes returns the 16 byte wire form of the GUID.
func (g GUID) Bytes() []byte {
	return g.AppendTo(make([]byte, 0, Size))
}

// Decode reads a GUID from its 16 byte wire form.
func Decode(b []byte) (GUID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("invalid length: %d wanted: %d", len(b), Size)
	}
	g := GUID{
		TimeLow:               binary.LittleEndian.Uint32(b[0:4]),
		TimeMid:               binary.LittleEndian.Uint16(b[4:6]),
		TimeHiAndVersion:      binary.LittleEndian.Uint16(b[6:8]),
		ClockSeqHiAndReserved: b[8],
		ClockSeqLow:           b[9],
	}
	copy(g.Node[:], b[10:16])
	return g, nil
}

// String returns the lower-case xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
func (g GUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%x",
		g.TimeLow, g.TimeMid, g.TimeHiAndVersion,
		g.ClockSeqHiAndReserved, g.ClockSeqLow, g.Node[:])
}

func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
