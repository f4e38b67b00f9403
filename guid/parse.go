package guid

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// length of the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form
const textSize = 36

var dashes = [...]int{8, 13, 18, 23}

var (
	ErrIncorrectLength = errors.New("incorrect length")
	ErrMissingDash     = errors.New("missing dash")
	ErrInvalidHex      = errors.New("invalid hex digit")
)

// ParseError reports the first problem found in a textual GUID. Reason is one
// of ErrIncorrectLength, ErrMissingDash or ErrInvalidHex.
type ParseError struct {
	Input  string
	Index  int
	Reason error
}

func (e *ParseError) Error() string {
	if e.Reason == ErrIncorrectLength {
		return fmt.Sprintf("parsing GUID %q: %s: %d wanted: %d", e.Input, e.Reason, e.Index, textSize)
	}
	return fmt.Sprintf("parsing GUID %q: %s at index %d", e.Input, e.Reason, e.Index)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

func (e *ParseError) Name() string {
	switch e.Reason {
	case ErrIncorrectLength:
		return "IncorrectLength"
	case ErrMissingDash:
		return "MissingDash"
	default:
		return "InvalidHex"
	}
}

// Parse parses the canonical 8-4-4-4-12 hex text form of a GUID. Characters
// are checked left to right and the first bad one is reported; a string with
// no bad character among its first 36 that is not exactly 36 characters long
// fails with ErrIncorrectLength and the actual length as index. A short string
// can therefore report ErrMissingDash or ErrInvalidHex when the missing
// character shifts a dash out of place.
func Parse(s string) (GUID, error) {
	if err := validate(s); err != nil {
		return Nil, err
	}

	var b [Size]byte
	groups := [...]struct{ from, to int }{{0, 8}, {9, 13}, {14, 18}, {19, 23}, {24, 36}}
	n := 0
	for _, grp := range groups {
		w, _ := hex.Decode(b[n:], []byte(s[grp.from:grp.to]))
		n += w
	}

	// text form is big-endian field order
	g := GUID{
		TimeLow:               uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]),
		TimeMid:               uint16(b[4])<<8 | uint16(b[5]),
		TimeHiAndVersion:      uint16(b[6])<<8 | uint16(b[7]),
		ClockSeqHiAndReserved: b[8],
		ClockSeqLow:           b[9],
	}
	copy(g.Node[:], b[10:16])
	return g, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// well-known constants.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

func validate(s string) error {
	next := 0
	for i := 0; i < len(s) && i < textSize; i++ {
		if next < len(dashes) && i == dashes[next] {
			next++
			if s[i] != '-' {
				return &ParseError{Input: s, Index: i, Reason: ErrMissingDash}
			}
			continue
		}
		if !isHex(s[i]) {
			return &ParseError{Input: s, Index: i, Reason: ErrInvalidHex}
		}
	}
	if len(s) != textSize {
		return &ParseError{Input: s, Index: len(s), Reason: ErrIncorrectLength}
	}
	return nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
