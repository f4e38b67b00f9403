package signature

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/nicholasbishop/efitools/guid"
)

// HeaderSize is the fixed part of an EFI_SIGNATURE_LIST: SignatureType,
// SignatureListSize, SignatureHeaderSize and SignatureSize.
const HeaderSize = guid.Size + 4 + 4 + 4

// Entry is an EFI_SIGNATURE_DATA: the owner GUID followed by the payload.
type Entry[S Signature] struct {
	Owner     guid.GUID
	Signature S
}

// Size of the encoded entry including the owner GUID.
func (e Entry[S]) Size() int {
	return guid.Size + e.Signature.Size()
}

func (e Entry[S]) AppendTo(b []byte) []byte {
	b = e.Owner.AppendTo(b)
	return e.Signature.AppendTo(b)
}

// List is an EFI_SIGNATURE_LIST holding signatures of a single kind.
//
// Entries are not validated when added. Encode reports signatures of
// differing sizes, which the format cannot represent.
//
// A List is a builder owned by one caller and is not safe for concurrent use.
type List[S Signature] struct {
	kind    Kind
	entries []Entry[S]
}

// NewList returns an empty list whose type and header come from kind.
func NewList[S Signature](kind Kind) *List[S] {
	return &List[S]{kind: kind}
}

// NewX509List returns an empty list of X.509 certificates.
func NewX509List() *List[X509] {
	return NewList[X509](X509Kind)
}

// Add appends a signature owned by owner.
func (l *List[S]) Add(sig S, owner guid.GUID) {
	l.entries = append(l.entries, Entry[S]{Owner: owner, Signature: sig})
}

// Len is the number of entries.
func (l *List[S]) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in the order they were added.
func (l *List[S]) Entries() []Entry[S] {
	return append([]Entry[S](nil), l.entries...)
}

// Type is the SignatureType of the list, or guid.Nil for a list built
// without a kind.
func (l *List[S]) Type() guid.GUID {
	if l.kind == nil {
		return guid.Nil
	}
	return l.kind.Type()
}

func (l *List[S]) header() []byte {
	if l.kind == nil {
		return nil
	}
	return l.kind.Header()
}

// Size is the SignatureListSize: the length of the encoded list. It is
// computed even when entry sizes disagree.
func (l *List[S]) Size() int {
	size := HeaderSize + len(l.header())
	for _, e := range l.entries {
		size += e.Size()
	}
	return size
}

// SignatureSize is the size of each entry including its owner GUID, or 0 for
// an empty list. It fails with a *SizeMismatchError at the first entry whose
// size differs from the first one.
func (l *List[S]) SignatureSize() (int, error) {
	if len(l.entries) == 0 {
		return 0, nil
	}
	size := l.entries[0].Size()
	for i, e := range l.entries[1:] {
		if e.Size() != size {
			return 0, &SizeMismatchError{Index: i + 1, Expected: size, Actual: e.Size()}
		}
	}
	return size, nil
}

// Encode returns the EFI_SIGNATURE_LIST bytes. All fields are little-endian.
func (l *List[S]) Encode() ([]byte, error) {
	if l.kind == nil {
		return nil, ErrNoKind
	}
	sigSize, err := l.SignatureSize()
	if err != nil {
		return nil, err
	}
	size := l.Size()
	if uint64(size) > math.MaxUint32 {
		return nil, ErrListTooLarge
	}
	header := l.header()

	b := make([]byte, 0, size)
	b = l.Type().AppendTo(b)
	b = binary.LittleEndian.AppendUint32(b, uint32(size))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(header)))
	b = binary.LittleEndian.AppendUint32(b, uint32(sigSize))
	b = append(b, header...)
	for _, e := range l.entries {
		b = e.AppendTo(b)
	}
	return b, nil
}

// WriteTo writes the encoded list to w. Nothing is written if encoding fails.
func (l *List[S]) WriteTo(w io.Writer) (int64, error) {
	b, err := l.Encode()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
