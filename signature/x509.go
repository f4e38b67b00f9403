package signature

import (
	"fmt"

	"github.com/nicholasbishop/efitools/certificate"
	"github.com/nicholasbishop/efitools/guid"
)

// FromX509 builds a single entry list from a PEM or DER encoded certificate.
func FromX509(input []byte, owner guid.GUID) (*List[X509], error) {
	der, err := certificate.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("decoding certificate: %w", err)
	}
	l := NewX509List()
	l.Add(X509{DER: der}, owner)
	return l, nil
}

// FromX509Bundle builds a list with one entry per certificate in a PEM
// bundle, all owned by owner. The certificates must share a DER length for
// the list to encode.
func FromX509Bundle(input []byte, owner guid.GUID) (*List[X509], error) {
	ders, err := certificate.DecodeAll(input)
	if err != nil {
		return nil, fmt.Errorf("decoding certificates: %w", err)
	}
	l := NewX509List()
	for _, der := range ders {
		l.Add(X509{DER: der}, owner)
	}
	return l, nil
}
