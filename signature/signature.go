// Package signature encodes EFI_SIGNATURE_LIST structures as stored in the
// secure boot key databases (PK, KEK, db, dbx).
//
// See UEFI 2.10 "32.4.1 Signature Database".
package signature

import (
	"github.com/nicholasbishop/efitools/guid"
)

// X509Type is EFI_CERT_X509_GUID.
var X509Type = guid.FromFields(0xa5c059a1, 0x94e4, 0x4aa7, 0x87, 0xb5, [6]byte{0xab, 0x15, 0x5c, 0x2b, 0xf0, 0x72})

// Kind describes what every signature in a list shares: the SignatureType
// GUID and the SignatureHeader written once per list.
type Kind interface {
	Type() guid.GUID
	// Header is usually empty.
	Header() []byte
}

// Signature is one EFI_SIGNATURE_DATA payload.
type Signature interface {
	// Size of the payload in bytes, excluding the owner GUID.
	Size() int
	// AppendTo appends the payload to b.
	AppendTo(b []byte) []byte
}

// X509Kind is the kind of X509 signatures.
var X509Kind Kind = x509Kind{}

type x509Kind struct{}

func (x509Kind) Type() guid.GUID {
	return X509Type
}

func (x509Kind) Header() []byte {
	return nil
}

// X509 is a DER encoded X.509 certificate, stored without extra framing.
type X509 struct {
	DER []byte
}

// NewX509 wraps a copy of the DER encoded certificate.
func NewX509(der []byte) X509 {
	return X509{DER: append([]byte(nil), der...)}
}

func (s X509) Size() int {
	return len(s.DER)
}

func (s X509) AppendTo(b []byte) []byte {
	return append(b, s.DER...)
}
