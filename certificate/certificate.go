// Package certificate extracts DER encoded X.509 certificates from PEM or
// raw DER input. It does not validate certificate content or trust.
package certificate

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNoCertificate      = errors.New("no certificate found")
	ErrInvalidCertificate = errors.New("invalid DER certificate")
)

// PEM block types accepted as certificates.
var blockTypes = map[string]bool{
	"CERTIFICATE":         true,
	"X509 CERTIFICATE":    true,
	"TRUSTED CERTIFICATE": true,
}

// Decode returns the DER bytes of the first certificate in input. PEM input
// is unwrapped; anything else must parse as a DER certificate.
func Decode(input []byte) ([]byte, error) {
	ders, err := decode(input, 1)
	if err != nil {
		return nil, err
	}
	return ders[0], nil
}

// DecodeAll returns the DER bytes of every certificate in input, in order.
func DecodeAll(input []byte) ([][]byte, error) {
	return decode(input, -1)
}

func decode(input []byte, limit int) ([][]byte, error) {
	if !isPEM(input) {
		if _, err := x509.ParseCertificate(input); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCertificate, err)
		}
		return [][]byte{bytes.Clone(input)}, nil
	}

	var ders [][]byte
	rest := input
	for len(ders) != limit {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if !blockTypes[block.Type] {
			continue
		}
		ders = append(ders, block.Bytes)
	}
	if len(ders) == 0 {
		return nil, ErrNoCertificate
	}
	return ders, nil
}

func isPEM(input []byte) bool {
	block, _ := pem.Decode(input)
	return block != nil
}
