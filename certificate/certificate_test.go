package certificate

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nicholasbishop/efitools/testing/fixtures"
)

func TestDecodePEM(t *testing.T) {
	der, err := Decode(fixtures.PKCert)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	require.Equal(t, "efitools test PK", cert.Subject.CommonName)
}

func TestDecodeDER(t *testing.T) {
	block, _ := pem.Decode(fixtures.PKCert)
	require.NotNil(t, block)

	der, err := Decode(block.Bytes)
	require.NoError(t, err)
	require.Equal(t, block.Bytes, der)

	// result does not alias the input
	der[0] ^= 0xff
	require.NotEqual(t, block.Bytes[0], der[0])
}

func TestDecodeInvalid(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		input := []byte("not a certificate")
		_, err := Decode(input)
		require.ErrorIs(t, err, ErrInvalidCertificate)

		// the x509 parse error stays reachable
		_, cause := x509.ParseCertificate(input)
		require.Error(t, cause)
		var joined interface{ Unwrap() []error }
		require.True(t, errors.As(err, &joined))
		require.Len(t, joined.Unwrap(), 2)
		require.Equal(t, cause.Error(), joined.Unwrap()[1].Error())
	})

	t.Run("truncated", func(t *testing.T) {
		block, _ := pem.Decode(fixtures.PKCert)
		_, err := Decode(block.Bytes[:len(block.Bytes)-1])
		require.ErrorIs(t, err, ErrInvalidCertificate)
		require.Contains(t, err.Error(), "x509:")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(nil)
		require.ErrorIs(t, err, ErrInvalidCertificate)
	})

	t.Run("no certificate block", func(t *testing.T) {
		key := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1, 2, 3}})
		_, err := Decode(key)
		require.ErrorIs(t, err, ErrNoCertificate)
	})
}

func TestDecodeAll(t *testing.T) {
	key := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1, 2, 3}})
	other := pem.EncodeToMemory(&pem.Block{Type: "TRUSTED CERTIFICATE", Bytes: []byte{4, 5, 6}})

	var bundle []byte
	bundle = append(bundle, fixtures.PKCert...)
	bundle = append(bundle, key...)
	bundle = append(bundle, other...)

	ders, err := DecodeAll(bundle)
	require.NoError(t, err)
	require.Len(t, ders, 2)
	require.Equal(t, []byte{4, 5, 6}, ders[1])

	first, err := Decode(bundle)
	require.NoError(t, err)
	require.Equal(t, ders[0], first)
}
