package fixtures

import (
	_ "embed"

	"github.com/nicholasbishop/efitools/guid"
)

// Self-signed RSA 2048 certificate, CN=efitools test PK.
//
//go:embed PK.crt
var PKCert []byte

// PKCert encoded as a signature list owned by Owner.
//
//go:embed PK.esl
var PKSignatureList []byte

var Owner = guid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
