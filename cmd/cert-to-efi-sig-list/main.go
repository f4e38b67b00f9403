// Command cert-to-efi-sig-list converts an X.509 certificate to an EFI
// signature list containing just that certificate.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := NewConfig(envPrefix)
	if err != nil {
		logrus.WithError(err).Fatal("reading configuration")
	}
	if err := New(cfg).Execute(); err != nil {
		logrus.WithError(err).Error("cert-to-efi-sig-list failed")
		os.Exit(1)
	}
}
