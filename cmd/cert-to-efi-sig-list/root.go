package main

import (
	"fmt"
	"os"

	"github.com/multiformats/go-multibase"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nicholasbishop/efitools/signature"
)

const (
	FlagOwner    = "owner"
	FlagEncoding = "encoding"
	FlagLogLevel = "log-level"

	// EncodingRaw writes the binary EFI_SIGNATURE_LIST.
	EncodingRaw = "raw"
)

func New(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cert-to-efi-sig-list [flags] CERT SIG_LIST",
		Short: "Convert an X.509 certificate to an EFI signature list",
		Long: `Convert a PEM or DER encoded X.509 certificate to an EFI signature list
containing that certificate. When CERT is a PEM bundle every certificate in it
becomes an entry of the list; they must all have the same DER length.`,
		Example: `  cert-to-efi-sig-list PK.crt PK.esl
  cert-to-efi-sig-list --owner 00112233-4455-6677-8899-aabbccddeeff db.crt db.esl
  cert-to-efi-sig-list --encoding base64 KEK.crt KEK.esl.b64`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().String(FlagOwner, cfg.Owner, fmt.Sprintf("use this GUID as the owner of the signatures, %q generates one (defaults to an all-zero GUID)", randomOwner))
	cmd.Flags().String(FlagEncoding, cfg.Encoding, fmt.Sprintf("output encoding, %q or a multibase encoding name such as base64 or base16", EncodingRaw))
	cmd.Flags().String(FlagLogLevel, cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	certPath, sigListPath := args[0], args[1]

	level, _ := cmd.Flags().GetString(FlagLogLevel)
	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())

	ownerFlag, _ := cmd.Flags().GetString(FlagOwner)
	owner, err := parseOwner(ownerFlag)
	if err != nil {
		return err
	}

	encoding, _ := cmd.Flags().GetString(FlagEncoding)
	encode, err := encoder(encoding)
	if err != nil {
		return err
	}

	log := logger.WithFields(logrus.Fields{
		"cert":  certPath,
		"owner": owner.String(),
	})

	input, err := os.ReadFile(certPath)
	if err != nil {
		return errors.Wrap(err, "reading certificate")
	}

	list, err := signature.FromX509Bundle(input, owner)
	if err != nil {
		return errors.Wrapf(err, "converting %s", certPath)
	}
	log.WithField("signatures", list.Len()).Debug("decoded certificates")

	data, err := list.Encode()
	if err != nil {
		return errors.Wrap(err, "encoding signature list")
	}

	out := encode(data)
	if err := os.WriteFile(sigListPath, out, 0o644); err != nil {
		return errors.Wrap(err, "writing signature list")
	}

	log.WithFields(logrus.Fields{
		"sig_list": sigListPath,
		"size":     len(data),
		"encoding": encoding,
	}).Info("wrote signature list")
	return nil
}

func encoder(name string) (func([]byte) []byte, error) {
	if name == EncodingRaw {
		return func(b []byte) []byte { return b }, nil
	}
	enc, err := multibase.EncoderByName(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported encoding %q", name)
	}
	return func(b []byte) []byte { return []byte(enc.Encode(b)) }, nil
}
