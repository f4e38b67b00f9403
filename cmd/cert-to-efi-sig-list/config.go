package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nicholasbishop/efitools/guid"
)

const envPrefix = "EFI_SIGLIST"

// literal owner value that generates a fresh GUID
const randomOwner = "random"

// Config holds flag defaults read from EFI_SIGLIST_* environment variables.
type Config struct {
	Owner    string `split_words:"true"`
	Encoding string `default:"raw"`
	LogLevel string `split_words:"true" default:"info"`
}

func NewConfig(prefix string) (Config, error) {
	var cfg Config
	err := envconfig.Process(prefix, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseOwner resolves the --owner value. Empty means the nil GUID.
func parseOwner(s string) (guid.GUID, error) {
	switch s {
	case "":
		return guid.Nil, nil
	case randomOwner:
		return guid.New()
	}
	g, err := guid.Parse(s)
	if err != nil {
		return guid.Nil, errors.Wrap(err, "invalid owner")
	}
	return g, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	logger := logrus.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}
