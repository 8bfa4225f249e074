package logger

import (
	"errors"
	"log"

	"github.com/joeshaw/envdecode"
)

type Conf struct {
	Level  string `env:"FLIGHTDESK_LOG_LEVEL,default=info"`
	Format string `env:"FLIGHTDESK_LOG_FORMAT,default=text"`
	LogDir string `env:"FLIGHTDESK_LOG_DIR"`
}

func LogConfig() *Conf {
	configs := new(Conf)
	if err := envdecode.Decode(configs); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		log.Fatalf("failed to decode log config: %s", err)
	}
	if configs.Level == "" {
		configs.Level = "info"
	}
	if configs.Format == "" {
		configs.Format = "text"
	}
	return configs
}
