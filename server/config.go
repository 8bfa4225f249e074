package server

import (
	"time"

	"github.com/flightdesk/config"
)

type Conf struct {
	Addr         string
	TimeoutRead  time.Duration
	TimeoutWrite time.Duration
	TimeoutIdle  time.Duration
}

func ServerConfigs(cfg config.Server) *Conf {
	c := &Conf{
		Addr:         cfg.Addr,
		TimeoutRead:  cfg.ReadTimeout,
		TimeoutWrite: cfg.WriteTimeout,
		TimeoutIdle:  cfg.IdleTimeout,
	}
	if c.Addr == "" {
		c.Addr = "localhost:5000"
	}
	if c.TimeoutRead == 0 {
		c.TimeoutRead = time.Second * 30
	}
	// two provider round-trips plus tool calls must fit in one write window
	if c.TimeoutWrite == 0 {
		c.TimeoutWrite = time.Second * 150
	}
	if c.TimeoutIdle == 0 {
		c.TimeoutIdle = time.Second * 30
	}
	return c
}
