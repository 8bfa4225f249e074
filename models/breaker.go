package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"

	"github.com/flightdesk/config"
	"github.com/flightdesk/logger"
	"github.com/flightdesk/types"
)

const (
	defaultBreakerMaxFailures uint32        = 5
	defaultBreakerTimeout     time.Duration = 30 * time.Second
	defaultBreakerInterval    time.Duration = 60 * time.Second
)

// BreakerProvider fails fast once the wrapped provider keeps failing. It
// never retries.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker[*types.Message]
	log     *logger.Logger
}

func NewBreakerProvider(inner Provider, cfg config.Breaker) *BreakerProvider {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultBreakerMaxFailures
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultBreakerTimeout
	}
	interval := cfg.Interval
	if interval == 0 {
		interval = defaultBreakerInterval
	}

	log := logger.NewLogger("BreakerProvider", uuid.NewString())
	cb := gobreaker.NewCircuitBreaker[*types.Message](gobreaker.Settings{
		Name:        "llm:" + inner.Name(),
		MaxRequests: 1,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
		IsSuccessful: func(err error) bool {
			// the caller giving up says nothing about provider health
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerProvider{inner: inner, breaker: cb, log: log}
}

func (p *BreakerProvider) Name() string { return p.inner.Name() }

// Complete implements Provider.
func (p *BreakerProvider) Complete(ctx context.Context, req CompletionRequest) (*types.Message, error) {
	msg, err := p.breaker.Execute(func() (*types.Message, error) {
		return p.inner.Complete(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", types.ErrUpstreamProvider, err)
	}
	return msg, err
}

// State exposes the breaker state for health reporting.
func (p *BreakerProvider) State() string {
	return p.breaker.State().String()
}
