// Package config builds the immutable process configuration once at startup.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/flightdesk/types"
)

// LLM configures the chat-completions provider.
type LLM struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Breaker Breaker
}

// Breaker configures the circuit breaker around the LLM provider.
type Breaker struct {
	MaxFailures uint32
	Timeout     time.Duration
	Interval    time.Duration
}

// Aviation configures the aviation data provider. An empty APIKey puts every
// flight and airport tool in demo mode.
type Aviation struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	Burst     int
}

// Live reports whether a credential was configured.
func (a Aviation) Live() bool {
	return a.APIKey != ""
}

// Server configures the HTTP listener.
type Server struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Auth configures the optional bearer-token gate on /chat.
type Auth struct {
	JWTSecret string
}

// Enabled reports whether /chat requires a bearer token.
func (a Auth) Enabled() bool {
	return a.JWTSecret != ""
}

type Config struct {
	LLM      LLM
	Aviation Aviation
	Server   Server
	Auth     Auth
}

// writeMargin covers request decoding, tool decoding and the response write.
const writeMargin = 10 * time.Second

// ExchangeBudget is the longest a successful /chat exchange can take: two
// provider rounds plus one round of concurrent aviation lookups.
func (c *Config) ExchangeBudget() time.Duration {
	return 2*c.LLM.Timeout + c.Aviation.Timeout + writeMargin
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("llm.base_url", "https://api.deepseek.com")
	v.SetDefault("llm.model", "deepseek-chat")
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("llm.breaker.max_failures", 5)
	v.SetDefault("llm.breaker.timeout", 30*time.Second)
	v.SetDefault("llm.breaker.interval", 60*time.Second)

	v.SetDefault("aviation.base_url", "http://api.aviationstack.com/v1")
	v.SetDefault("aviation.timeout", 10*time.Second)
	v.SetDefault("aviation.rate_limit", 0)
	v.SetDefault("aviation.burst", 1)

	v.SetDefault("server.addr", "localhost:5000")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 150*time.Second)
	v.SetDefault("server.idle_timeout", 30*time.Second)

	// BindEnv only errors when called without a key.
	_ = v.BindEnv("llm.api_key", "DEEPSEEK_API_KEY")
	_ = v.BindEnv("llm.base_url", "DEEPSEEK_BASE_URL")
	_ = v.BindEnv("llm.model", "DEEPSEEK_MODEL")
	_ = v.BindEnv("aviation.api_key", "AVIATIONSTACK_API_KEY")
	_ = v.BindEnv("aviation.base_url", "AVIATIONSTACK_BASE_URL")
	_ = v.BindEnv("server.addr", "FLIGHTDESK_ADDR")
	_ = v.BindEnv("auth.jwt_secret", "FLIGHTDESK_JWT_SECRET")
}

// Load reads every setting out of v. The LLM credential is required.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LLM: LLM{
			APIKey:  strings.TrimSpace(v.GetString("llm.api_key")),
			BaseURL: strings.TrimRight(v.GetString("llm.base_url"), "/"),
			Model:   v.GetString("llm.model"),
			Timeout: v.GetDuration("llm.timeout"),
			Breaker: Breaker{
				MaxFailures: v.GetUint32("llm.breaker.max_failures"),
				Timeout:     v.GetDuration("llm.breaker.timeout"),
				Interval:    v.GetDuration("llm.breaker.interval"),
			},
		},
		Aviation: Aviation{
			APIKey:    strings.TrimSpace(v.GetString("aviation.api_key")),
			BaseURL:   strings.TrimRight(v.GetString("aviation.base_url"), "/"),
			Timeout:   v.GetDuration("aviation.timeout"),
			RateLimit: v.GetFloat64("aviation.rate_limit"),
			Burst:     v.GetInt("aviation.burst"),
		},
		Server: Server{
			Addr:         v.GetString("server.addr"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
		},
		Auth: Auth{
			JWTSecret: v.GetString("auth.jwt_secret"),
		},
	}

	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("%w: DEEPSEEK_API_KEY is not set", types.ErrConfig)
	}
	if cfg.LLM.Model == "" {
		return nil, fmt.Errorf("%w: llm.model is empty", types.ErrConfig)
	}
	if cfg.Aviation.Timeout <= 0 {
		return nil, fmt.Errorf("%w: aviation.timeout must be positive", types.ErrConfig)
	}
	if cfg.Aviation.RateLimit < 0 {
		return nil, fmt.Errorf("%w: aviation.rate_limit must not be negative", types.ErrConfig)
	}
	if cfg.Aviation.Burst < 1 {
		cfg.Aviation.Burst = 1
	}
	if budget := cfg.ExchangeBudget(); cfg.Server.WriteTimeout < budget {
		cfg.Server.WriteTimeout = budget
	}
	return cfg, nil
}
