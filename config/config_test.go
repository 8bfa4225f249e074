package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightdesk/types"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadRequiresLLMKey(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "")

	_, err := Load(newViper())
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrConfig))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("AVIATIONSTACK_API_KEY", "")

	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "https://api.deepseek.com", cfg.LLM.BaseURL)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, uint32(5), cfg.LLM.Breaker.MaxFailures)
	assert.Equal(t, 10*time.Second, cfg.Aviation.Timeout)
	assert.Equal(t, "http://api.aviationstack.com/v1", cfg.Aviation.BaseURL)
	assert.False(t, cfg.Aviation.Live())
	assert.Equal(t, "localhost:5000", cfg.Server.Addr)
	assert.False(t, cfg.Auth.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("DEEPSEEK_BASE_URL", "http://llm.local/")
	t.Setenv("AVIATIONSTACK_API_KEY", "av-key")
	t.Setenv("FLIGHTDESK_ADDR", ":8080")
	t.Setenv("FLIGHTDESK_JWT_SECRET", "s3cret")

	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "http://llm.local", cfg.LLM.BaseURL)
	assert.True(t, cfg.Aviation.Live())
	assert.Equal(t, "av-key", cfg.Aviation.APIKey)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Auth.Enabled())
}

func TestLoadRejectsNegativeRateLimit(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	v := newViper()
	v.Set("aviation.rate_limit", -1)

	_, err := Load(v)
	assert.True(t, errors.Is(err, types.ErrConfig))
}

func TestLoadWriteTimeoutCoversExchange(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")

	cfg, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, 150*time.Second, cfg.Server.WriteTimeout)
	assert.GreaterOrEqual(t, cfg.Server.WriteTimeout, 2*cfg.LLM.Timeout+cfg.Aviation.Timeout)

	v := newViper()
	v.Set("llm.timeout", 90*time.Second)
	v.Set("server.write_timeout", 30*time.Second)
	cfg, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, 200*time.Second, cfg.Server.WriteTimeout)
}
