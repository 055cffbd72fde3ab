package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TOYROBOT_LOG_LEVEL", "debug")
	t.Setenv("TOYROBOT_SHOW", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Display.Show)
}

func TestEnvOverrideInvalidShow(t *testing.T) {
	t.Setenv("TOYROBOT_LOG_LEVEL", "")
	t.Setenv("TOYROBOT_SHOW", "sometimes")

	_, err := Load("")
	assert.Error(t, err)
}
