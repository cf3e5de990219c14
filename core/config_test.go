package core

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		if err := os.Setenv(k, v); err != nil {
			t.Fatalf("os.Setenv(%s): %v", k, err)
		}
	}
	t.Cleanup(func() {
		for k := range env {
			_ = os.Unsetenv(k)
		}
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setEnv(t, map[string]string{"ENV": ""})
		conf := NewConfig()

		assert.Equal(t, "DEV", conf.Env)
		assert.Equal(t, "Sanatos", conf.AppName)
		assert.True(t, conf.Debug)
		assert.False(t, conf.TestMode)
		assert.Equal(t, ":8000", conf.Server.Address)
		assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
		assert.Equal(t, []string{"*"}, conf.Server.AllowOrigins)
	})

	t.Run("prefixed env", func(t *testing.T) {
		setEnv(t, map[string]string{
			"ENV":                         "test",
			"TEST_DEBUG":                  "false",
			"TEST_SERVER_ADDRESS":         ":9000",
			"TEST_SERVER_SHUTDOWNTIMEOUT": "10s",
			"TEST_SERVER_ALLOWORIGINS":    "https://a.test https://b.test",
			"PROD_SERVER_ADDRESS":         ":80",
		})
		conf := NewConfig()

		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
		assert.False(t, conf.Debug)
		assert.Equal(t, ":9000", conf.Server.Address)
		assert.Equal(t, 10*time.Second, conf.Server.ShutdownTimeout)
		assert.Equal(t, []string{"https://a.test", "https://b.test"}, conf.Server.AllowOrigins)
	})
}
