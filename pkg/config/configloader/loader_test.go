package configloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server struct {
		Port    int           `koanf:"port"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"server"`
	DB struct {
		Host string `koanf:"host"`
		User string `koanf:"user"`
	} `koanf:"db"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func (c *testConfig) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("port is required")
	}
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Priority(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yaml", "server:\n  port: 2000\n  timeout: 3s\nlog:\n  level: warn\n")
	envFile := writeFile(t, dir, ".env", "SVC_LOG_LEVEL=error\nDB_HOST=filehost\nUNRELATED=x\n")
	t.Setenv("SVC_SERVER_PORT", "3000")
	t.Setenv("DB_USER", "alice")

	cfg, err := Load[*testConfig](Options{
		ServiceName:    "svc",
		SharedPrefixes: []string{"DB_"},
		Defaults:       map[string]any{"server.port": 1000, "db.host": "localhost", "log.level": "info"},
		ConfigFile:     cfgFile,
		EnvFile:        envFile,
	})

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port, "system env overrides the file")
	assert.Equal(t, 3*time.Second, cfg.Server.Timeout, "yaml value applies")
	assert.Equal(t, "error", cfg.Log.Level, ".env overrides yaml")
	assert.Equal(t, "filehost", cfg.DB.Host, ".env overrides defaults")
	assert.Equal(t, "alice", cfg.DB.User, "shared prefix keeps its key")
}

func TestLoad_DefaultsOnly(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load[*testConfig](Options{
		ServiceName: "svc",
		Defaults:    map[string]any{"server.port": 1234},
		ConfigFile:  filepath.Join(dir, "missing.yaml"),
		EnvFile:     filepath.Join(dir, "missing.env"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.Server.Port)
}

func TestLoad_ValidationError(t *testing.T) {
	dir := t.TempDir()

	_, err := Load[*testConfig](Options{
		ServiceName: "svc",
		ConfigFile:  filepath.Join(dir, "missing.yaml"),
		EnvFile:     filepath.Join(dir, "missing.env"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestTransformKey(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		expected string
		ok       bool
	}{
		{name: "service prefix stripped", key: "CRUD_SERVER_PORT", expected: "server.port", ok: true},
		{name: "nested service key", key: "CRUD_SHUTDOWN_TIMEOUT", expected: "shutdown.timeout", ok: true},
		{name: "shared prefix kept", key: "DB_PASS", expected: "db.pass", ok: true},
		{name: "unrelated variable", key: "HOME", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := transformKey(tc.key, "CRUD_", []string{"DB_"})
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}
