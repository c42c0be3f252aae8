package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/ddbgateway"
	"github.com/suparena/ddbgateway/config"
	"github.com/suparena/ddbgateway/errors"
)

// clearEnv blanks the variables config.Load reads; blank values are ignored.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvPort, config.EnvRegion, config.EnvTableName, config.EnvAccessKey,
		config.EnvSecretKey, config.EnvSessionToken, config.EnvEndpoint, config.EnvScanLimit,
		config.EnvConsistentRead, config.EnvLogLevel, config.EnvLogFormat,
	} {
		t.Setenv(key, "")
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ddbgateway version "+ddbgateway.Version)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "gateway.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("port: 9000\ntable_name: yaml-table\n"), 0o600))

	clearEnv(t)
	opts := &rootOptions{}
	cmd := newRootCmdWith(opts)
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", yamlPath,
		"--env-file", filepath.Join(dir, "missing.env"),
		"--table", "flag-table",
		"--scan-limit", "25",
	}))

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port, "unset flag keeps the file value")
	assert.Equal(t, "flag-table", cfg.TableName)
	assert.Equal(t, int32(25), cfg.ScanLimit)
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	clearEnv(t)
	opts := &rootOptions{}
	cmd := newRootCmdWith(opts)
	require.NoError(t, cmd.ParseFlags([]string{
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
		"--port", "0",
	}))

	_, err := loadConfig(cmd, opts)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRejectsPositionalArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
