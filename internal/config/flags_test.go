package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 3000}, expected: "localhost:3000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 3000}, expected: ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:3000", expectedAddr: NetAddress{Host: "localhost", Port: 3000}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":3000", expectedAddr: NetAddress{Port: 3000}},
		{name: "missing colon", input: "localhost3000", expectError: true},
		{name: "non-numeric port", input: "localhost:abc", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "invalid host", input: "not-an-ip:3000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "localhost:3000",
		"-grpc-address", "127.0.0.1:9090",
		"-d", "postgres://localhost/todos",
		"-c", "/etc/todo.json",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-password-hash-cost", "11",
		"-request-timeout", "10s",
		"-allowed-origin", "http://localhost:5173",
		"-server-url", "http://localhost:3000",
		"-cache-dsn", "cache.db",
		"-sync-interval", "30s",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://localhost/todos", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/todo.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "http://localhost:5173", cfg.Server.AllowedOrigin)
	assert.Equal(t, "http://localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "cache.db", cfg.Storage.Cache.DSN)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/tmp/c.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.App.TokenSignKey)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nope"})
	require.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
}
