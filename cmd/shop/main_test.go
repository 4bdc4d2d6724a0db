package main

import (
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsConfigError(t *testing.T) {
	t.Setenv("CURRENCY_SCALE", "12")

	err := run()
	assert.ErrorContains(t, err, "load config")
}

func TestRunReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()

	port := busy.Addr().(*net.TCPAddr).Port
	t.Setenv("GRPC_PORT", strconv.Itoa(port))
	t.Setenv("SEED_CATALOG", "false")
	t.Setenv("LOG_LEVEL", "error")

	err = run()
	assert.ErrorContains(t, err, "listen")
}
