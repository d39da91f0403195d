package weaverlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestForServer_BindsServerField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	defaultOnce.Do(func() {})
	defaultLogger = zap.New(core)

	logger := ForServer("weaver_http_server_127.0.0.1_8000")
	logger.Info("listening")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "listening", entries[0].Message)
	assert.Equal(t, "weaver_http_server_127.0.0.1_8000", entries[0].ContextMap()["server"])
}

func TestSlog_BridgesToStandardLibrarySlog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewWithCore(core)

	s := Slog(l)
	s.Info("bridged")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bridged", entries[0].Message)
}
