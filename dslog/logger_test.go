package dslog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshunter/dshunter/dslog"
)

func TestDefaultLoggerFiltersBelowLevel(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	logger := dslog.NewDefaultLogger(dslog.LevelWarn, &buf)

	logger.Info("should not appear")
	require.Empty(buf.String())

	logger.Warn("should appear")
	require.Contains(buf.String(), "should appear")
	require.Contains(buf.String(), "WARN")
}

func TestDefaultLoggerIncludesFields(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	logger := dslog.NewDefaultLogger(dslog.LevelDebug, &buf)

	logger.Info("reduced graph", dslog.F("nodes", 5), dslog.F("edges", 7))

	line := buf.String()
	require.True(strings.Contains(line, "nodes=5"))
	require.True(strings.Contains(line, "edges=7"))
}

func TestWithCarriesFieldsForward(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	base := dslog.NewDefaultLogger(dslog.LevelDebug, &buf)
	scoped := base.With(dslog.F("component", 0))

	scoped.Info("solved")

	require.Contains(buf.String(), "component=0")
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	base := dslog.NewDefaultLogger(dslog.LevelDebug, &buf)
	_ = base.With(dslog.F("component", 0))

	base.Info("plain")

	require.NotContains(buf.String(), "component=0")
}

func TestNopDiscardsEverything(t *testing.T) {
	require := require.New(t)
	logger := dslog.NewNop()
	// Must not panic, and With must return a usable no-op logger too.
	logger.With(dslog.F("x", 1)).Error("ignored")
	require.NotNil(logger)
}
