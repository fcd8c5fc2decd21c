package logger_test

import (
	"bytes"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordered-go/containers/logger"
)

func TestConfigureLoggingWithOptionsJSON(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	result := logger.ConfigureLoggingWithOptions(logger.Options{
		JSON:     true,
		MinLevel: slog.LevelDebug,
		Output:   &buf,
	})

	result.Info("hello", "key", "value")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}

func TestConfigureLoggingDefaultsToText(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	logger.ConfigureLoggingWithOptions(logger.Options{Output: &buf})

	logger.Get().Info("text mode")

	assert.True(t, strings.Contains(buf.String(), "text mode"))
}

func TestLegacyLogPackageIsRedirectedThroughSlog(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	logger.ConfigureLoggingWithOptions(logger.Options{
		JSON:        true,
		MinLevel:    slog.LevelDebug,
		LegacyLevel: slog.LevelInfo,
		Output:      &buf,
	})

	log.Println("via legacy log package")

	assert.Contains(t, buf.String(), "via legacy log package")
}

func TestAnnotatedErrorAttributesSurfaceInLogs(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	result := logger.ConfigureLoggingWithOptions(logger.Options{
		JSON:     true,
		MinLevel: slog.LevelDebug,
		Output:   &buf,
	})

	err := logger.AnnotateError(errPrecondition, "branching_factor", 2)
	result.Error("rejected configuration", "err", err)

	assert.Contains(t, buf.String(), `"branching_factor":2`)
}

// TestSlogtIntegration demonstrates wiring a *slog.Logger to the Go testing
// framework via slogt, the pattern container package tests use when they
// want log output attributed to the failing test.
func TestSlogtIntegration(t *testing.T) {
	t.Parallel()

	log := slogt.New(t)
	log.Debug("running under slogt")
}

type preconditionError string

func (e preconditionError) Error() string { return string(e) }

var errPrecondition preconditionError = "precondition violated"
