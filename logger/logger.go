package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
)

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options configures the package-wide structured logger, which this module
// uses to log precondition violations (through ordered.RequireValid) before
// the resulting panic.
type Options struct {
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions configures the default slog logger used by this
// module. It returns the configured logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{Level: opts.MinLevel})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{Level: opts.MinLevel})
	}

	handler = &slogErrorLogger{inner: handler}

	result := slog.New(handler)

	slog.SetDefault(result)

	// Redirect the legacy log package (used by some third-party dependencies)
	// into slog as well.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	return result
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// ConfigureLogging configures the default logger with sane defaults (text
// output to stdout at info level) and applies any supplied options.
func ConfigureLogging(opts ...Option) *slog.Logger {
	options := Options{
		JSON:        false,
		MinLevel:    slog.LevelInfo,
		LegacyLevel: slog.LevelInfo,
		Output:      os.Stdout,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// Get returns the default logger. It exists so call sites read
// logger.Get().Debug(...) rather than reaching into log/slog directly,
// keeping the error-annotation behavior (see AnnotateError) uniformly applied.
func Get() *slog.Logger {
	return slog.Default()
}
