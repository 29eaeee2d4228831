// Package config holds the runtime options used to assemble an instrumented
// speed calculator. Options are plain values supplied by the embedding
// program; nothing is read from files or the environment.
package config

import (
	"regexp"
	"strings"

	apperrors "github.com/agbru/parrotcalc/internal/errors"
	"github.com/rs/zerolog"
)

// Defaults applied by Default().
const (
	DefaultLogLevel         = "info"
	DefaultComponent        = "parrot"
	DefaultMetricsNamespace = "parrotcalc"
)

var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Options configures the ambient layers around the speed calculation.
type Options struct {
	// LogLevel is one of trace, debug, info, warn, error, disabled.
	LogLevel string
	// Component tags every log entry.
	Component string
	// MetricsNamespace prefixes every Prometheus metric name. Empty disables
	// metrics entirely.
	MetricsNamespace string
	// Tracing enables OpenTelemetry spans through the global tracer provider.
	Tracing bool
}

// Default returns the options used when the embedder supplies none.
func Default() Options {
	return Options{
		LogLevel:         DefaultLogLevel,
		Component:        DefaultComponent,
		MetricsNamespace: DefaultMetricsNamespace,
	}
}

// Validate checks the options, returning a ValidationError for the first
// offending field.
func (o Options) Validate() error {
	if _, err := ParseLogLevel(o.LogLevel); err != nil {
		return apperrors.ValidationError{Field: "log_level", Message: err.Error()}
	}
	if strings.TrimSpace(o.Component) == "" {
		return apperrors.ValidationError{Field: "component", Message: "must not be empty"}
	}
	if o.MetricsNamespace != "" && !metricNamePattern.MatchString(o.MetricsNamespace) {
		return apperrors.ValidationError{
			Field:   "metrics_namespace",
			Message: "must match " + metricNamePattern.String(),
		}
	}
	return nil
}

// ParseLogLevel maps a level name to a zerolog level. The empty string means
// info.
func ParseLogLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, apperrors.NewConfigError("invalid log level %q", level)
	}
	return lvl, nil
}
