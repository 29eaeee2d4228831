// Package app assembles an instrumented parrot speed calculator from runtime
// options: a zerolog logger, a Prometheus recorder and an OpenTelemetry
// tracer wired around the pure calculation.
package app

import (
	"io"

	"github.com/agbru/parrotcalc/internal/config"
	apperrors "github.com/agbru/parrotcalc/internal/errors"
	"github.com/agbru/parrotcalc/internal/logging"
	"github.com/agbru/parrotcalc/internal/metrics"
	"github.com/agbru/parrotcalc/internal/parrot"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

// Application bundles a calculator with the observability layers built for it.
type Application struct {
	Options    config.Options
	Calculator *parrot.Calculator
	// Metrics is nil when Options.MetricsNamespace is empty.
	Metrics *metrics.SpeedMetrics
	Logger  logging.Logger

	extraObservers []parrot.SpeedObserver
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the zerolog logger built from Options.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithObserver adds an observer notified alongside the metrics recorder.
func WithObserver(o parrot.SpeedObserver) AppOption {
	return func(a *Application) { a.extraObservers = append(a.extraObservers, o) }
}

// New validates opts and builds an Application whose logs go to logOut.
func New(opts config.Options, logOut io.Writer, appOpts ...AppOption) (*Application, error) {
	if err := opts.Validate(); err != nil {
		return nil, apperrors.WrapError(err, "invalid options")
	}

	a := &Application{Options: opts}
	for _, opt := range appOpts {
		opt(a)
	}

	if a.Logger == nil {
		level, err := config.ParseLogLevel(opts.LogLevel)
		if err != nil {
			return nil, err
		}
		zl := zerolog.New(logOut).Level(level).With().Timestamp().Str("component", opts.Component).Logger()
		a.Logger = logging.NewZerologAdapter(zl)
	}

	observers := parrot.MultiObserver{}
	if opts.MetricsNamespace != "" {
		a.Metrics = metrics.NewSpeedMetrics(opts.MetricsNamespace)
		observers = append(observers, a.Metrics)
	}
	observers = append(observers, a.extraObservers...)

	calcOpts := []parrot.Option{
		parrot.WithLogger(a.Logger),
		parrot.WithObserver(observers),
	}
	if opts.Tracing {
		calcOpts = append(calcOpts, parrot.WithTracer(otel.Tracer(parrot.TracerName)))
	}
	a.Calculator = parrot.NewCalculator(calcOpts...)

	a.Logger.Debug("parrot calculator ready",
		logging.String("metrics_namespace", opts.MetricsNamespace),
		logging.Bool("tracing", opts.Tracing),
	)
	return a, nil
}
