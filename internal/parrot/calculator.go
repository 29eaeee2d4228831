package parrot

import (
	"context"
	"time"

	"github.com/agbru/parrotcalc/internal/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope used for spans.
const TracerName = "github.com/agbru/parrotcalc/internal/parrot"

// Calculator computes speeds through Speed while logging, tracing and
// notifying an observer. It holds no mutable state and is safe for
// concurrent use when its observer is.
type Calculator struct {
	logger   logging.Logger
	observer SpeedObserver
	tracer   trace.Tracer
}

// Option configures a Calculator during construction.
type Option func(*Calculator)

// WithLogger sets the logger. Successful calculations are logged at debug
// level, failures at error level.
func WithLogger(l logging.Logger) Option {
	return func(c *Calculator) { c.logger = l }
}

// WithObserver sets the observer notified after each calculation.
func WithObserver(o SpeedObserver) Option {
	return func(c *Calculator) { c.observer = o }
}

// WithTracer sets the tracer used to open a span per calculation.
func WithTracer(t trace.Tracer) Option {
	return func(c *Calculator) { c.tracer = t }
}

// NewCalculator creates a Calculator. Without options it logs nowhere,
// observes nothing and records no spans.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNopLogger()
	}
	if c.observer == nil {
		c.observer = NoOpObserver{}
	}
	if c.tracer == nil {
		c.tracer = noop.NewTracerProvider().Tracer(TracerName)
	}
	return c
}

// Speed returns Speed(v, cfg).
func (c *Calculator) Speed(ctx context.Context, v Variant, cfg Config) (float64, error) {
	_, span := c.tracer.Start(ctx, "parrot.Speed", trace.WithAttributes(
		attribute.String("parrot.variant", v.String()),
	))
	defer span.End()

	start := time.Now()
	speed, err := Speed(v, cfg)
	elapsed := time.Since(start)
	c.observer.Observe(v, speed, elapsed, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("parrot speed failed", err, logging.String("variant", v.String()))
		return 0, err
	}

	span.SetAttributes(attribute.Float64("parrot.speed", speed))
	c.logger.Debug("parrot speed computed",
		logging.String("variant", v.String()),
		logging.Uint64("coconuts", uint64(cfg.NumberOfCoconuts)),
		logging.Float64("voltage", cfg.Voltage),
		logging.Bool("nailed", cfg.Nailed),
		logging.Float64("speed", speed),
	)
	return speed, nil
}

// SpeedOf returns the speed of p.
func (c *Calculator) SpeedOf(ctx context.Context, p Parrot) (float64, error) {
	return c.Speed(ctx, p.variant, p.config)
}

// SpeedByName resolves name with ParseVariant and computes its speed. An
// unrecognised name is logged, observed with the zero Variant and returned
// as an apperrors.UnknownVariantError.
func (c *Calculator) SpeedByName(ctx context.Context, name string, cfg Config) (float64, error) {
	v, err := ParseVariant(name)
	if err != nil {
		c.observer.Observe(0, 0, 0, err)
		c.logger.Error("parrot variant lookup failed", err, logging.String("name", name))
		return 0, err
	}
	return c.Speed(ctx, v, cfg)
}
