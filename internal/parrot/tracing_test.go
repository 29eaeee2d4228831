package parrot_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	apperrors "github.com/agbru/parrotcalc/internal/errors"
	"github.com/agbru/parrotcalc/internal/parrot"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// recordedSpan keeps what the calculator writes to a span.
type recordedSpan struct {
	noop.Span
	name   string
	attrs  []attribute.KeyValue
	errs   []error
	status codes.Code
	ended  bool
}

func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) { s.attrs = append(s.attrs, kv...) }

func (s *recordedSpan) RecordError(err error, _ ...trace.EventOption) { s.errs = append(s.errs, err) }

func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordedSpan) End(...trace.SpanEndOption) { s.ended = true }

func (s *recordedSpan) attr(key attribute.Key) (attribute.Value, bool) {
	for _, kv := range s.attrs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

// recordingTracer hands out recordedSpans and remembers them in start order.
type recordingTracer struct {
	noop.Tracer
	mu    sync.Mutex
	spans []*recordedSpan
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordedSpan{name: name, attrs: append([]attribute.KeyValue(nil), cfg.Attributes()...)}
	r.mu.Lock()
	r.spans = append(r.spans, s)
	r.mu.Unlock()
	return trace.ContextWithSpan(ctx, s), s
}

func TestCalculator_Tracing(t *testing.T) {
	t.Parallel()
	tracer := &recordingTracer{}
	calc := parrot.NewCalculator(parrot.WithTracer(tracer))
	ctx := context.Background()

	if _, err := calc.Speed(ctx, parrot.NorwegianBlue, parrot.Config{Voltage: 1.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := calc.Speed(ctx, parrot.Variant(7), parrot.Config{}); !errors.Is(err, apperrors.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}

	if len(tracer.spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(tracer.spans))
	}

	t.Run("success span", func(t *testing.T) {
		s := tracer.spans[0]
		if s.name != "parrot.Speed" {
			t.Errorf("span name = %q, want %q", s.name, "parrot.Speed")
		}
		if v, ok := s.attr("parrot.variant"); !ok || v.AsString() != "norwegian_blue" {
			t.Errorf("parrot.variant = %v (set %v), want norwegian_blue", v.Emit(), ok)
		}
		if v, ok := s.attr("parrot.speed"); !ok || v.AsFloat64() != 18.0 {
			t.Errorf("parrot.speed = %v (set %v), want 18", v.Emit(), ok)
		}
		if s.status != codes.Unset || len(s.errs) != 0 {
			t.Errorf("success span has status %v and errors %v", s.status, s.errs)
		}
		if !s.ended {
			t.Error("span should be ended")
		}
	})

	t.Run("failure span", func(t *testing.T) {
		s := tracer.spans[1]
		if s.name != "parrot.Speed" {
			t.Errorf("span name = %q, want %q", s.name, "parrot.Speed")
		}
		if v, ok := s.attr("parrot.variant"); !ok || v.AsString() != "Variant(7)" {
			t.Errorf("parrot.variant = %v (set %v), want Variant(7)", v.Emit(), ok)
		}
		if _, ok := s.attr("parrot.speed"); ok {
			t.Error("parrot.speed should not be set on failure")
		}
		if s.status != codes.Error {
			t.Errorf("status = %v, want %v", s.status, codes.Error)
		}
		if len(s.errs) != 1 || !errors.Is(s.errs[0], apperrors.ErrUnknownVariant) {
			t.Errorf("recorded errors = %v, want one UnknownVariantError", s.errs)
		}
		if !s.ended {
			t.Error("span should be ended")
		}
	})
}
