package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/golinq/linq"
)

// TraceOption customizes Traced.
type TraceOption func(*traceOptions)

type traceOptions struct {
	tracer  trace.Tracer
	metrics *Metrics
}

// WithTracer makes Traced use t instead of the global tracer.
func WithTracer(t trace.Tracer) TraceOption {
	return func(o *traceOptions) { o.tracer = t }
}

// WithMetrics records every finished traversal on m.
func WithMetrics(m *Metrics) TraceOption {
	return func(o *traceOptions) { o.metrics = m }
}

// Traced wraps r so each traversal runs inside a span named SpanTraversal,
// a child of the span in ctx. The span ends when the traversal's cursor is
// closed.
func Traced[T any](ctx context.Context, r linq.Range[T], stage string, opts ...TraceOption) linq.Range[T] {
	var o traceOptions
	for _, opt := range opts {
		opt(&o)
	}
	return linq.FromFunc(func() linq.Cursor[T] {
		tracer := o.tracer
		if tracer == nil {
			tracer = Tracer(defaultTracerName)
		}
		spanCtx, span := tracer.Start(ctx, SpanTraversal,
			trace.WithAttributes(attribute.String(AttrStage, stage)))
		return &tracedCursor[T]{
			prev:    r.Cursor(),
			ctx:     spanCtx,
			span:    span,
			metrics: o.metrics,
			stage:   stage,
			started: time.Now(),
		}
	})
}

type tracedCursor[T any] struct {
	prev     linq.Cursor[T]
	ctx      context.Context
	span     trace.Span
	metrics  *Metrics
	stage    string
	started  time.Time
	elements int
	closed   bool
}

func (c *tracedCursor[T]) Valid() bool { return c.prev.Valid() }
func (c *tracedCursor[T]) Value() T    { return c.prev.Value() }

func (c *tracedCursor[T]) Next() {
	if !c.prev.Valid() {
		return
	}
	c.elements++
	c.prev.Next()
}

func (c *tracedCursor[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.prev.Valid() {
		c.elements++
	}
	c.prev.Close()

	c.span.SetAttributes(attribute.Int(AttrElements, c.elements))
	c.span.End()
	if c.metrics != nil {
		c.metrics.RecordTraversal(c.ctx, c.stage, c.elements, time.Since(c.started))
	}
}
