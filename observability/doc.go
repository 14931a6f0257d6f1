// Package observability connects query traversals to OpenTelemetry.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("linqctl"))
//	defer tp.Shutdown(ctx)
//
//	adults := observability.Traced(ctx, people.Where(isAdult), "adults")
//
// Every traversal of a Traced range is one span; it ends when the cursor is
// closed and carries the number of elements read.
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("linqctl"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("linqctl"))
//	adults := observability.Traced(ctx, r, "adults", observability.WithMetrics(metrics))
package observability
