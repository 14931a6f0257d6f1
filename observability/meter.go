package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/golinq/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) *MeterConfig {
	return &MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP/HTTP.
// The returned provider must be shut down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricTraversalTotal    = "linq.traversal.total"
	MetricElementsTotal     = "linq.elements.total"
	MetricTraversalDuration = "linq.traversal.duration"
)

// Metrics holds the instruments recorded for traced traversals.
type Metrics struct {
	traversalTotal    metric.Int64Counter
	elementsTotal     metric.Int64Counter
	traversalDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	traversalTotal, err := meter.Int64Counter(MetricTraversalTotal,
		metric.WithDescription("Number of completed range traversals"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricTraversalTotal, err)
	}

	elementsTotal, err := meter.Int64Counter(MetricElementsTotal,
		metric.WithDescription("Number of elements read by range traversals"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElementsTotal, err)
	}

	traversalDuration, err := meter.Float64Histogram(MetricTraversalDuration,
		metric.WithDescription("Duration of range traversals in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricTraversalDuration, err)
	}

	return &Metrics{
		traversalTotal:    traversalTotal,
		elementsTotal:     elementsTotal,
		traversalDuration: traversalDuration,
	}, nil
}

// RecordTraversal records one finished traversal of the named stage.
func (m *Metrics) RecordTraversal(ctx context.Context, stage string, elements int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("stage", stage))
	m.traversalTotal.Add(ctx, 1, attrs)
	m.elementsTotal.Add(ctx, int64(elements), attrs)
	m.traversalDuration.Record(ctx, duration.Seconds(), attrs)
}
