package otel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

const (
	serviceName    = "srsadmin"
	serviceVersion = "1.0.0"
)

// Exporter exports console and registry metrics to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	meter         metric.Meter
	notifications metric.Int64Counter
	requests      metric.Int64Counter
	requestHist   metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

// NewExporterWithReader wires the exporter to a caller-supplied reader.
func NewExporterWithReader(reader sdkmetric.Reader) (*Exporter, error) {
	return newExporter(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	notifications, err := meter.Int64Counter(
		"srsadmin_notifications_total",
		metric.WithDescription("Toasts shown to the operator"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating notifications counter: %w", err)
	}

	requests, err := meter.Int64Counter(
		"srsadmin_admin_requests_total",
		metric.WithDescription("Admin API calls by operation and outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating requests counter: %w", err)
	}

	requestHist, err := meter.Float64Histogram(
		"srsadmin_admin_request_duration_seconds",
		metric.WithDescription("Admin API call latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request histogram: %w", err)
	}

	return &Exporter{
		provider:      provider,
		meter:         meter,
		notifications: notifications,
		requests:      requests,
		requestHist:   requestHist,
	}, nil
}

func (e *Exporter) RecordNotification(ctx context.Context, severity domain.Severity) {
	e.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("severity", severity.String()),
	))
}

func (e *Exporter) RecordRequest(ctx context.Context, operation string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	opt := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)

	e.requests.Add(ctx, 1, opt)
	e.requestHist.Record(ctx, duration.Seconds(), opt)
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
