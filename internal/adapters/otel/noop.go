package otel

import (
	"context"
	"time"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordNotification(ctx context.Context, severity domain.Severity) {}

func (e *NoOpExporter) RecordRequest(ctx context.Context, operation string, duration time.Duration, err error) {
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
