package ports

import (
	"context"
	"time"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

// MetricsExporter exports console and registry metrics to an external observability system.
type MetricsExporter interface {
	// RecordNotification counts a toast shown to the operator.
	RecordNotification(ctx context.Context, severity domain.Severity)
	// RecordRequest records one admin API call. A nil err counts as success.
	RecordRequest(ctx context.Context, operation string, duration time.Duration, err error)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
