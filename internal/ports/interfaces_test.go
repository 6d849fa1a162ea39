package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/srsadmin/internal/adapters/adminapi"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/logging"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/notify"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/otel"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/turso"
	"github.com/emiliopalmerini/srsadmin/internal/experiments"
	"github.com/emiliopalmerini/srsadmin/internal/ports"
	"github.com/emiliopalmerini/srsadmin/internal/registry"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestExperimentAPIConformance(t *testing.T) {
	var _ ports.ExperimentAPI = (*adminapi.Client)(nil)
	var _ ports.ExperimentAPI = (*experiments.MockAPI)(nil)
}

func TestExperimentRepositoryConformance(t *testing.T) {
	var _ ports.ExperimentRepository = (*turso.ExperimentRepository)(nil)
	var _ ports.ExperimentRepository = (*registry.MockRepository)(nil)
}

func TestNotificationSinkConformance(t *testing.T) {
	var _ ports.NotificationSink = (*notify.Queue)(nil)
	var _ ports.NotificationSink = (*notify.Terminal)(nil)
	var _ ports.NotificationSink = (*notify.Logged)(nil)
	var _ ports.NotificationSink = (*notify.Metered)(nil)
	var _ ports.NotificationSink = notify.Fanout(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}

func TestLoggerConformance(t *testing.T) {
	var _ ports.Logger = (*logging.Logger)(nil)
}
