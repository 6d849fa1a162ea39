package notify

import (
	"context"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
	"github.com/emiliopalmerini/srsadmin/internal/ports"
)

// Fanout delivers every toast to each sink in order.
type Fanout []ports.NotificationSink

func (f Fanout) Pop(n domain.Notification) {
	for _, s := range f {
		s.Pop(n)
	}
}

// Logged logs each toast before passing it on.
type Logged struct {
	next   ports.NotificationSink
	logger ports.Logger
}

func NewLogged(next ports.NotificationSink, logger ports.Logger) *Logged {
	return &Logged{next: next, logger: logger}
}

func (l *Logged) Pop(n domain.Notification) {
	kv := []any{"title", n.Title, "severity", n.Severity.String()}
	switch n.Severity {
	case domain.SeverityError:
		l.logger.Error("notification", kv...)
	case domain.SeverityWarning, domain.SeveritySuccess:
		l.logger.Info("notification", kv...)
	case domain.SeverityInfo:
		l.logger.Debug("notification", kv...)
	}
	l.next.Pop(n)
}

// Metered counts toasts by severity before passing them on.
type Metered struct {
	next    ports.NotificationSink
	metrics ports.MetricsExporter
}

func NewMetered(next ports.NotificationSink, metrics ports.MetricsExporter) *Metered {
	return &Metered{next: next, metrics: metrics}
}

func (m *Metered) Pop(n domain.Notification) {
	m.metrics.RecordNotification(context.Background(), n.Severity)
	m.next.Pop(n)
}
