package ports

import "github.com/emiliopalmerini/srsadmin/internal/domain"

// NotificationSink shows a toast to the operator. It never reports back.
type NotificationSink interface {
	Pop(n domain.Notification)
}
