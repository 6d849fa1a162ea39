package domain

import "fmt"

// Severity classifies a notification.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity maps the textual tag back to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "success":
		return SeveritySuccess, nil
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// Notification is a transient toast shown to the operator.
type Notification struct {
	Title    string
	Body     string
	Severity Severity
}
