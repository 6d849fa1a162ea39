package templates

import (
	"sort"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

// leadingColumns are shown first when present, in this order.
var leadingColumns = []string{
	"name", "experiment_name",
	"token", "experiment_token",
}

// NewExperimentTable lays out heterogeneous rows under the union of their keys.
func NewExperimentTable(exps []domain.Experiment) ExperimentTable {
	seen := map[string]bool{}
	for _, e := range exps {
		for k := range e {
			seen[k] = true
		}
	}

	var cols []string
	for _, c := range leadingColumns {
		if seen[c] {
			cols = append(cols, c)
			delete(seen, c)
		}
	}
	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	cols = append(cols, rest...)

	rows := make([][]string, 0, len(exps))
	for _, e := range exps {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = e.String(c)
		}
		rows = append(rows, row)
	}
	return ExperimentTable{Columns: cols, Rows: rows}
}

// NewToast maps a notification to its view model.
func NewToast(n domain.Notification) Toast {
	return Toast{Title: n.Title, Body: n.Body, Class: toastClass(n.Severity)}
}

func toastClass(s domain.Severity) string {
	switch s {
	case domain.SeveritySuccess:
		return "toast toast-success"
	case domain.SeverityInfo:
		return "toast toast-info"
	case domain.SeverityWarning:
		return "toast toast-warning"
	case domain.SeverityError:
		return "toast toast-error"
	}
	return "toast"
}

func columnLabel(c string) string {
	switch c {
	case "name", "experiment_name":
		return "Name"
	case "token", "experiment_token":
		return "Token"
	case "db_name":
		return "Database"
	case "db_user":
		return "User"
	case "created_at":
		return "Created"
	}
	return c
}
