package domain

import (
	"fmt"
	"sort"
	"time"
)

// Experiment is one row of the experiment list as returned by the admin API.
// The console treats it as display data and keeps every field it received.
type Experiment map[string]any

// Name returns the experiment name, accepting both the short and the
// registry column spelling.
func (e Experiment) Name() string {
	if v := e.String("name"); v != "" {
		return v
	}
	return e.String("experiment_name")
}

// Token returns the experiment token if the row carries one.
func (e Experiment) Token() string {
	if v := e.String("token"); v != "" {
		return v
	}
	return e.String("experiment_token")
}

// String returns the field formatted for display, or "" when absent.
func (e Experiment) String(key string) string {
	v, ok := e[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Keys returns the field names in sorted order.
func (e Experiment) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CreatedExperiment is the payload of a successful create request.
type CreatedExperiment struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Registration is a registry row: an experiment together with the
// database credentials minted for it.
type Registration struct {
	ID         string
	Name       string
	Token      string
	DBName     string
	DBUser     string
	DBPassword string
	CreatedAt  time.Time
}

// Record renders the registration as a list row. The password is omitted.
func (r *Registration) Record() Experiment {
	return Experiment{
		"experiment_name":  r.Name,
		"experiment_token": r.Token,
		"db_name":          r.DBName,
		"db_user":          r.DBUser,
		"created_at":       r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
