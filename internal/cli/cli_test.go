package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/emiliopalmerini/srsadmin/internal/adapters/logging"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/otel"
	"github.com/emiliopalmerini/srsadmin/internal/domain"
	"github.com/emiliopalmerini/srsadmin/internal/experiments"
	"github.com/emiliopalmerini/srsadmin/internal/registry"
)

type memoryRepo struct {
	mu   sync.Mutex
	rows []*domain.Registration
}

func (m *memoryRepo) Create(_ context.Context, r *domain.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, r)
	return nil
}

func (m *memoryRepo) List(_ context.Context) ([]*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Registration(nil), m.rows...), nil
}

func testRegistry(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	registry.NewHandler(registry.NewService(&memoryRepo{}), logging.Nop(), otel.NewNoOpExporter()).RegisterRoutes(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	adminURL, logLevel, listJSON, servePort, registryPort = "", "", false, 0, 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestExperimentCreateThenList(t *testing.T) {
	ts := testRegistry(t)

	out, err := execute(t, "experiment", "create", "checkout v2", "--admin-url", ts.URL)
	if err != nil {
		t.Fatalf("create: %v\n%s", err, out)
	}
	if !strings.Contains(out, experiments.TitleCreated) {
		t.Errorf("missing success toast:\n%s", out)
	}

	out, err = execute(t, "experiment", "list", "--admin-url", ts.URL)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"NAME", "checkout v2", "sqlrest_checkout_v2"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestExperimentListJSON(t *testing.T) {
	ts := testRegistry(t)
	if _, err := execute(t, "experiment", "create", "a", "--admin-url", ts.URL); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "experiment", "list", "--json", "--admin-url", ts.URL)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 1 || rows[0]["experiment_name"] != "a" {
		t.Errorf("rows = %v", rows)
	}
}

func TestExperimentListEmpty(t *testing.T) {
	ts := testRegistry(t)

	out, err := execute(t, "experiment", "list", "--admin-url", ts.URL)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No experiments registered.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestExperimentListReportsFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer ts.Close()

	if _, err := execute(t, "experiment", "list", "--admin-url", ts.URL); err == nil {
		t.Error("expected error when the list cannot be fetched")
	}
}

func TestExperimentCreateFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database exploded", http.StatusInternalServerError)
	}))
	defer ts.Close()

	out, err := execute(t, "experiment", "create", "x", "--admin-url", ts.URL)
	if !errors.Is(err, errCreateFailed) {
		t.Fatalf("err = %v, want errCreateFailed", err)
	}
	if !strings.Contains(out, experiments.BodyCreateFailed) {
		t.Errorf("missing generic failure toast:\n%s", out)
	}
	if strings.Contains(out, "exploded") {
		t.Error("backend error leaked to output")
	}
}

func TestExperimentCreateRequiresName(t *testing.T) {
	if _, err := execute(t, "experiment", "create"); err == nil {
		t.Error("expected argument error")
	}
}

func TestRegistryMigrateUpAndDown(t *testing.T) {
	t.Setenv("SRS_REGISTRY_DATABASE_URL", "file:"+filepath.Join(t.TempDir(), "registry.db"))

	out, err := execute(t, "registry", "migrate")
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !strings.Contains(out, "version 1") {
		t.Errorf("unexpected output: %s", out)
	}

	out, err = execute(t, "registry", "migrate", "0")
	if err != nil {
		t.Fatalf("migrate 0: %v", err)
	}
	if !strings.Contains(out, "version 0") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestRegistryMigrateRejectsBadVersion(t *testing.T) {
	t.Setenv("SRS_REGISTRY_DATABASE_URL", "file:"+filepath.Join(t.TempDir(), "registry.db"))

	if _, err := execute(t, "registry", "migrate", "latest"); err == nil {
		t.Error("expected error for non-numeric version")
	}
}

func TestAppContextClose_Empty(t *testing.T) {
	a := &AppContext{}
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("Close() on empty context should not error, got: %v", err)
	}
}
