package adminapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

type recordedRequest struct {
	op  string
	err error
}

type fakeMetrics struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeMetrics) RecordNotification(ctx context.Context, severity domain.Severity) {}

func (f *fakeMetrics) RecordRequest(ctx context.Context, operation string, duration time.Duration, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{op: operation, err: err})
}

func (f *fakeMetrics) Close(ctx context.Context) error { return nil }

func TestListExperiments_DecodesArrayInOrder(t *testing.T) {
	t.Parallel()

	var calledPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calledPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"a"},{"name":"b","db_name":"sqlrest_b"}]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	got, err := client.ListExperiments(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ListPath, calledPath)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name())
	assert.Equal(t, "b", got[1].Name())
	assert.Equal(t, "sqlrest_b", got[1].String("db_name"))
}

func TestListExperiments_EmptyArray(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	got, err := NewClient(ts.URL).ListExperiments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListExperiments_KeepsNonObjectElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []domain.Experiment
	}{
		{
			name: "strings",
			body: `["a","b"]`,
			want: []domain.Experiment{{"value": "a"}, {"value": "b"}},
		},
		{
			name: "mixed",
			body: `[{"name":"a"},"b",3,null]`,
			want: []domain.Experiment{{"name": "a"}, {"value": "b"}, {"value": float64(3)}, {"value": nil}},
		},
		{
			name: "nested array",
			body: `[[1,2]]`,
			want: []domain.Experiment{{"value": []any{float64(1), float64(2)}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			got, err := NewClient(ts.URL).ListExperiments(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListExperiments_NullBodyIsEmptyList(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer ts.Close()

	got, err := NewClient(ts.URL).ListExperiments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestListExperiments_ServerError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database unavailable"}`))
	}))
	defer ts.Close()

	metrics := &fakeMetrics{}
	_, err := NewClient(ts.URL, WithMetrics(metrics)).ListExperiments(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "database unavailable", apiErr.Message)

	require.Len(t, metrics.requests, 1)
	assert.Equal(t, opList, metrics.requests[0].op)
	assert.Error(t, metrics.requests[0].err)
}

func TestListExperiments_MalformedBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).ListExperiments(context.Background())
	assert.Error(t, err)
}

func TestListExperiments_ConnectionRefused(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewClient(url, WithTimeout(time.Second)).ListExperiments(context.Background())
	assert.Error(t, err)
}

func TestCreateExperiment_EncodesNameAndReturnsToken(t *testing.T) {
	t.Parallel()

	var gotPath, gotName, gotMethod string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotName = r.URL.Query().Get("name")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"exp 1&x","token":"tok-123"}`))
	}))
	defer ts.Close()

	metrics := &fakeMetrics{}
	created, err := NewClient(ts.URL+"/", WithMetrics(metrics)).CreateExperiment(context.Background(), "exp 1&x")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, CreatePath, gotPath)
	assert.Equal(t, "exp 1&x", gotName)
	assert.Equal(t, "tok-123", created.Token)

	require.Len(t, metrics.requests, 1)
	assert.Equal(t, opCreate, metrics.requests[0].op)
	assert.NoError(t, metrics.requests[0].err)
}

func TestCreateExperiment_Non2xx(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).CreateExperiment(context.Background(), "exp1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "boom")
}

func TestCreateExperiment_MissingToken(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"exp1"}`))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).CreateExperiment(context.Background(), "exp1")
	assert.Error(t, err)
}

func TestCreateExperiment_AcceptsCreatedStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name":"exp1","token":"t"}`))
	}))
	defer ts.Close()

	created, err := NewClient(ts.URL).CreateExperiment(context.Background(), "exp1")
	require.NoError(t, err)
	assert.Equal(t, "t", created.Token)
}

func TestClient_HonorsContextCancellation(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(ts.URL).ListExperiments(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
