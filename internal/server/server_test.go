package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"agelookup/internal/config"
	"agelookup/internal/dataset"
	"agelookup/internal/predictor"
	"agelookup/internal/resolver"
	"agelookup/internal/testutil"
	"agelookup/internal/tracker"
)

func newTestServer(t *testing.T, metricsEnabled bool) *Server {
	t.Helper()

	remote := testutil.NewPredictorServer(t, map[string]int{"eve": 38})
	cfg := &config.Config{
		Env:              "test",
		PredictorURL:     remote.URL + "/",
		PredictorTimeout: 2 * time.Second,
		CORSOrigins:      "http://localhost:4200",
		MetricsEnabled:   metricsEnabled,
		ViewsDir:         "../../views",
		StaticDir:        "../../static",
	}

	client, err := predictor.New(cfg.PredictorURL, cfg.PredictorTimeout)
	if err != nil {
		t.Fatalf("predictor.New() error = %v", err)
	}

	ds := dataset.New(testutil.WriteDataset(t, "bob_45"))
	tr := tracker.New()

	s := New(cfg)
	s.RegisterRoutes(ds, resolver.New(ds, client, tr), tr)
	return s
}

func do(t *testing.T, s *Server, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, false)

	tests := []struct {
		target string
		status int
		body   string
	}{
		{"/?name=bob", fiber.StatusOK, `{"name":"bob","age":"45"}`},
		{"/?name=eve", fiber.StatusOK, `{"name":"eve","age":"38"}`},
		{"/?name=zed", fiber.StatusBadRequest, ``},
		{"/stats", fiber.StatusOK, `{"Bob":1,"Eve":1,"Zed":1}`},
		{"/max-age-name", fiber.StatusOK, `{"age":45}`},
		{"/healthz", fiber.StatusOK, `{"status":"ok"}`},
	}

	// Order matters: stats and max age observe the earlier lookups.
	for _, tt := range tests {
		resp, body := do(t, s, httptest.NewRequest(http.MethodGet, tt.target, nil))
		if resp.StatusCode != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.target, resp.StatusCode, tt.status)
		}
		if body != tt.body {
			t.Errorf("GET %s body = %s, want %s", tt.target, body, tt.body)
		}
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	s := newTestServer(t, false)

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var got map[string]string
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("body %q is not JSON: %v", body, err)
	}
	if got["error"] == "" {
		t.Errorf("body = %v, want an error message", got)
	}
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, false)

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"allowed origin", "http://localhost:4200", "http://localhost:4200"},
		{"other origin", "http://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			req.Header.Set("Origin", tt.origin)

			resp, _ := do(t, s, req)
			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, false)

	resp, _ := do(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if resp.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Error("response has no X-Request-ID header")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, true)

	do(t, s, httptest.NewRequest(http.MethodGet, "/?name=bob", nil))

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	for _, metric := range []string{"agelookup_resolutions_total", "agelookup_name_requests_total"} {
		if !strings.Contains(body, metric) {
			t.Errorf("/metrics output missing %s", metric)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	s := newTestServer(t, false)

	resp, _ := do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestUIPage(t *testing.T) {
	s := newTestServer(t, false)

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/ui?name=BOB&max=1", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}
	for _, want := range []string{"BOB", "45", "Bob"} {
		if !strings.Contains(body, want) {
			t.Errorf("UI page missing %q", want)
		}
	}

	_, stats := do(t, s, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if stats != `{"Bob":1}` {
		t.Errorf("stats after UI lookup = %s, want {\"Bob\":1}", stats)
	}
}
