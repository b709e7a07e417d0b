// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// WriteDataset writes a name_age file with one record per line and returns its path.
func WriteDataset(t *testing.T, records ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "name_age.txt")
	content := strings.Join(records, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test dataset: %v", err)
	}
	return path
}

// PredictorServer is a fake age prediction service.
// Names missing from Ages get a 200 with a null age, like agify.io does.
type PredictorServer struct {
	*httptest.Server

	mu     sync.Mutex
	ages   map[string]int
	fail   map[string]int // name -> HTTP status to return
	called map[string]int
}

// NewPredictorServer starts a fake predictor that knows ages.
// It is closed when the test ends.
func NewPredictorServer(t *testing.T, ages map[string]int) *PredictorServer {
	t.Helper()

	p := &PredictorServer{
		ages:   ages,
		fail:   make(map[string]int),
		called: make(map[string]int),
	}
	p.Server = httptest.NewServer(http.HandlerFunc(p.serve))
	t.Cleanup(p.Close)
	return p
}

// Fail makes requests for name return status.
func (p *PredictorServer) Fail(name string, status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail[name] = status
}

// Calls returns how many times name was requested.
func (p *PredictorServer) Calls(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.called[name]
}

// TotalCalls returns the number of requests served.
func (p *PredictorServer) TotalCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, n := range p.called {
		total += n
	}
	return total
}

func (p *PredictorServer) serve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	p.mu.Lock()
	p.called[name]++
	status, failing := p.fail[name]
	age, known := p.ages[name]
	p.mu.Unlock()

	if failing {
		w.WriteHeader(status)
		return
	}

	body := map[string]any{"name": name, "count": 0, "age": nil}
	if known {
		body["age"] = age
		body["count"] = 1
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
