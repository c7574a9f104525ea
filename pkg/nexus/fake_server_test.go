package nexus

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/coding-wepack/nexusctl/pkg/log"
)

// fakeNexus records every request path it serves so tests can assert on
// what was (and was not) requested.
type fakeNexus struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

func newFakeNexus(t *testing.T, handler http.HandlerFunc) *fakeNexus {
	t.Helper()
	f := &fakeNexus{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.RequestURI())
		f.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeNexus) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeNexus) client(t *testing.T, options ...ClientOption) *Client {
	t.Helper()
	options = append([]ClientOption{
		ClientOptLogger(log.Nop()),
		ClientOptTempDir(t.TempDir()),
	}, options...)
	c, err := NewClient(f.URL, options...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, format string, args ...interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = fmt.Fprintf(w, format, args...)
}
