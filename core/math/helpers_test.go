package math

import (
	"sync"
	"testing"
)

// recorder collects call sites reported during a test.
type recorder struct {
	mu    sync.Mutex
	sites []CallSite
}

func (r *recorder) Report(site CallSite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sites = append(r.sites, site)
}

func (r *recorder) Sites() []CallSite {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]CallSite(nil), r.sites...)
}

// record installs a fresh recorder for the duration of t.
func record(t *testing.T) *recorder {
	t.Helper()
	rec := &recorder{}
	prev := SetReporter(rec)
	t.Cleanup(func() { SetReporter(prev) })
	return rec
}

// silence discards diagnostics for the duration of t.
func silence(t *testing.T) {
	t.Helper()
	prev := SetReporter(Discard)
	t.Cleanup(func() { SetReporter(prev) })
}
