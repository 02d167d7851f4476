package math

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
)

// CallSite is the source position of a call that failed.
type CallSite struct {
	Op   Op
	File string
	Line int
}

// String renders the diagnostic line emitted for a failure.
func (s CallSite) String() string {
	return fmt.Sprintf("Math error thrown at %s:%d", s.File, s.Line)
}

// Reporter receives one CallSite per failed operation. Implementations must
// be safe for concurrent use.
type Reporter interface {
	Report(site CallSite)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(site CallSite)

func (f ReporterFunc) Report(site CallSite) { f(site) }

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(CallSite) {})

// LogReporter writes diagnostics to a slog.Logger at warn level.
// A nil Logger means slog.Default().
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Report(site CallSite) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(site.String(),
		"op", string(site.Op),
		"file", site.File,
		"line", site.Line,
	)
}

type reporterHolder struct {
	r Reporter
}

var current atomic.Pointer[reporterHolder]

// SetReporter installs r as the process-wide diagnostic sink and returns the
// previous one. Passing nil restores the default LogReporter.
func SetReporter(r Reporter) Reporter {
	if r == nil {
		r = LogReporter{}
	}
	prev := current.Swap(&reporterHolder{r: r})
	if prev == nil {
		return LogReporter{}
	}
	return prev.r
}

func reporter() Reporter {
	if h := current.Load(); h != nil {
		return h.r
	}
	return LogReporter{}
}

// raise records the failure against the caller of the exported operation and
// returns the error for it. It must be called directly from the exported
// function or method so that skip 2 lands on the user's call.
func raise(op Op) error {
	site := CallSite{Op: op, File: "???"}
	if _, file, line, ok := runtime.Caller(2); ok {
		site.File = file
		site.Line = line
	}
	reporter().Report(site)
	return &Error{Op: op, Site: site}
}
