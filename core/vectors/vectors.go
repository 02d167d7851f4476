// Package vectors runs YAML-described conformance cases against the checked
// arithmetic in core/math.
package vectors

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	safemath "novamath/core/math"
)

// WantError is the expectation for a case that must fail.
const WantError = "error"

// MaxFileSize is the largest vector file Load accepts (1 MB).
const MaxFileSize = 1 << 20

// ErrFileTooLarge is reported when a vector file exceeds MaxFileSize.
var ErrFileTooLarge = errors.New("vector file exceeds maximum size")

//go:embed default.yaml
var defaultYAML []byte

// Case is a single operation and its expected outcome.
type Case struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Op   string `yaml:"op"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Want string `yaml:"want"`
}

// File is a set of cases.
type File struct {
	Cases []Case `yaml:"cases"`
}

// limitedReader fails once more than N bytes have been read.
type limitedReader struct {
	R io.Reader
	N int64 // bytes remaining, plus one
}

func (l *limitedReader) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, ErrFileTooLarge
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.R.Read(p)
	l.N -= int64(n)
	return
}

// Load decodes and validates a vector file of at most MaxFileSize bytes.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(&limitedReader{R: r, N: MaxFileSize + 1})
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode vectors: %w", err)
	}
	for i, c := range f.Cases {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i, c.Name, err)
		}
	}
	return &f, nil
}

// LoadFile reads a vector file from disk.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Load(fh)
}

// Default returns the built-in vector set.
func Default() (*File, error) {
	return Load(bytes.NewReader(defaultYAML))
}

func (c Case) validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrBadInput)
	}
	if !slices.Contains(Types, c.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrBadInput, c.Type)
	}
	if _, err := ParseOp(c.Op); err != nil {
		return err
	}
	if c.Want == "" {
		return fmt.Errorf("%w: missing want", ErrBadInput)
	}
	return nil
}

// Result is the outcome of one case.
type Result struct {
	Case Case
	Got  string
	Err  error
	Pass bool
}

// Report collects the results of a run in case order.
type Report struct {
	Results []Result
}

// Run evaluates every case in f.
func Run(f *File) Report {
	rep := Report{Results: make([]Result, 0, len(f.Cases))}
	for _, c := range f.Cases {
		rep.Results = append(rep.Results, runCase(c))
	}
	return rep
}

func runCase(c Case) Result {
	res := Result{Case: c}
	op, err := ParseOp(c.Op)
	if err == nil {
		res.Got, err = Eval(c.Type, op, c.A, c.B)
	}
	res.Err = err

	switch {
	case errors.Is(err, safemath.ErrArithmetic):
		res.Got = WantError
		res.Pass = c.Want == WantError
	case err != nil:
		res.Got = "invalid: " + err.Error()
	default:
		res.Pass = c.Want == res.Got
	}
	return res
}

// Passed returns the number of passing cases.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Pass {
			n++
		}
	}
	return n
}

// Failed returns the number of failing cases.
func (r Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// Write prints one line per case followed by a summary line.
func (r Report) Write(w io.Writer) error {
	for _, res := range r.Results {
		var err error
		if res.Pass {
			_, err = fmt.Fprintf(w, "PASS %s\n", res.Case.Name)
		} else {
			_, err = fmt.Fprintf(w, "FAIL %s: got %s, want %s\n", res.Case.Name, res.Got, res.Case.Want)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s cases, %s passed, %s failed\n",
		humanize.Comma(int64(len(r.Results))),
		humanize.Comma(int64(r.Passed())),
		humanize.Comma(int64(r.Failed())),
	)
	return err
}
