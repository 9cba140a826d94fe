package validate

import (
	"fmt"
	"strings"
)

// Failure is one violated invariant.
type Failure struct {
	Check   string
	Details string
}

func (f Failure) String() string {
	return fmt.Sprintf("[%s] %s", f.Check, f.Details)
}

// Report accumulates every failure found during a validation pass.
type Report struct {
	Failures []Failure
}

// Add records a failure under the named check.
func (r *Report) Add(check, format string, args ...interface{}) {
	r.Failures = append(r.Failures, Failure{Check: check, Details: fmt.Sprintf(format, args...)})
}

// HasFailures reports whether any check failed.
func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}

// Summary renders a human-readable listing of every failure.
func (r *Report) Summary() string {
	if !r.HasFailures() {
		return "validation passed: no failures"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed: %d issue(s)\n", len(r.Failures))
	for i, f := range r.Failures {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, f)
	}
	return b.String()
}

// Error is the aggregate error raised when a Report has failures.
type Error struct {
	Report *Report
}

func (e *Error) Error() string {
	return e.Report.Summary()
}

// AsError returns a *Error wrapping the report if it has failures, else nil.
func (r *Report) AsError() error {
	if !r.HasFailures() {
		return nil
	}
	return &Error{Report: r}
}
