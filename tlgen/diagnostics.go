package tlgen

import (
	"fmt"
	"strings"

	"github.com/teranos/tlgen/errors"
)

// Severity of a diagnostic; any error fails the run
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Code classifies a diagnostic
type Code string

const (
	CodeDanglingResult Code = "dangling-result" // function result type without constructors
	CodeUnknownType    Code = "unknown-type"    // parameter references an undefined type
	CodeDuplicate      Code = "duplicate"       // constructor defined twice
)

// Diagnostic is a schema problem found while building
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Definition string // schema name of the offending definition
	Message    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Definition, d.Message)
}

// Diagnostics collects the diagnostics of one run in discovery order
type Diagnostics []Diagnostic

func (ds *Diagnostics) add(sev Severity, code Code, def, format string, args ...interface{}) {
	*ds = append(*ds, Diagnostic{
		Severity:   sev,
		Code:       code,
		Definition: def,
		Message:    fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any diagnostic is an error
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Warnings returns only the warnings
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Err combines every error diagnostic into one error marked with
// ErrSchemaInconsistency, or returns nil when there are none
func (ds Diagnostics) Err() error {
	var msgs []string
	for _, d := range ds {
		if d.Severity == SeverityError {
			msgs = append(msgs, d.Definition+": "+d.Message)
		}
	}
	if len(msgs) == 0 {
		return nil
	}

	noun := "error"
	if len(msgs) > 1 {
		noun = "errors"
	}
	err := errors.Newf("%d schema %s:\n  %s", len(msgs), noun, strings.Join(msgs, "\n  "))
	err = errors.WithHint(err, "no output was written; fix the schema and regenerate")
	return errors.Mark(err, errors.ErrSchemaInconsistency)
}
