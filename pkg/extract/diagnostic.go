package extract

import (
	"fmt"

	"github.com/matzehuels/ariel/pkg/errors"
)

// Severity grades a diagnostic.
type Severity int

const (
	// SeverityWarning marks a recovered failure; the diagram was still built.
	SeverityWarning Severity = iota
	// SeverityError is reserved for failures callers choose to escalate.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic records a component failure that extraction recovered from.
type Diagnostic struct {
	Severity Severity
	// Component is the composite name, empty for non-composite problems.
	Component string
	// Path locates the failure, e.g. "graph/subgraph:login/Try".
	Path string
	Err  error
}

func (d Diagnostic) String() string {
	if d.Component == "" {
		return fmt.Sprintf("%s at %s: %v", d.Severity, d.Path, d.Err)
	}
	return fmt.Sprintf("%s in %s at %s: %v", d.Severity, d.Component, d.Path, d.Err)
}

// Code returns the error code of the diagnostic.
func (d Diagnostic) Code() errors.Code {
	return errors.GetCode(d.Err)
}

// Report is the serializable form of a diagnostic.
type Report struct {
	Severity  string `json:"severity"`
	Code      string `json:"code"`
	Component string `json:"component,omitempty"`
	Path      string `json:"path"`
	Message   string `json:"message"`
}

// Reports converts diagnostics for JSON output.
func Reports(diags []Diagnostic) []Report {
	out := make([]Report, 0, len(diags))
	for _, d := range diags {
		msg := ""
		if d.Err != nil {
			msg = d.Err.Error()
		}
		out = append(out, Report{
			Severity:  d.Severity.String(),
			Code:      string(d.Code()),
			Component: d.Component,
			Path:      d.Path,
			Message:   msg,
		})
	}
	return out
}
