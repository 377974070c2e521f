package fontdiff

import (
	"fmt"
)

// Severity rates a diagnostic.
type Severity int

const (
	// SeverityMajor means some of the font's data is unavailable, e.g. anchors
	// or declared scripts.
	SeverityMajor Severity = iota
	// SeverityMinor means a fallback was taken without loss of data.
	SeverityMinor
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// Diagnostic is a problem encountered while loading a font. Diagnostics are
// collected during loading and can be inspected afterwards; none of them
// prevents the font from being used.
type Diagnostic struct {
	Component string   // e.g. "ankr", "introspection"
	Severity  Severity // major or minor
	Err       error    // underlying error
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[%s] %s: %v", d.Severity, d.Component, d.Err)
}

// Unwrap returns the underlying error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// diagCollector accumulates diagnostics while a font is loaded.
type diagCollector struct {
	diags []Diagnostic
}

func (dc *diagCollector) add(component string, severity Severity, err error) {
	tracer().Infof("[%s] %s: %v", severity, component, err)
	dc.diags = append(dc.diags, Diagnostic{
		Component: component,
		Severity:  severity,
		Err:       err,
	})
}

func (dc *diagCollector) hasMajor() bool {
	for _, d := range dc.diags {
		if d.Severity == SeverityMajor {
			return true
		}
	}
	return false
}
