/*
Package capability connects to external collaborators, such as font introspection
tools or out-of-process shapers, and defines the error they produce when they
cannot be reached.

Failing to reach an external tool is never fatal for a font comparison: clients
treat a [MissingCapabilityError] as "no data available" for the font in question.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package capability

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}

// MissingCapabilityError signals that an external collaborator could not
// deliver data, e.g., because a tool is not installed or a file is unreadable.
type MissingCapabilityError struct {
	Capability string // e.g. "font introspection", "shaping"
	Subject    string // what the capability was asked about, usually a font path
	Err        error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *MissingCapabilityError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s] unavailable for %s", e.Capability, e.Subject)
	}
	return fmt.Sprintf("[%s] unavailable for %s: %v", e.Capability, e.Subject, e.Err)
}

// Unwrap returns the underlying cause.
func (e *MissingCapabilityError) Unwrap() error {
	return e.Err
}

// Missing creates a MissingCapabilityError.
func Missing(capability, subject string, err error) error {
	return &MissingCapabilityError{Capability: capability, Subject: subject, Err: err}
}

// Tool is an external command line program.
type Tool struct {
	Capability string   // capability the tool provides, used in errors
	Command    string   // program name or path
	Args       []string // arguments preceding the per-call arguments
}

// Run executes the tool with additional arguments and returns its standard output.
// A tool which cannot be started, or which exits with non-zero status, results in
// a *MissingCapabilityError.
func (t Tool) Run(ctx context.Context, subject string, stdin []byte, args ...string) ([]byte, error) {
	path, err := exec.LookPath(t.Command)
	if err != nil {
		return nil, Missing(t.Capability, subject, err)
	}
	argv := make([]string, 0, len(t.Args)+len(args))
	argv = append(argv, t.Args...)
	argv = append(argv, args...)
	cmd := exec.CommandContext(ctx, path, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	tracer().Debugf("running %s %s", t.Command, strings.Join(argv, " "))
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, Missing(t.Capability, subject, err)
	}
	return stdout.Bytes(), nil
}
