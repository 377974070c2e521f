package otjson

import (
	"context"

	"github.com/npillmayer/fontdiff/capability"
)

// Introspector produces the introspection model for a font file.
type Introspector interface {
	Introspect(ctx context.Context, fontPath string) (*Font, error)
}

// CommandIntrospector runs an external dump tool which writes the font's JSON
// description to standard output.
type CommandIntrospector struct {
	Command string   // defaults to "otfccdump"
	Args    []string // defaults to "--no-bom"
}

// DefaultIntrospector uses otfccdump from the search path.
var DefaultIntrospector Introspector = CommandIntrospector{}

// Introspect implements [Introspector]. Any failure, including unparsable output,
// is reported as a *capability.MissingCapabilityError.
func (ci CommandIntrospector) Introspect(ctx context.Context, fontPath string) (*Font, error) {
	tool := capability.Tool{
		Capability: "font introspection",
		Command:    ci.Command,
		Args:       ci.Args,
	}
	if tool.Command == "" {
		tool.Command = "otfccdump"
		if tool.Args == nil {
			tool.Args = []string{"--no-bom"}
		}
	}
	out, err := tool.Run(ctx, fontPath, nil, fontPath)
	if err != nil {
		return nil, err
	}
	f, err := Parse(out)
	if err != nil {
		return nil, capability.Missing(tool.Capability, fontPath, err)
	}
	tracer().Debugf("introspected %s: %d bytes of JSON", fontPath, len(out))
	return f, nil
}
