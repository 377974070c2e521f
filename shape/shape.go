/*
Package shape defines the interface to text shaping engines.

Shaping itself is not done here. Two interchangeable backends are provided in
sub-packages: gotext shapes in-process with the HarfBuzz port of
go-text/typesetting, hbshape runs HarfBuzz' hb-shape utility out of process.
Both report glyphs in font units, ready for layout.Normalize.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package shape

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/fontdiff/layout"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// tracer writes to trace with key 'fontdiff.shaper'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.shaper")
}

// Shaper turns a string into a sequence of glyphs for a font bound to the
// shaper. Output is in font units and in the order the engine emits it.
//
// Shapers must be safe for concurrent use.
type Shaper interface {
	Shape(ctx context.Context, text string, lang language.Tag) ([]layout.RawGlyph, error)
}

// ParseLanguage parses a BCP 47 language tag. An empty string yields
// language.Und, i.e. let the shaper decide.
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", s, err)
	}
	return tag, nil
}

// IsRightToLeft reports whether the first strongly directional character of
// text belongs to a right-to-left script.
func IsRightToLeft(text string) bool {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return true
		case bidi.L:
			return false
		}
	}
	return false
}

// Feature switches an OpenType feature on or off, or selects an alternate.
type Feature struct {
	Tag   string // 4 characters
	Value int    // 0 is off
}

func (f Feature) String() string {
	switch f.Value {
	case 0:
		return "-" + f.Tag
	case 1:
		return f.Tag
	}
	return f.Tag + "=" + strconv.Itoa(f.Value)
}

// ParseFeatures reads features in hb-shape notation: "liga", "+kern",
// "-calt" or "salt=2".
func ParseFeatures(spec []string) ([]Feature, error) {
	out := make([]Feature, 0, len(spec))
	for _, item := range spec {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		value := 1
		if strings.HasPrefix(item, "+") {
			item = strings.TrimPrefix(item, "+")
		} else if strings.HasPrefix(item, "-") {
			item = strings.TrimPrefix(item, "-")
			value = 0
		}
		tag, arg, hasEq := strings.Cut(item, "=")
		tag = strings.TrimSpace(tag)
		if len(tag) != 4 {
			return nil, fmt.Errorf("invalid feature tag %q", tag)
		}
		if hasEq {
			n, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid feature value %q in %q", arg, item)
			}
			value = n
		}
		out = append(out, Feature{Tag: tag, Value: value})
	}
	return out, nil
}
