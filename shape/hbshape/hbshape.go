/*
Package hbshape shapes text out of process, running HarfBuzz' hb-shape
command line utility.

hb-shape is asked for JSON output, one record per glyph:

	[{"g":"ka","cl":0,"dx":0,"dy":0,"ax":1230,"ay":0}, …]

Without a font size, hb-shape reports positions in font units. The glyph entry
"g" is a glyph name, or a glyph ID if glyph names are switched off.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package hbshape

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/fontdiff/capability"
	"github.com/npillmayer/fontdiff/layout"
	"github.com/npillmayer/fontdiff/shape"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'fontdiff.shaper'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.shaper")
}

// hbShapedGlyph is one positioned glyph from an hb-shape JSON result.
type hbShapedGlyph struct {
	G  glyphRef `json:"g"`  // glyph name or index
	Cl int      `json:"cl"` // cluster index
	DX float64  `json:"dx"` // x offset
	DY float64  `json:"dy"` // y offset
	AX float64  `json:"ax"` // x advance
	AY float64  `json:"ay"` // y advance
}

type glyphRef struct {
	name  string
	gid   uint16
	isGID bool
}

func (ref *glyphRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &ref.name)
	}
	n, err := strconv.ParseUint(string(data), 10, 32)
	if err != nil {
		return fmt.Errorf("glyph reference %s: %w", data, err)
	}
	if n > 0xFFFF {
		return fmt.Errorf("glyph reference %d out of range", n)
	}
	ref.gid, ref.isGID = uint16(n), true
	return nil
}

func (g hbShapedGlyph) raw() layout.RawGlyph {
	return layout.RawGlyph{
		GID:      g.G.gid,
		HasGID:   g.G.isGID,
		Name:     g.G.name,
		XAdvance: g.AX,
		YAdvance: g.AY,
		XOffset:  g.DX,
		YOffset:  g.DY,
		Cluster:  g.Cl,
	}
}

// Shaper shapes text for one font file with hb-shape. A Shaper holds no
// mutable state and is safe for concurrent use.
type Shaper struct {
	FontPath   string
	Tool       capability.Tool
	Features   []shape.Feature
	GlyphNames bool // ask hb-shape for glyph names instead of IDs
}

var _ shape.Shaper = (*Shaper)(nil)

// New creates a shaper running hb-shape from the search path.
func New(fontPath string, features ...shape.Feature) *Shaper {
	return &Shaper{
		FontPath: fontPath,
		Tool:     capability.Tool{Capability: "shaping", Command: "hb-shape"},
		Features: features,
	}
}

// Shape implements [shape.Shaper]. If hb-shape is not available or fails,
// a *capability.MissingCapabilityError is returned.
func (s *Shaper) Shape(ctx context.Context, text string, lang language.Tag) ([]layout.RawGlyph, error) {
	if text == "" {
		return []layout.RawGlyph{}, nil
	}
	out, err := s.Tool.Run(ctx, s.FontPath, nil, s.arguments(text, lang)...)
	if err != nil {
		return nil, err
	}
	glyphs, err := decode(out)
	if err != nil {
		return nil, capability.Missing(s.Tool.Capability, s.FontPath, err)
	}
	tracer().Debugf("hb-shape shaped %q into %d glyphs", text, len(glyphs))
	return glyphs, nil
}

func (s *Shaper) arguments(text string, lang language.Tag) []string {
	args := []string{
		s.FontPath,
		"--output-format=json",
		"--unicodes=" + unicodes(text),
	}
	if !s.GlyphNames {
		args = append(args, "--no-glyph-names")
	}
	if lang != language.Und {
		args = append(args, "--language="+lang.String())
	}
	if shape.IsRightToLeft(text) {
		args = append(args, "--direction=rtl")
	}
	if len(s.Features) > 0 {
		fs := make([]string, len(s.Features))
		for i, f := range s.Features {
			fs[i] = f.String()
		}
		args = append(args, "--features="+strings.Join(fs, ","))
	}
	return args
}

// Code points are passed in hex, so the text needs no quoting and may
// contain line breaks.
func unicodes(text string) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "U+%04X", r)
	}
	return b.String()
}

// hb-shape writes one JSON array per line of input.
func decode(out []byte) ([]layout.RawGlyph, error) {
	dec := json.NewDecoder(bytes.NewReader(out))
	glyphs := []layout.RawGlyph{}
	for {
		var line []hbShapedGlyph
		err := dec.Decode(&line)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("hb-shape output: %w", err)
		}
		for _, g := range line {
			glyphs = append(glyphs, g.raw())
		}
	}
	return glyphs, nil
}
