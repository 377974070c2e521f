/*
Package layout turns raw shaping output into a canonical layout and compares
canonical layouts of two fonts.

Shaping backends differ in how they report glyphs: some return glyph IDs,
others glyph names, and their floating point results diverge in the fourth
decimal for purely numeric reasons. Normalize resolves every glyph to ID, name
and Unicode value, positions glyphs on a pen line and rounds positions to three
decimal places right away. Comparison is then a matter of index-aligned
equality with a small tolerance.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/fontdiff/anchors"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff.layout'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.layout")
}

// MissingGlyph is the glyph ID shaping engines report for characters the
// font cannot display.
const MissingGlyph = 0xFFFF

// MissingGlyphName is the label of a normalized missing glyph.
const MissingGlyphName = "DEL"

// RawGlyph is one record of shaping output, in font units. A backend reports
// either a glyph ID (HasGID is set) or a glyph name, or both.
type RawGlyph struct {
	GID      uint16
	HasGID   bool
	Name     string
	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64
	Cluster  int
}

// Resolver maps between glyph IDs, glyph names and code points of a font.
type Resolver interface {
	GlyphName(gid uint16) string
	GlyphID(name string) (uint16, bool)
	Unicode(gid uint16) (rune, bool)
}

// GlyphRecord is a positioned glyph of a canonical layout.
type GlyphRecord struct {
	GID     uint16
	Name    string
	Unicode rune // 0 if the glyph is not mapped from a code point
	Pos     anchors.Point
	Anchors []anchors.Point // never nil
}

// UnicodeLabel returns the glyph's code point as a 4-digit hex string, or ""
// for unmapped glyphs.
func (g GlyphRecord) UnicodeLabel() string {
	return UnicodeLabel(g.Unicode)
}

// UnicodeLabel formats a code point the way glyph tables show it, e.g.
// "0915". Zero yields the empty string.
func UnicodeLabel(r rune) string {
	if r == 0 {
		return ""
	}
	return fmt.Sprintf("%04X", r)
}

// CanonicalLayout is the normalized result of shaping a string with a font.
// Glyphs are in the order the shaper emitted them.
type CanonicalLayout struct {
	Glyphs []GlyphRecord
	Width  float64
}

// Names returns the glyph names of the layout, in order.
func (l *CanonicalLayout) Names() []string {
	if l == nil {
		return nil
	}
	names := make([]string, len(l.Glyphs))
	for i, g := range l.Glyphs {
		names[i] = g.Name
	}
	return names
}

func (l *CanonicalLayout) String() string {
	if l == nil {
		return "<no layout>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "width=%g", l.Width)
	for _, g := range l.Glyphs {
		fmt.Fprintf(&b, " %s@%v", g.Name, g.Pos)
	}
	return b.String()
}

// Round3 rounds to 3 decimal places. Rounding an already rounded value does
// not change it.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Normalize creates a canonical layout from raw shaping output. Coordinates
// are divided by scale, then rounded. Each glyph's x position is the pen
// position plus its x offset; the pen advances by the rounded x advance, and
// the final pen position is the layout's width.
//
// A missing-glyph record is normalized to glyph 0, labelled MissingGlyphName,
// at the origin; it does not advance the pen. Anchors are looked up by glyph
// name in anchorTab, which may be nil.
func Normalize(raw []RawGlyph, res Resolver, anchorTab *anchors.Table, scale float64) *CanonicalLayout {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		tracer().Errorf("invalid layout scale %g, using 1", scale)
		scale = 1
	}
	l := &CanonicalLayout{Glyphs: make([]GlyphRecord, 0, len(raw))}
	var penX, penY float64
	for i, g := range raw {
		gid, name := resolve(g, res)
		if gid == MissingGlyph {
			tracer().Debugf("glyph #%d is missing from font", i)
			l.Glyphs = append(l.Glyphs, GlyphRecord{
				Name:    MissingGlyphName,
				Anchors: []anchors.Point{},
			})
			continue
		}
		rec := GlyphRecord{
			GID:  gid,
			Name: name,
			Pos: anchors.Point{
				X: Round3(penX + g.XOffset/scale),
				Y: Round3(penY + g.YOffset/scale),
			},
			Anchors: append([]anchors.Point{}, anchorTab.Points(name)...),
		}
		if res != nil {
			if r, ok := res.Unicode(gid); ok {
				rec.Unicode = r
			}
		}
		l.Glyphs = append(l.Glyphs, rec)
		penX = Round3(penX + Round3(g.XAdvance/scale))
		penY = Round3(penY + Round3(g.YAdvance/scale))
	}
	l.Width = penX
	return l
}

func resolve(g RawGlyph, res Resolver) (uint16, string) {
	gid, name := g.GID, g.Name
	if !g.HasGID {
		gid = 0
		if res != nil && name != "" {
			if id, ok := res.GlyphID(name); ok {
				gid = id
			} else {
				tracer().Infof("shaper reported unknown glyph name %q", name)
			}
		}
	}
	if gid != MissingGlyph && name == "" && res != nil {
		name = res.GlyphName(gid)
	}
	return gid, name
}
