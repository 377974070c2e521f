/*
Package gotext shapes text in-process, using the HarfBuzz port of
go-text/typesetting.

Text is shaped at a size of one em per font unit, so advances and offsets come
out in font units without any further scaling.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package gotext

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	gtlang "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/npillmayer/fontdiff/layout"
	"github.com/npillmayer/fontdiff/shape"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'fontdiff.shaper'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.shaper")
}

// HarfbuzzShaper carries a buffer and must not be shared between goroutines.
var shapers = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shaper shapes text with one font. It is safe for concurrent use: the parsed
// font is read-only, faces are created per call.
type Shaper struct {
	font     *font.Font
	upem     uint16
	features []shaping.FontFeature
}

var _ shape.Shaper = (*Shaper)(nil)

// New parses a font file's bytes and creates a shaper for it.
func New(data []byte, features ...shape.Feature) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("go-text cannot parse font: %w", err)
	}
	s := &Shaper{font: face.Font, upem: face.Upem()}
	if s.upem == 0 {
		return nil, fmt.Errorf("font has no units per em")
	}
	for _, f := range features {
		if len(f.Tag) != 4 {
			return nil, fmt.Errorf("invalid feature tag %q", f.Tag)
		}
		s.features = append(s.features, shaping.FontFeature{
			Tag:   opentype.MustNewTag(f.Tag),
			Value: uint32(f.Value),
		})
	}
	return s, nil
}

// Shape implements [shape.Shaper].
func (s *Shaper) Shape(ctx context.Context, text string, lang language.Tag) ([]layout.RawGlyph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return []layout.RawGlyph{}, nil
	}
	dir := di.DirectionLTR
	if shape.IsRightToLeft(text) {
		dir = di.DirectionRTL
	}
	var gl gtlang.Language
	if lang != language.Und {
		gl = gtlang.NewLanguage(lang.String())
	}
	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    dir,
		Face:         font.NewFace(s.font),
		Size:         fixed.I(int(s.upem)),
		Script:       detectScript(runes),
		Language:     gl,
		FontFeatures: s.features,
	}
	hb := shapers.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shapers.Put(hb)
	tracer().Debugf("go-text shaped %d runes into %d glyphs", len(runes), len(output.Glyphs))
	return convertGlyphs(output.Glyphs, dir), nil
}

// Script of the first letter or mark. Mixed-script text is shaped as a single
// run.
func detectScript(runes []rune) gtlang.Script {
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsMark(r) {
			return gtlang.LookupScript(r)
		}
	}
	return gtlang.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func convertGlyphs(glyphs []shaping.Glyph, dir di.Direction) []layout.RawGlyph {
	raw := make([]layout.RawGlyph, len(glyphs))
	for i, g := range glyphs {
		raw[i] = layout.RawGlyph{
			GID:     uint16(g.GlyphID),
			HasGID:  true,
			XOffset: fixedToFloat(g.XOffset),
			YOffset: fixedToFloat(g.YOffset),
			Cluster: g.TextIndex(),
		}
		if dir.IsVertical() {
			raw[i].YAdvance = fixedToFloat(g.Advance)
		} else {
			raw[i].XAdvance = fixedToFloat(g.Advance)
		}
	}
	return raw
}
