/*
Package fontload loads font files and answers the questions a font comparison
asks of a binary font: glyph names in both directions, the code points glyphs
are mapped from, raw table bytes, advances, outlines and font-wide metrics.

All values are in font units.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontload

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
// Glyph names and the glyph to code point map are computed once, at load
// time. A ScalableFont is safe for concurrent use.
type ScalableFont struct {
	Fontname  string
	Family    string
	Subfamily string
	Version   string
	Filepath  string
	Binary    []byte
	SFNT      *sfnt.Font
	loader    *opentype.Loader
	upem      sfnt.Units
	names     []string          // by glyph ID
	byName    map[string]uint16 // inverse of names
	unicodes  map[uint16]rune   // lowest code point mapping to a glyph
	coverage  []rune            // sorted
	buffers   sync.Pool
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.buffers.New = func() any { return &sfnt.Buffer{} }
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.loader, err = opentype.NewLoader(bytes.NewReader(f.Binary)); err != nil {
		return nil, err
	}
	buf := f.buffer()
	defer f.release(buf)
	f.Fontname, _ = f.SFNT.Name(buf, sfnt.NameIDFull)
	f.Family, _ = f.SFNT.Name(buf, sfnt.NameIDFamily)
	f.Subfamily, _ = f.SFNT.Name(buf, sfnt.NameIDSubfamily)
	f.Version, _ = f.SFNT.Name(buf, sfnt.NameIDVersion)
	f.upem = f.SFNT.UnitsPerEm()
	if f.upem == 0 {
		return nil, fmt.Errorf("font has no units per em")
	}
	f.loadGlyphNames(buf)
	if err := f.invertCMap(); err != nil {
		tracer().Errorf("font %s: cmap not readable, no code points mapped: %v", f.Fontname, err)
	}
	tracer().Debugf("loaded and parsed SFNT %s: %d glyphs, %d code points",
		f.Fontname, len(f.names), len(f.coverage))
	return f, nil
}

func (f *ScalableFont) buffer() *sfnt.Buffer {
	return f.buffers.Get().(*sfnt.Buffer)
}

func (f *ScalableFont) release(buf *sfnt.Buffer) {
	f.buffers.Put(buf)
}

// Glyphs without a name in table 'post' are named "gid<N>", which is what
// HarfBuzz calls them as well.
func (f *ScalableFont) loadGlyphNames(buf *sfnt.Buffer) {
	n := f.SFNT.NumGlyphs()
	f.names = make([]string, n)
	f.byName = make(map[string]uint16, n)
	for gid := 0; gid < n; gid++ {
		name, err := f.SFNT.GlyphName(buf, sfnt.GlyphIndex(gid))
		if err != nil || name == "" {
			name = fmt.Sprintf("gid%d", gid)
		}
		f.names[gid] = name
		if _, dup := f.byName[name]; !dup {
			f.byName[name] = uint16(gid)
		}
	}
}

// The cmap is inverted by enumerating the subtable go-text selects for
// character mapping. Code points outside the selected subtable are not seen.
func (f *ScalableFont) invertCMap() error {
	f.unicodes = make(map[uint16]rune)
	f.coverage = nil
	raw, err := f.loader.RawTable(opentype.MustNewTag("cmap"))
	if err != nil {
		return err
	}
	table, _, err := tables.ParseCmap(raw)
	if err != nil {
		return err
	}
	os2Raw, _ := f.loader.RawTable(opentype.MustNewTag("OS/2"))
	os2, _, _ := tables.ParseOs2(os2Raw)
	cmap, _, err := gtfont.ProcessCmap(table, os2.FontPage())
	if err != nil {
		return err
	}
	seen := make(map[rune]bool)
	for iter := cmap.Iter(); iter.Next(); {
		r, gid := iter.Char()
		if gid == 0 || gid > 0xFFFF || seen[r] {
			continue
		}
		seen[r] = true
		f.coverage = append(f.coverage, r)
		if u, ok := f.unicodes[uint16(gid)]; !ok || r < u {
			f.unicodes[uint16(gid)] = r
		}
	}
	sort.Slice(f.coverage, func(i, j int) bool { return f.coverage[i] < f.coverage[j] })
	return nil
}

// --- Glyph naming ----------------------------------------------------------

// NumGlyphs returns the number of glyphs in the font.
func (f *ScalableFont) NumGlyphs() int {
	return len(f.names)
}

// GlyphName returns the name of a glyph, or "" for glyph IDs out of range.
func (f *ScalableFont) GlyphName(gid uint16) string {
	if int(gid) >= len(f.names) {
		return ""
	}
	return f.names[gid]
}

// GlyphNames returns the names of all glyphs, by glyph ID.
func (f *ScalableFont) GlyphNames() []string {
	return append([]string{}, f.names...)
}

// GlyphID returns the ID of a named glyph.
func (f *ScalableFont) GlyphID(name string) (uint16, bool) {
	gid, ok := f.byName[name]
	return gid, ok
}

// Unicode returns the code point a glyph is mapped from. If several code
// points map to the glyph, the lowest one is returned.
func (f *ScalableFont) Unicode(gid uint16) (rune, bool) {
	r, ok := f.unicodes[gid]
	return r, ok
}

// Coverage returns all code points the font maps to a glyph, sorted.
func (f *ScalableFont) Coverage() []rune {
	return append([]rune{}, f.coverage...)
}

// --- Tables ----------------------------------------------------------------

// RawTable returns the bytes of a font table. The boolean result is false if
// the font has no such table.
func (f *ScalableFont) RawTable(tag string) ([]byte, bool) {
	if len(tag) != 4 {
		return nil, false
	}
	b, err := f.loader.RawTable(opentype.MustNewTag(tag))
	if err != nil {
		return nil, false
	}
	return b, true
}

// HasTable reports whether the font contains a table.
func (f *ScalableFont) HasTable(tag string) bool {
	_, ok := f.RawTable(tag)
	return ok
}

// --- Metrics and outlines --------------------------------------------------

// UnitsPerEm returns the font's design units per em.
func (f *ScalableFont) UnitsPerEm() int {
	return int(f.upem)
}

func (f *ScalableFont) ppem() fixed.Int26_6 {
	return fixed.I(int(f.upem))
}

// Advance returns the advance width of a named glyph.
func (f *ScalableFont) Advance(name string) (float64, bool) {
	gid, ok := f.byName[name]
	if !ok {
		return 0, false
	}
	buf := f.buffer()
	defer f.release(buf)
	adv, err := f.SFNT.GlyphAdvance(buf, sfnt.GlyphIndex(gid), f.ppem(), font.HintingNone)
	if err != nil {
		tracer().Errorf("advance of glyph %q: %v", name, err)
		return 0, false
	}
	return fixedToFloat(adv), true
}

// Segments returns the outline of a named glyph scaled to ppem pixels per em,
// with y growing downwards. The segments are a copy and stay valid.
func (f *ScalableFont) Segments(name string, ppem fixed.Int26_6) (sfnt.Segments, bool) {
	gid, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	buf := f.buffer()
	defer f.release(buf)
	segments, err := f.SFNT.LoadGlyph(buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		tracer().Debugf("outline of glyph %q: %v", name, err)
		return nil, false
	}
	// segments returned by LoadGlyph are invalidated by the next use of buf
	return append(sfnt.Segments(nil), segments...), true
}

// Outline returns a canonical description of a glyph's outline, for
// equality tests. Glyphs without contours have an empty description. The
// boolean result is false if the glyph does not exist or cannot be loaded.
func (f *ScalableFont) Outline(name string) (string, bool) {
	segments, ok := f.Segments(name, f.ppem())
	if !ok {
		return "", false
	}
	var b bytes.Buffer
	for _, seg := range segments {
		var n int
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.WriteByte('M')
			n = 1
		case sfnt.SegmentOpLineTo:
			b.WriteByte('L')
			n = 1
		case sfnt.SegmentOpQuadTo:
			b.WriteByte('Q')
			n = 2
		case sfnt.SegmentOpCubeTo:
			b.WriteByte('C')
			n = 3
		}
		for _, p := range seg.Args[:n] {
			fmt.Fprintf(&b, "%d,%d ", p.X, p.Y)
		}
	}
	return b.String(), true
}

// Metrics are font-wide vertical metrics, in font units. Descent is positive
// below the baseline.
type Metrics struct {
	UnitsPerEm int
	Ascent     float64
	Descent    float64
	LineHeight float64
	XHeight    float64
	CapHeight  float64
}

// Metrics returns the font's vertical metrics.
func (f *ScalableFont) Metrics() (Metrics, error) {
	buf := f.buffer()
	defer f.release(buf)
	m, err := f.SFNT.Metrics(buf, f.ppem(), font.HintingNone)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		UnitsPerEm: int(f.upem),
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
		XHeight:    fixedToFloat(m.XHeight),
		CapHeight:  fixedToFloat(m.CapHeight),
	}, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
