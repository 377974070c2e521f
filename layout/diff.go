package layout

import (
	"fmt"
	"math"
)

// Tolerance is the largest difference between two positions or widths which
// still counts as equal.
const Tolerance = 0.01

// Differences are rounded like positions; otherwise 1.01-1.00 would exceed
// the tolerance.
func delta(a, b float64) float64 {
	return Round3(math.Abs(a - b))
}

// Equal reports whether two layouts place the same glyphs at the same
// positions. Glyphs are compared by index, name and Unicode value; glyph IDs
// are font-internal and do not take part. Widths are not compared either, see
// [WidthDiffers].
func Equal(a, b *CanonicalLayout) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Glyphs) != len(b.Glyphs) {
		return false
	}
	for i := range a.Glyphs {
		ga, gb := &a.Glyphs[i], &b.Glyphs[i]
		if ga.Name != gb.Name || ga.Unicode != gb.Unicode {
			return false
		}
		if delta(ga.Pos.X, gb.Pos.X) > Tolerance || delta(ga.Pos.Y, gb.Pos.Y) > Tolerance {
			return false
		}
	}
	return true
}

// WidthDiffers reports whether two advance widths differ by more than
// Tolerance.
func WidthDiffers(w1, w2 float64) bool {
	return delta(w1, w2) > Tolerance
}

// OutlineSource provides an opaque per-glyph outline description. Two glyphs
// have the same shape if their descriptions are equal. The boolean result is
// false if no outline data is available for the glyph.
type OutlineSource interface {
	Outline(glyphName string) (string, bool)
}

// OutlinesDiffer reports whether any of the named glyphs is drawn differently
// by two fonts. Glyphs lacking outline data in either font are skipped, as is
// the whole check if a source is nil.
func OutlinesDiffer(names []string, a, b OutlineSource) bool {
	if a == nil || b == nil {
		return false
	}
	for _, name := range names {
		oa, okA := a.Outline(name)
		if !okA {
			continue
		}
		ob, okB := b.Outline(name)
		if !okB {
			tracer().Debugf("no outline for glyph %q in second font, skipped", name)
			continue
		}
		if oa != ob {
			return true
		}
	}
	return false
}

// LayoutDiff classifies how two layouts of the same string differ.
type LayoutDiff struct {
	WidthDiffers   bool
	OutlineDiffers bool
	LayoutDiffers  bool
}

// Diff compares the layouts of a string in two fonts. The outline check visits
// the glyphs of layout a; outlinesA and outlinesB may be nil if a font has no
// outline data.
func Diff(a, b *CanonicalLayout, outlinesA, outlinesB OutlineSource) LayoutDiff {
	d := LayoutDiff{LayoutDiffers: !Equal(a, b)}
	if a != nil && b != nil {
		d.WidthDiffers = WidthDiffers(a.Width, b.Width)
		d.OutlineDiffers = OutlinesDiffer(a.Names(), outlinesA, outlinesB)
	}
	return d
}

// HasDiff is true if any of the flags is set. With excludeOutlines, the
// outline flag is ignored.
func (d LayoutDiff) HasDiff(excludeOutlines bool) bool {
	if d.WidthDiffers || d.LayoutDiffers {
		return true
	}
	return !excludeOutlines && d.OutlineDiffers
}

func (d LayoutDiff) String() string {
	return fmt.Sprintf("width:%v outline:%v layout:%v", d.WidthDiffers, d.OutlineDiffers, d.LayoutDiffers)
}
