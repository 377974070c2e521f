/*
Package anchors holds the anchor points of a font, keyed by glyph name.

An anchor point is a font-defined attachment coordinate used to position a mark glyph
relative to a base glyph. Anchors may come from two sources (the binary 'ankr' table
or the mark-attachment lookups of GPOS), but a font always has exactly one
active [Table] at a time.

Tables are immutable once built. A [Builder] collects points, dropping duplicates, and
hands out the finished table.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package anchors

import (
	"fmt"
	"strings"
)

// Point is an anchor coordinate, already divided by the font's scale.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Table maps glyph names to anchor points. Names and points keep the order
// of their first appearance. A Table must not be modified after it has been
// returned from [Builder.Table].
type Table struct {
	names  []string
	points map[string][]Point
}

// Empty returns a table without any anchors.
func Empty() *Table {
	return &Table{points: map[string][]Point{}}
}

// Points returns the anchor points for a glyph name.
// For glyphs without anchors, an empty (non-nil) slice is returned.
// Clients must not modify the returned slice.
func (t *Table) Points(glyphName string) []Point {
	if t == nil {
		return []Point{}
	}
	if pts, ok := t.points[glyphName]; ok {
		return pts
	}
	return []Point{}
}

// Has reports whether a glyph has at least one anchor point.
func (t *Table) Has(glyphName string) bool {
	if t == nil {
		return false
	}
	return len(t.points[glyphName]) > 0
}

// Len returns the number of glyphs with anchors.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns the glyph names in order of first appearance.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Equal reports whether two tables hold the same glyphs with the same
// points in the same order.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	for i, name := range t.Names() {
		if other.names[i] != name {
			return false
		}
		p, q := t.points[name], other.points[name]
		if len(p) != len(q) {
			return false
		}
		for j := range p {
			if p[j] != q[j] {
				return false
			}
		}
	}
	return true
}

func (t *Table) String() string {
	if t.Len() == 0 {
		return "anchors{}"
	}
	var sb strings.Builder
	sb.WriteString("anchors{")
	for i, name := range t.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(":")
		for _, p := range t.points[name] {
			sb.WriteString(p.String())
		}
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Builder ---------------------------------------------------------------

// Builder collects anchor points for a table. A Builder is not safe for
// concurrent use.
type Builder struct {
	t *Table
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{t: Empty()}
}

// Declare makes a glyph known to the table, even if no point is added for it.
// Declared glyphs without points are not counted by [Table.Has].
func (b *Builder) Declare(glyphName string) {
	if _, ok := b.t.points[glyphName]; !ok {
		b.t.names = append(b.t.names, glyphName)
		b.t.points[glyphName] = []Point{}
	}
}

// Add appends a point to a glyph's anchor list, unless the list already
// contains a point with the same coordinates.
func (b *Builder) Add(glyphName string, p Point) {
	b.Declare(glyphName)
	for _, q := range b.t.points[glyphName] {
		if q == p {
			return
		}
	}
	b.t.points[glyphName] = append(b.t.points[glyphName], p)
}

// Table finishes the build. The builder must not be used afterwards.
func (b *Builder) Table() *Table {
	t := b.t
	b.t = nil
	return t
}
