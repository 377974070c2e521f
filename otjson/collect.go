package otjson

import (
	"math"
	"sort"

	"github.com/npillmayer/fontdiff/anchors"
)

// CollectAnchors extracts anchor points from the mark-to-base and mark-to-mark
// lookups of a font's GPOS table, visiting lookups in declared lookup order.
// Every coordinate is divided by scale. Marks contribute their single anchor,
// bases contribute every attachment point.
//
// Other lookup kinds are ignored. A font without GPOS yields an empty table.
func CollectAnchors(f *Font, scale float64) *anchors.Table {
	b := anchors.NewBuilder()
	if f == nil || f.GPOS == nil || !(scale > 0) || math.IsInf(scale, 0) {
		return b.Table()
	}
	for _, name := range f.GPOS.LookupOrder {
		lookup, ok := f.GPOS.Lookups[name]
		if !ok {
			tracer().Infof("GPOS lookup %q listed in lookup order but not present", name)
			continue
		}
		switch lookup.Kind {
		case KindMarkToBase, KindMarkToMark:
			for _, sub := range lookup.MarkAttach {
				collectMarkAttach(b, sub, scale)
			}
		case KindPair, KindOther:
			tracer().Debugf("GPOS lookup %q of type %s carries no anchors", name, lookup.Type)
		case KindUntyped:
			tracer().Infof("GPOS lookup %q has no type, skipped", name)
		}
	}
	t := b.Table()
	tracer().Debugf("collected GPOS anchors for %d glyphs", t.Len())
	return t
}

func collectMarkAttach(b *anchors.Builder, sub MarkAttachSubtable, scale float64) {
	for _, mark := range sortedKeys(sub.Marks) {
		b.Add(mark, scaled(sub.Marks[mark].Position, scale))
	}
	for _, base := range sortedKeys(sub.Bases) {
		points := sub.Bases[base]
		for _, class := range sortedKeys(points) {
			b.Add(base, scaled(points[class], scale))
		}
	}
}

func scaled(p Position, scale float64) anchors.Point {
	return anchors.Point{X: p.X / scale, Y: p.Y / scale}
}

// JSON objects are unordered; we sort keys to make anchor order reproducible.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
