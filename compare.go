package fontdiff

import (
	"context"
	"fmt"

	"github.com/npillmayer/fontdiff/layout"
	"golang.org/x/text/language"
)

// Comparison is the result of laying out a string in two fonts.
type Comparison struct {
	Text string
	A, B *layout.CanonicalLayout
	Diff layout.LayoutDiff
}

// HasDiff is a shortcut for c.Diff.HasDiff.
func (c Comparison) HasDiff(excludeOutlines bool) bool {
	return c.Diff.HasDiff(excludeOutlines)
}

func (c Comparison) String() string {
	return fmt.Sprintf("%q: %v", c.Text, c.Diff)
}

// Compare lays out text in fonts a and b and compares the results.
func Compare(ctx context.Context, a, b *Font, text string, lang language.Tag) (Comparison, error) {
	c := Comparison{Text: text}
	var err error
	if c.A, err = a.Layout(ctx, text, lang); err != nil {
		return c, fmt.Errorf("layout with %s: %w", a.Path(), err)
	}
	if c.B, err = b.Layout(ctx, text, lang); err != nil {
		return c, fmt.Errorf("layout with %s: %w", b.Path(), err)
	}
	oa, ob := OutlineSources(a, b)
	c.Diff = layout.Diff(c.A, c.B, oa, ob)
	tracer().Debugf("compare %q: %v", text, c.Diff)
	return c, nil
}

// OutlineSources selects comparable outline descriptions for two fonts. The
// introspection outlines are used if both fonts have them, otherwise both
// fonts describe outlines from their binary glyph data.
func OutlineSources(a, b *Font) (layout.OutlineSource, layout.OutlineSource) {
	ia, ib := a.Introspection(), b.Introspection()
	if ia != nil && ib != nil && ia.Glyf != nil && ib.Glyf != nil {
		return ia, ib
	}
	return a, b
}
