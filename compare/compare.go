/*
Package compare runs bulk comparisons of two fonts: every glyph of a font
side by side with its namesake in the other font, or a list of words laid out
in both fonts.

Comparisons of large fonts or long word lists take a while, so results are
published on a channel as they are produced. Closing happens when the run is
complete or its context is cancelled. Items which fail, e.g. a word the
shaper rejects, are traced and skipped.

The second font may be nil. Items then describe the first font only and never
report differences.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package compare

import (
	"context"

	"github.com/npillmayer/fontdiff"
	"github.com/npillmayer/fontdiff/layout"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'fontdiff.compare'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.compare")
}

// DefaultMaxWords limits word runs if Options.MaxWords is unset.
const DefaultMaxWords = 1000

// Options control a bulk comparison.
type Options struct {
	UnicodesOnly    bool         // glyphs: skip glyphs not mapped from a code point
	DiffsOnly       bool         // publish items with differences only
	ExcludeOutlines bool         // outline differences do not count for DiffsOnly
	MaxWords        int          // words: maximum number of items published
	Language        language.Tag // words: shaping language
}

func (o Options) maxWords() int {
	if o.MaxWords <= 0 {
		return DefaultMaxWords
	}
	return o.MaxWords
}

type differ interface {
	HasDiff(excludeOutlines bool) bool
}

// publish sends an item unless it is filtered out. It returns false if the
// run has been cancelled.
func publish[T differ](ctx context.Context, out chan<- T, item T, diffsOnly bool, opts Options) bool {
	if diffsOnly && !item.HasDiff(opts.ExcludeOutlines) {
		return true
	}
	select {
	case out <- item:
		return true
	case <-ctx.Done():
		tracer().Infof("comparison cancelled: %v", ctx.Err())
		return false
	}
}

// --- Glyphs ----------------------------------------------------------------

// GlyphItem compares a glyph of the first font with the glyph of the same
// name in the second font. Widths are advance widths in layout coordinates.
type GlyphItem struct {
	Name     string
	Unicode  rune // 0 if not mapped from a code point
	WidthA   float64
	WidthB   float64
	MissingB bool // second font has no glyph of this name
	Diff     layout.LayoutDiff
}

// HasDiff reports whether the glyph differs between the fonts.
func (it GlyphItem) HasDiff(excludeOutlines bool) bool {
	return it.Diff.HasDiff(excludeOutlines)
}

// UnicodeLabel returns the glyph's code point as hex digits, or "".
func (it GlyphItem) UnicodeLabel() string {
	return layout.UnicodeLabel(it.Unicode)
}

// Glyphs compares the glyphs of font a, in glyph ID order, with the glyphs of
// the same names in font b. A glyph missing from b differs in width and
// outline.
func Glyphs(ctx context.Context, a, b *fontdiff.Font, opts Options) <-chan GlyphItem {
	out := make(chan GlyphItem)
	go func() {
		defer close(out)
		var oa, ob layout.OutlineSource
		if b != nil {
			oa, ob = fontdiff.OutlineSources(a, b)
		}
		names, count := a.GlyphNames(), 0
		for gid, name := range names {
			item := GlyphItem{Name: name}
			if r, ok := a.Unicode(uint16(gid)); ok {
				item.Unicode = r
			} else if opts.UnicodesOnly {
				continue
			}
			item.WidthA, _ = a.Advance(name)
			if b != nil {
				compareGlyph(&item, b, oa, ob)
			}
			if item.HasDiff(opts.ExcludeOutlines) {
				count++
			}
			if !publish(ctx, out, item, opts.DiffsOnly && b != nil, opts) {
				return
			}
		}
		tracer().Infof("compared %d glyphs, %d differ", len(names), count)
	}()
	return out
}

func compareGlyph(item *GlyphItem, b *fontdiff.Font, oa, ob layout.OutlineSource) {
	width, ok := b.Advance(item.Name)
	if !ok {
		item.MissingB = true
		item.Diff.WidthDiffers = true
		item.Diff.OutlineDiffers = true
		return
	}
	item.WidthB = width
	item.Diff.WidthDiffers = layout.WidthDiffers(item.WidthA, item.WidthB)
	item.Diff.OutlineDiffers = layout.OutlinesDiffer([]string{item.Name}, oa, ob)
}

// --- Words -----------------------------------------------------------------

// WordItem is a word laid out in both fonts. B is nil for runs with a single
// font.
type WordItem struct {
	Index int // position in the word list
	Word  string
	A, B  *layout.CanonicalLayout
	Diff  layout.LayoutDiff
}

// HasDiff reports whether the word is rendered differently by the fonts.
func (it WordItem) HasDiff(excludeOutlines bool) bool {
	return it.Diff.HasDiff(excludeOutlines)
}

// Words lays out words in fonts a and b and compares the results. At most
// opts.MaxWords items are published.
func Words(ctx context.Context, a, b *fontdiff.Font, words []string, opts Options) <-chan WordItem {
	out := make(chan WordItem)
	go func() {
		defer close(out)
		published, limit := 0, opts.maxWords()
		for i, word := range words {
			if published >= limit {
				tracer().Infof("word limit %d reached, %d words left", limit, len(words)-i)
				return
			}
			if ctx.Err() != nil {
				return
			}
			item, err := compareWord(ctx, a, b, word, opts.Language)
			if err != nil {
				tracer().Errorf("word %q skipped: %v", word, err)
				continue
			}
			item.Index = i
			diffsOnly := opts.DiffsOnly && b != nil
			if diffsOnly && !item.HasDiff(opts.ExcludeOutlines) {
				continue
			}
			if !publish(ctx, out, item, false, opts) {
				return
			}
			published++
		}
	}()
	return out
}

func compareWord(ctx context.Context, a, b *fontdiff.Font, word string, lang language.Tag) (WordItem, error) {
	if b == nil {
		l, err := a.Layout(ctx, word, lang)
		return WordItem{Word: word, A: l}, err
	}
	c, err := fontdiff.Compare(ctx, a, b, word, lang)
	if err != nil {
		return WordItem{}, err
	}
	return WordItem{Word: word, A: c.A, B: c.B, Diff: c.Diff}, nil
}
