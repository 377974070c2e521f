/*
Package report formats comparison results as tables for terminal output.

Table builders return rows of cells, with a header row first; Table renders
them with pterm.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/fontdiff"
	"github.com/npillmayer/fontdiff/anchors"
	"github.com/npillmayer/fontdiff/compare"
	"github.com/npillmayer/fontdiff/layout"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

// Table prints rows as a table. The first row is the header.
func Table(rows [][]string) error {
	if len(rows) <= 1 {
		pterm.Info.Println("nothing to show")
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// Flag renders a difference flag.
func Flag(differs bool) string {
	if differs {
		return pterm.Red("differs")
	}
	return pterm.Green("same")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CharName returns "U+XXXX NAME" for a code point, or "" for 0.
func CharName(r rune) string {
	if r == 0 {
		return ""
	}
	return "U+" + layout.UnicodeLabel(r) + " " + runenames.Name(r)
}

func points(pts []anchors.Point) string {
	if len(pts) == 0 {
		return "-"
	}
	s := make([]string, len(pts))
	for i, p := range pts {
		s[i] = p.String()
	}
	return strings.Join(s, " ")
}

// Glyphs lists the glyph records of a layout.
func Glyphs(l *layout.CanonicalLayout) [][]string {
	rows := [][]string{{"#", "Glyph", "Character", "X", "Y", "Anchors"}}
	if l == nil {
		return rows
	}
	for i, g := range l.Glyphs {
		rows = append(rows, []string{
			strconv.Itoa(i), g.Name, CharName(g.Unicode), num(g.Pos.X), num(g.Pos.Y), points(g.Anchors),
		})
	}
	return rows
}

// SideBySide lists the glyph records of two layouts of the same text next to
// each other. Rows with differing records are marked.
func SideBySide(a, b *layout.CanonicalLayout) [][]string {
	rows := [][]string{{"#", "Glyph A", "Position A", "Glyph B", "Position B", ""}}
	n := max(len(a.Glyphs), len(b.Glyphs))
	cell := func(l *layout.CanonicalLayout, i int) (string, string, *layout.GlyphRecord) {
		if i >= len(l.Glyphs) {
			return "", "", nil
		}
		g := &l.Glyphs[i]
		return g.Name, g.Pos.String(), g
	}
	for i := 0; i < n; i++ {
		na, pa, ga := cell(a, i)
		nb, pb, gb := cell(b, i)
		mark := ""
		if ga == nil || gb == nil || !layout.Equal(single(*ga), single(*gb)) {
			mark = "*"
		}
		rows = append(rows, []string{strconv.Itoa(i), na, pa, nb, pb, mark})
	}
	rows = append(rows, []string{"", "width", num(a.Width), "width", num(b.Width), ""})
	return rows
}

func single(g layout.GlyphRecord) *layout.CanonicalLayout {
	return &layout.CanonicalLayout{Glyphs: []layout.GlyphRecord{g}}
}

// Diff summarizes a comparison.
func Diff(c fontdiff.Comparison) [][]string {
	return [][]string{
		{"Text", "Width", "Outlines", "Layout"},
		{c.Text, Flag(c.Diff.WidthDiffers), Flag(c.Diff.OutlineDiffers), Flag(c.Diff.LayoutDiffers)},
	}
}

// Fonts describes one or more loaded fonts, one column per font.
func Fonts(fonts ...*fontdiff.Font) [][]string {
	rows := [][]string{{""}}
	labels := []string{"Name", "Path", "Units per em", "Scale", "Anchors", "Scripts",
		"Languages", "Diagnostics"}
	for _, l := range labels {
		rows = append(rows, []string{l})
	}
	for i, f := range fonts {
		rows[0] = append(rows[0], fmt.Sprintf("Font %c", 'A'+i))
		support := f.Scripts()
		diags := make([]string, 0)
		for _, d := range f.Diagnostics() {
			diags = append(diags, d.Error())
		}
		values := []string{
			f.Name(),
			f.Path(),
			strconv.Itoa(f.UnitsPerEm()),
			num(layout.Round3(f.Scale())),
			fmt.Sprintf("%s (%d glyphs)", f.AnchorSource(), f.Anchors().Len()),
			strings.Join(support.Scripts, ", "),
			strings.Join(support.Languages, ", "),
			strings.Join(diags, "\n"),
		}
		for j, v := range values {
			rows[j+1] = append(rows[j+1], v)
		}
	}
	return rows
}

// GlyphItems lists the results of a glyph comparison.
func GlyphItems(items []compare.GlyphItem) [][]string {
	rows := [][]string{{"Glyph", "Character", "Width A", "Width B", "Width", "Outline"}}
	for _, it := range items {
		wb := num(it.WidthB)
		if it.MissingB {
			wb = "missing"
		}
		rows = append(rows, []string{
			it.Name, CharName(it.Unicode), num(it.WidthA), wb,
			Flag(it.Diff.WidthDiffers), Flag(it.Diff.OutlineDiffers),
		})
	}
	return rows
}

// WordItems lists the results of a word comparison.
func WordItems(items []compare.WordItem) [][]string {
	rows := [][]string{{"#", "Word", "Width A", "Width B", "Width", "Outlines", "Layout"}}
	for _, it := range items {
		wb := "-"
		if it.B != nil {
			wb = num(it.B.Width)
		}
		rows = append(rows, []string{
			strconv.Itoa(it.Index), it.Word, num(it.A.Width), wb,
			Flag(it.Diff.WidthDiffers), Flag(it.Diff.OutlineDiffers), Flag(it.Diff.LayoutDiffers),
		})
	}
	return rows
}
