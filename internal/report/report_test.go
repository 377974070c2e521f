package report

import (
	"strings"
	"testing"

	"github.com/npillmayer/fontdiff/anchors"
	"github.com/npillmayer/fontdiff/compare"
	"github.com/npillmayer/fontdiff/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(x2 float64) *layout.CanonicalLayout {
	return &layout.CanonicalLayout{
		Glyphs: []layout.GlyphRecord{
			{GID: 1, Name: "a", Unicode: 'a', Pos: anchors.Point{X: 0, Y: 0},
				Anchors: []anchors.Point{{X: 10, Y: 20}}},
			{GID: 2, Name: "acutecomb", Unicode: 0x0301, Pos: anchors.Point{X: x2, Y: 5},
				Anchors: []anchors.Point{}},
		},
		Width: 20,
	}
}

func TestGlyphRows(t *testing.T) {
	rows := Glyphs(sample(10))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"0", "a", "U+0061 LATIN SMALL LETTER A", "0", "0", "(10,20)"}, rows[1])
	assert.Equal(t, "U+0301 COMBINING ACUTE ACCENT", rows[2][2])
	assert.Equal(t, "-", rows[2][5])
	assert.Len(t, Glyphs(nil), 1)
}

func TestSideBySide(t *testing.T) {
	rows := SideBySide(sample(10), sample(12.5))
	require.Len(t, rows, 4)
	assert.Equal(t, "", rows[1][5])
	assert.Equal(t, "*", rows[2][5])
	assert.Equal(t, "(12.5,5)", rows[2][4])
	short := &layout.CanonicalLayout{Glyphs: sample(10).Glyphs[:1]}
	rows = SideBySide(sample(10), short)
	assert.Equal(t, "*", rows[2][5])
	assert.Equal(t, "", rows[2][3])
}

func TestItemRows(t *testing.T) {
	items := []compare.GlyphItem{
		{Name: "a", Unicode: 'a', WidthA: 10, WidthB: 10},
		{Name: "b", WidthA: 10, MissingB: true,
			Diff: layout.LayoutDiff{WidthDiffers: true, OutlineDiffers: true}},
	}
	rows := GlyphItems(items)
	require.Len(t, rows, 3)
	assert.True(t, strings.Contains(rows[1][4], "same"))
	assert.Equal(t, "missing", rows[2][3])
	assert.True(t, strings.Contains(rows[2][5], "differs"))
	//
	words := WordItems([]compare.WordItem{{Index: 3, Word: "ab", A: sample(10)}})
	require.Len(t, words, 2)
	assert.Equal(t, []string{"3", "ab", "20", "-"}, words[1][:4])
}

func TestCharName(t *testing.T) {
	assert.Equal(t, "", CharName(0))
	assert.Equal(t, "U+0915 DEVANAGARI LETTER KA", CharName(0x0915))
}
