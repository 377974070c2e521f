package anchors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDeduplicates(t *testing.T) {
	b := NewBuilder()
	b.Add("acute", Point{X: 1, Y: 2})
	b.Add("acute", Point{X: 1, Y: 2})
	b.Add("acute", Point{X: 3, Y: 4})
	b.Add("a", Point{X: 0, Y: 0})
	tab := b.Table()
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, tab.Points("acute"))
	assert.Equal(t, []string{"acute", "a"}, tab.Names())
	assert.Equal(t, 2, tab.Len())
}

func TestPointsOfUnknownGlyphIsEmptyNotNil(t *testing.T) {
	tab := NewBuilder().Table()
	pts := tab.Points("nosuchglyph")
	require.NotNil(t, pts)
	assert.Empty(t, pts)
	var nilTable *Table
	require.NotNil(t, nilTable.Points("x"))
}

func TestDeclaredGlyphWithoutPoints(t *testing.T) {
	b := NewBuilder()
	b.Declare("space")
	tab := b.Table()
	assert.False(t, tab.Has("space"))
	assert.Equal(t, []string{"space"}, tab.Names())
	assert.NotNil(t, tab.Points("space"))
}

func TestTableEqual(t *testing.T) {
	mk := func() *Table {
		b := NewBuilder()
		b.Add("x", Point{1, 1})
		b.Add("y", Point{2, 2})
		return b.Table()
	}
	assert.True(t, mk().Equal(mk()))
	b := NewBuilder()
	b.Add("y", Point{2, 2})
	b.Add("x", Point{1, 1})
	assert.False(t, mk().Equal(b.Table()), "order of glyphs matters")
	assert.True(t, Empty().Equal(nil))
}
