package fontdiff

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/fontdiff/ankr"
	"github.com/npillmayer/fontdiff/capability"
	"github.com/npillmayer/fontdiff/otjson"
	"github.com/npillmayer/fontdiff/shape"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
)

// --- Fixtures --------------------------------------------------------------

func writeFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// ankrTable builds an 'ankr' table with a single glyph range. Every glyph of
// the range gets the anchors in points.
func ankrTable(format, first, last uint16, points [][2]int16) []byte {
	lookup := make([]byte, 12)
	binary.BigEndian.PutUint16(lookup[0:], format)
	binary.BigEndian.PutUint16(lookup[2:], 6)
	binary.BigEndian.PutUint16(lookup[4:], 2)
	lookup = binary.BigEndian.AppendUint16(lookup, last)
	lookup = binary.BigEndian.AppendUint16(lookup, first)
	lookup = binary.BigEndian.AppendUint16(lookup, 0)
	lookup = append(lookup, 0xff, 0xff, 0xff, 0xff, 0, 0)
	var data []byte
	for gid := first; gid <= last; gid++ {
		data = binary.BigEndian.AppendUint32(data, uint32(len(points)))
		for _, p := range points {
			data = binary.BigEndian.AppendUint16(data, uint16(p[0]))
			data = binary.BigEndian.AppendUint16(data, uint16(p[1]))
		}
	}
	header := make([]byte, 12)
	binary.BigEndian.PutUint32(header[4:], 12)
	binary.BigEndian.PutUint32(header[8:], uint32(12+len(lookup)))
	return append(append(header, lookup...), data...)
}

type namer map[uint16]string

func (n namer) GlyphName(gid uint16) string { return n[gid] }

func gposFont(t *testing.T, base, mark string) *otjson.Font {
	t.Helper()
	js := fmt.Sprintf(`{
	  "head": { "unitsPerEm": 2048 },
	  "GPOS": {
	    "languages": { "latn_DFLT": {}, "deva_MAR ": {} },
	    "lookups": { "mark_0": { "type": "gpos_mark_to_base", "subtables": [ {
	      "marks": { %q: { "class": "top", "x": 0, "y": 1536 } },
	      "bases": { %q: { "top": { "x": 512, "y": 1024 } } }
	    } ] } },
	    "lookupOrder": ["mark_0"]
	  }
	}`, mark, base)
	f, err := otjson.Parse([]byte(js))
	require.NoError(t, err)
	return f
}

type introspectorFunc func(ctx context.Context, path string) (*otjson.Font, error)

func (fn introspectorFunc) Introspect(ctx context.Context, path string) (*otjson.Font, error) {
	return fn(ctx, path)
}

// --- Tests -----------------------------------------------------------------

func TestScale(t *testing.T) {
	assert.InDelta(t, 10.6667, Scale(2048, DefaultFontSize), 0.0001)
	assert.Equal(t, Scale(1000, DefaultFontSize), Scale(1000, 0))
	assert.Equal(t, 10.0, Scale(1000, 100))
}

func TestAnchorSourceAnkr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	in := AnchorInputs{
		HasMorx:       true,
		HasKerx:       true,
		Ankr:          ankrTable(4, 3, 3, [][2]int16{{100, 200}}),
		Names:         namer{3: "acutecomb"},
		Introspection: gposFont(t, "a", "gravecomb"),
		Scale:         2,
	}
	src, tab, err := SelectAnchorSource(in)
	require.NoError(t, err)
	assert.Equal(t, SourceAnkr, src)
	assert.Equal(t, "(50,100)", fmt.Sprint(tab.Points("acutecomb")[0]))
	assert.False(t, tab.Has("a"), "ankr and GPOS are never merged")
}

func TestAnchorSourceAnkrWithoutAnchors(t *testing.T) {
	in := AnchorInputs{
		HasMorx:       true,
		HasKerx:       true,
		Ankr:          ankrTable(4, 3, 4, nil),
		Introspection: gposFont(t, "a", "acutecomb"),
		Scale:         1,
	}
	src, tab, err := SelectAnchorSource(in)
	require.NoError(t, err)
	assert.Equal(t, SourceAnkr, src)
	assert.False(t, tab.Has("a"))
	assert.Equal(t, 2, tab.Len(), "glyphs are declared even without points")
}

func TestAnchorSourceFallsBackToGPOS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	intro := gposFont(t, "a", "acutecomb")
	// not an AAT font: 'ankr' is ignored
	src, tab, err := SelectAnchorSource(AnchorInputs{
		HasMorx: true, Ankr: ankrTable(4, 3, 3, [][2]int16{{1, 1}}), Introspection: intro, Scale: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceGPOS, src)
	assert.True(t, tab.Has("a"))
	// unsupported lookup format
	src, tab, err = SelectAnchorSource(AnchorInputs{
		HasMorx: true, HasKerx: true, Ankr: ankrTable(2, 3, 3, nil), Introspection: intro, Scale: 2,
	})
	assert.Equal(t, SourceGPOS, src)
	assert.True(t, tab.Has("acutecomb"))
	var unsupported *ankr.UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
	// broken table
	data := ankrTable(4, 3, 3, [][2]int16{{1, 1}})
	src, tab, err = SelectAnchorSource(AnchorInputs{
		HasMorx: true, HasKerx: true, Ankr: data[:len(data)-2], Introspection: intro, Scale: 2,
	})
	assert.Equal(t, SourceGPOS, src)
	assert.True(t, tab.Has("a"))
	var broken *ankr.TableDecodeError
	assert.True(t, errors.As(err, &broken))
}

func TestAnchorSourceNone(t *testing.T) {
	src, tab, err := SelectAnchorSource(AnchorInputs{Scale: 1})
	assert.NoError(t, err)
	assert.Equal(t, SourceNone, src)
	require.NotNil(t, tab)
	assert.Equal(t, 0, tab.Len())
	// introspection without GPOS
	src, _, _ = SelectAnchorSource(AnchorInputs{Introspection: &otjson.Font{}, Scale: 1})
	assert.Equal(t, SourceNone, src)
	assert.Equal(t, "none", src.String())
}

func TestLoadWithoutIntrospection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	f, err := Load(writeFont(t, "regular.ttf", goregular.TTF), WithoutIntrospection())
	require.NoError(t, err)
	assert.Equal(t, "Go", f.Family())
	assert.Equal(t, 2048, f.UnitsPerEm())
	assert.Equal(t, Scale(2048, DefaultFontSize), f.Scale())
	assert.Equal(t, SourceNone, f.AnchorSource())
	assert.Empty(t, f.Diagnostics())
	assert.False(t, f.Degraded())
	assert.Empty(t, f.Scripts().Scripts, "Latin is never reported")
	assert.Nil(t, f.Introspection())
	_, err = Load(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}

func TestLoadRecordsFailingIntrospection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	failing := introspectorFunc(func(ctx context.Context, path string) (*otjson.Font, error) {
		return nil, capability.Missing("font introspection", path, exec.ErrNotFound)
	})
	f, err := Load(writeFont(t, "regular.ttf", goregular.TTF), WithIntrospector(failing))
	require.NoError(t, err)
	require.Len(t, f.Diagnostics(), 1)
	d := f.Diagnostics()[0]
	assert.Equal(t, "introspection", d.Component)
	assert.Equal(t, SeverityMajor, d.Severity)
	var missing *capability.MissingCapabilityError
	assert.True(t, errors.As(d, &missing))
	assert.True(t, f.Degraded())
	l, err := f.Layout(context.Background(), "Hi", language.Und)
	require.NoError(t, err)
	assert.Len(t, l.Glyphs, 2)
}

func TestLoadWithGPOSAnchors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	path := writeFont(t, "regular.ttf", goregular.TTF)
	plain, err := Load(path, WithoutIntrospection())
	require.NoError(t, err)
	l, err := plain.Layout(context.Background(), "a", language.Und)
	require.NoError(t, err)
	require.Len(t, l.Glyphs, 1)
	nameA := l.Glyphs[0].Name
	assert.Empty(t, l.Glyphs[0].Anchors)
	assert.NotNil(t, l.Glyphs[0].Anchors)
	//
	intro := gposFont(t, nameA, "acutecomb")
	f, err := Load(path, WithIntrospector(introspectorFunc(
		func(context.Context, string) (*otjson.Font, error) { return intro, nil })))
	require.NoError(t, err)
	assert.Equal(t, SourceGPOS, f.AnchorSource())
	assert.Equal(t, []string{"Marathi"}, f.Scripts().Languages)
	l, err = f.Layout(context.Background(), "a", language.Und)
	require.NoError(t, err)
	require.Len(t, l.Glyphs[0].Anchors, 1)
	assert.InDelta(t, 48.0, l.Glyphs[0].Anchors[0].X, 1e-9) // 512 / (2048/192)
	assert.InDelta(t, 96.0, l.Glyphs[0].Anchors[0].Y, 1e-9)
}

func TestLayoutPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.layout")
	defer teardown()
	//
	noKern, err := shape.ParseFeatures([]string{"-kern"})
	require.NoError(t, err)
	f, err := Load(writeFont(t, "regular.ttf", goregular.TTF),
		WithoutIntrospection(), WithFeatures(noKern...))
	require.NoError(t, err)
	l, err := f.Layout(context.Background(), "Hello", language.English)
	require.NoError(t, err)
	require.Len(t, l.Glyphs, 5)
	assert.Equal(t, 0.0, l.Glyphs[0].Pos.X)
	advH, ok := f.Advance(l.Glyphs[0].Name)
	require.True(t, ok)
	assert.InDelta(t, advH, l.Glyphs[1].Pos.X, 0.1)
	assert.Equal(t, l.Glyphs[2].Name, l.Glyphs[3].Name)
	assert.Equal(t, "0048", l.Glyphs[0].UnicodeLabel())
	assert.Greater(t, l.Width, l.Glyphs[4].Pos.X)
	m, err := f.Metrics()
	require.NoError(t, err)
	assert.Equal(t, DefaultFontSize, m.FontSize)
	assert.Less(t, m.CapHeight, DefaultFontSize)
}

func TestCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	path := writeFont(t, "regular.ttf", goregular.TTF)
	a, err := Load(path, WithoutIntrospection())
	require.NoError(t, err)
	b, err := Load(path, WithoutIntrospection())
	require.NoError(t, err)
	mono, err := Load(writeFont(t, "mono.ttf", gomono.TTF), WithoutIntrospection())
	require.NoError(t, err)
	ctx := context.Background()
	//
	c, err := Compare(ctx, a, b, "Hello", language.Und)
	require.NoError(t, err)
	assert.False(t, c.HasDiff(false), "same font: %v", c)
	c, err = Compare(ctx, a, mono, "Hello", language.Und)
	require.NoError(t, err)
	assert.True(t, c.Diff.WidthDiffers)
	assert.True(t, c.Diff.LayoutDiffers)
	assert.True(t, c.HasDiff(true))
	oa, ob := OutlineSources(a, mono)
	assert.Same(t, a, oa)
	assert.Same(t, mono, ob)
}

func TestReload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	path := writeFont(t, "font.ttf", goregular.TTF)
	f, err := Load(path, WithoutIntrospection())
	require.NoError(t, err)
	regularName := f.Name()
	ctx := context.Background()
	before, err := f.Layout(ctx, "mmm", language.Und)
	require.NoError(t, err)
	//
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0o644))
	require.NoError(t, f.Reload(ctx))
	assert.NotEqual(t, regularName, f.Name())
	after, err := f.Layout(ctx, "mmm", language.Und)
	require.NoError(t, err)
	assert.NotEqual(t, before.Width, after.Width)
	//
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	assert.Error(t, f.Reload(ctx))
	assert.NotEqual(t, regularName, f.Name(), "failed reload keeps the previous state")
}

func TestWatchReloadsChangedFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	path := writeFont(t, "font.ttf", gomono.TTF)
	f, err := Load(path, WithoutIntrospection(), WithWatchDelay(20*time.Millisecond))
	require.NoError(t, err)
	monoName := f.Name()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := f.Watch(ctx)
	require.NoError(t, err)
	next := func() ReloadEvent {
		t.Helper()
		select {
		case ev := <-events:
			return ev
		case <-time.After(5 * time.Second):
			t.Fatal("no reload after the font file changed")
		}
		return ReloadEvent{}
	}
	//
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	ev := next()
	assert.Equal(t, path, ev.Path)
	assert.NoError(t, ev.Err)
	regularName := f.Name()
	assert.NotEqual(t, monoName, regularName)
	//
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	ev = next()
	assert.Error(t, ev.Err)
	assert.Equal(t, regularName, f.Name(), "failed reload keeps the previous state")
	//
	cancel()
	for range events { // closed when watching ends
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := writeFont(t, "font.ttf", gomono.TTF)
	f, err := Load(path, WithoutIntrospection())
	require.NoError(t, err)
	f.path = filepath.Join(t.TempDir(), "gone", "font.ttf")
	_, err = f.Watch(context.Background())
	assert.Error(t, err)
}

func TestConcurrentLayout(t *testing.T) {
	f, err := Load(writeFont(t, "regular.ttf", goregular.TTF), WithoutIntrospection())
	require.NoError(t, err)
	ctx := context.Background()
	want, err := f.Layout(ctx, "concurrency", language.Und)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.Layout(ctx, "concurrency", language.Und)
			if assert.NoError(t, err) {
				assert.Equal(t, want.String(), got.String())
			}
		}()
	}
	wg.Wait()
}

func TestHarfBuzzShaperMissing(t *testing.T) {
	if _, err := exec.LookPath("hb-shape"); err == nil {
		t.Skip("hb-shape is installed")
	}
	f, err := Load(writeFont(t, "regular.ttf", goregular.TTF),
		WithoutIntrospection(), WithShaper(ShaperHarfBuzz))
	require.NoError(t, err)
	_, err = f.Layout(context.Background(), "a", language.Und)
	var missing *capability.MissingCapabilityError
	assert.True(t, errors.As(err, &missing))
}

func TestParseShaperKind(t *testing.T) {
	k, ok := ParseShaperKind("harfbuzz")
	assert.True(t, ok)
	assert.Equal(t, ShaperHarfBuzz, k)
	_, ok = ParseShaperKind("coretext")
	assert.False(t, ok)
	assert.Equal(t, "go-text", ShaperGoText.String())
}
