package fontdiff

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/fontdiff/anchors"
	"github.com/npillmayer/fontdiff/internal/fontload"
	"github.com/npillmayer/fontdiff/layout"
	"github.com/npillmayer/fontdiff/otjson"
	"github.com/npillmayer/fontdiff/scripts"
	"github.com/npillmayer/fontdiff/shape"
	"github.com/npillmayer/fontdiff/shape/gotext"
	"github.com/npillmayer/fontdiff/shape/hbshape"
	"golang.org/x/text/language"
)

// Scale returns the divisor converting font units to points at a given font
// size. Font sizes <= 0 select DefaultFontSize.
func Scale(unitsPerEm int, fontSize float64) float64 {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	return float64(unitsPerEm) / fontSize
}

// Font is a loaded font file, ready for layout. All data derived from the
// file is replaced as a whole by Reload, so concurrent layouts always see a
// consistent state. A Font is safe for concurrent use.
type Font struct {
	path   string
	conf   config
	state  atomic.Pointer[fontState]
	reload sync.Mutex
}

type fontState struct {
	sf      *fontload.ScalableFont
	intro   *otjson.Font // nil if not available
	shaper  shape.Shaper // nil if the shaper could not be created
	source  AnchorSource
	anchors *anchors.Table
	scale   float64
	support scripts.Support
	diags   diagCollector
}

// Load loads a font file. It fails only if the file cannot be read or is not
// an OpenType font; problems with external collaborators are recorded as
// diagnostics.
func Load(path string, opts ...Option) (*Font, error) {
	return LoadContext(context.Background(), path, opts...)
}

// LoadContext is Load with a context for the external tools run during loading.
func LoadContext(ctx context.Context, path string, opts ...Option) (*Font, error) {
	f := &Font{path: path, conf: defaultConfig()}
	for _, opt := range opts {
		opt(&f.conf)
	}
	if err := f.Reload(ctx); err != nil {
		return nil, err
	}
	return f, nil
}

// Reload re-reads the font file, e.g. after it has changed on disk, and
// rebuilds every derived value. If loading fails, the previous state stays
// in place.
func (f *Font) Reload(ctx context.Context) error {
	f.reload.Lock()
	defer f.reload.Unlock()
	st, err := f.load(ctx)
	if err != nil {
		return err
	}
	f.state.Store(st)
	tracer().Infof("font %s loaded, anchors from %s", f.path, st.source)
	return nil
}

func (f *Font) load(ctx context.Context) (*fontState, error) {
	sf, err := fontload.LoadOpenTypeFont(f.path)
	if err != nil {
		return nil, err
	}
	st := &fontState{sf: sf, scale: Scale(sf.UnitsPerEm(), f.conf.fontSize)}
	if f.conf.introspector != nil {
		if st.intro, err = f.conf.introspector.Introspect(ctx, f.path); err != nil {
			st.diags.add("introspection", SeverityMajor, err)
		}
	}
	ankrTable, _ := sf.RawTable("ankr")
	in := AnchorInputs{
		HasMorx:       sf.HasTable("morx"),
		HasKerx:       sf.HasTable("kerx"),
		Ankr:          ankrTable,
		Names:         sf,
		Introspection: st.intro,
		Scale:         st.scale,
	}
	st.source, st.anchors, err = SelectAnchorSource(in)
	if err != nil {
		severity := SeverityMajor
		if st.source == SourceGPOS {
			severity = SeverityMinor
		}
		st.diags.add("ankr", severity, err)
	}
	st.support = scripts.Classify(sf.Coverage(), st.intro.LanguageKeys())
	if st.shaper, err = f.newShaper(sf); err != nil {
		st.diags.add("shaping", SeverityMajor, err)
	}
	return st, nil
}

func (f *Font) newShaper(sf *fontload.ScalableFont) (shape.Shaper, error) {
	switch f.conf.shaper {
	case ShaperHarfBuzz:
		return hbshape.New(f.path, f.conf.features...), nil
	default:
		s, err := gotext.New(sf.Binary, f.conf.features...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func (f *Font) current() *fontState {
	return f.state.Load()
}

// --- Properties ------------------------------------------------------------

// Path returns the font file's path.
func (f *Font) Path() string { return f.path }

// Name returns the full font name.
func (f *Font) Name() string { return f.current().sf.Fontname }

// Family returns the font's family name.
func (f *Font) Family() string { return f.current().sf.Family }

// Version returns the version string of the font.
func (f *Font) Version() string { return f.current().sf.Version }

// FontSize returns the nominal font size of layouts.
func (f *Font) FontSize() float64 { return f.conf.fontSize }

// Shaper returns the kind of shaper used.
func (f *Font) Shaper() ShaperKind { return f.conf.shaper }

// UnitsPerEm returns the font's design units per em.
func (f *Font) UnitsPerEm() int { return f.current().sf.UnitsPerEm() }

// Scale returns the divisor from font units to layout coordinates.
func (f *Font) Scale() float64 { return f.current().scale }

// AnchorSource tells where the font's anchors came from.
func (f *Font) AnchorSource() AnchorSource { return f.current().source }

// Anchors returns the font's active anchor table.
func (f *Font) Anchors() *anchors.Table { return f.current().anchors }

// Scripts returns the scripts and languages the font supports.
func (f *Font) Scripts() scripts.Support { return f.current().support }

// Coverage returns the code points the font maps to glyphs.
func (f *Font) Coverage() []rune { return f.current().sf.Coverage() }

// Introspection returns the font's introspection model, or nil.
func (f *Font) Introspection() *otjson.Font { return f.current().intro }

// Diagnostics returns the problems encountered while loading the font.
func (f *Font) Diagnostics() []Diagnostic {
	return append([]Diagnostic{}, f.current().diags.diags...)
}

// Degraded is true if loading the font lost data, e.g. anchors or declared
// scripts, to a failing collaborator.
func (f *Font) Degraded() bool {
	return f.current().diags.hasMajor()
}

// RawTable returns the bytes of a font table.
func (f *Font) RawTable(tag string) ([]byte, bool) {
	return f.current().sf.RawTable(tag)
}

// --- Glyphs ----------------------------------------------------------------

// GlyphName returns the name of a glyph.
func (f *Font) GlyphName(gid uint16) string { return f.current().sf.GlyphName(gid) }

// GlyphID returns the ID of a named glyph.
func (f *Font) GlyphID(name string) (uint16, bool) { return f.current().sf.GlyphID(name) }

// Unicode returns the code point a glyph is mapped from.
func (f *Font) Unicode(gid uint16) (rune, bool) { return f.current().sf.Unicode(gid) }

// GlyphNames returns the names of all glyphs, by glyph ID.
func (f *Font) GlyphNames() []string { return f.current().sf.GlyphNames() }

// Advance returns a glyph's advance width in layout coordinates.
func (f *Font) Advance(name string) (float64, bool) {
	st := f.current()
	adv, ok := st.sf.Advance(name)
	if !ok {
		return 0, false
	}
	return layout.Round3(adv / st.scale), true
}

// Outline returns a description of a glyph's outline from the binary font.
func (f *Font) Outline(name string) (string, bool) {
	return f.current().sf.Outline(name)
}

var (
	_ layout.Resolver      = (*Font)(nil)
	_ layout.OutlineSource = (*Font)(nil)
)

// Metrics are vertical font metrics at the nominal font size.
type Metrics struct {
	UnitsPerEm int
	FontSize   float64
	Ascent     float64
	Descent    float64
	LineHeight float64
	XHeight    float64
	CapHeight  float64
}

// Metrics returns the font's vertical metrics in layout coordinates.
func (f *Font) Metrics() (Metrics, error) {
	st := f.current()
	m, err := st.sf.Metrics()
	if err != nil {
		return Metrics{}, err
	}
	s := st.scale
	return Metrics{
		UnitsPerEm: m.UnitsPerEm,
		FontSize:   f.conf.fontSize,
		Ascent:     layout.Round3(m.Ascent / s),
		Descent:    layout.Round3(m.Descent / s),
		LineHeight: layout.Round3(m.LineHeight / s),
		XHeight:    layout.Round3(m.XHeight / s),
		CapHeight:  layout.Round3(m.CapHeight / s),
	}, nil
}

// --- Layout ----------------------------------------------------------------

// Layout shapes text and normalizes the result. lang may be language.Und.
func (f *Font) Layout(ctx context.Context, text string, lang language.Tag) (*layout.CanonicalLayout, error) {
	st := f.current()
	if st.shaper == nil {
		return nil, fmt.Errorf("font %s has no shaper", f.path)
	}
	raw, err := st.shaper.Shape(ctx, text, lang)
	if err != nil {
		return nil, err
	}
	return layout.Normalize(raw, st.sf, st.anchors, st.scale), nil
}
