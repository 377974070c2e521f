package fontdiff

import (
	"time"

	"github.com/npillmayer/fontdiff/otjson"
	"github.com/npillmayer/fontdiff/shape"
)

// DefaultFontSize is the nominal font size of layouts, in points.
const DefaultFontSize = 192.0

// ShaperKind selects a shaping backend.
type ShaperKind int

const (
	// ShaperGoText shapes in-process with go-text/typesetting.
	ShaperGoText ShaperKind = iota
	// ShaperHarfBuzz runs the hb-shape utility.
	ShaperHarfBuzz
)

func (k ShaperKind) String() string {
	if k == ShaperHarfBuzz {
		return "hb-shape"
	}
	return "go-text"
}

// ParseShaperKind maps "go-text"/"gotext" and "hb-shape"/"harfbuzz" to a shaper kind.
func ParseShaperKind(s string) (ShaperKind, bool) {
	switch s {
	case "go-text", "gotext", "":
		return ShaperGoText, true
	case "hb-shape", "hbshape", "harfbuzz":
		return ShaperHarfBuzz, true
	}
	return ShaperGoText, false
}

type config struct {
	fontSize     float64
	shaper       ShaperKind
	features     []shape.Feature
	introspector otjson.Introspector
	watchDelay   time.Duration
}

func defaultConfig() config {
	return config{
		fontSize:     DefaultFontSize,
		shaper:       ShaperGoText,
		introspector: otjson.DefaultIntrospector,
		watchDelay:   DefaultWatchDelay,
	}
}

// Option configures how a font is loaded.
type Option func(*config)

// WithFontSize sets the nominal font size of layouts. Sizes <= 0 are ignored.
func WithFontSize(size float64) Option {
	return func(c *config) {
		if size > 0 {
			c.fontSize = size
		}
	}
}

// WithShaper selects the shaping backend.
func WithShaper(kind ShaperKind) Option {
	return func(c *config) {
		c.shaper = kind
	}
}

// WithFeatures sets OpenType features for shaping.
func WithFeatures(features ...shape.Feature) Option {
	return func(c *config) {
		c.features = append([]shape.Feature{}, features...)
	}
}

// WithIntrospector replaces the default introspection tool (otfccdump).
func WithIntrospector(in otjson.Introspector) Option {
	return func(c *config) {
		c.introspector = in
	}
}

// WithoutIntrospection skips font introspection. The font will have no GPOS
// anchors and no declared scripts.
func WithoutIntrospection() Option {
	return func(c *config) {
		c.introspector = nil
	}
}

// WithWatchDelay sets how long a changed font file has to stay quiet before
// Watch reloads it. Delays <= 0 are ignored.
func WithWatchDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.watchDelay = d
		}
	}
}
