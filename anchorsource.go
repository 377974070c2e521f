package fontdiff

import (
	"errors"

	"github.com/npillmayer/fontdiff/anchors"
	"github.com/npillmayer/fontdiff/ankr"
	"github.com/npillmayer/fontdiff/otjson"
)

// AnchorSource tells where a font's anchor points came from.
type AnchorSource int

const (
	SourceNone AnchorSource = iota // no anchor data available
	SourceAnkr                     // binary AAT table 'ankr'
	SourceGPOS                     // mark attachment lookups of GPOS
)

func (s AnchorSource) String() string {
	switch s {
	case SourceAnkr:
		return "ankr"
	case SourceGPOS:
		return "GPOS"
	}
	return "none"
}

// AnchorInputs is what a font offers for anchor extraction.
type AnchorInputs struct {
	HasMorx       bool            // font has table 'morx'
	HasKerx       bool            // font has table 'kerx'
	Ankr          []byte          // raw 'ankr' table, nil if absent
	Names         ankr.GlyphNamer // names glyph IDs of 'ankr' entries
	Introspection *otjson.Font    // nil if introspection failed or was skipped
	Scale         float64
}

// SelectAnchorSource decides which source provides a font's anchors and
// extracts them. The binary 'ankr' table is used for fonts having both
// 'morx' and 'kerx'. If it is absent or cannot be decoded, or the font is not
// an AAT font, anchors are collected from GPOS. A decodable 'ankr' table
// without any anchors stays the active source; it is never merged with GPOS.
//
// Decoding problems are returned as well, for diagnostics. The returned table
// is never nil.
func SelectAnchorSource(in AnchorInputs) (AnchorSource, *anchors.Table, error) {
	var decodeErr error
	if in.HasMorx && in.HasKerx && in.Ankr != nil {
		t, err := ankr.Decode(in.Ankr, in.Scale, in.Names)
		if err == nil {
			tracer().Debugf("anchors from 'ankr': %d glyphs", t.Len())
			return SourceAnkr, t, nil
		}
		var unsupported *ankr.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			tracer().Infof("'ankr' table not usable: %v", err)
		} else {
			tracer().Errorf("'ankr' table broken: %v", err)
		}
		decodeErr = err
	}
	if in.Introspection != nil && in.Introspection.GPOS != nil {
		t := otjson.CollectAnchors(in.Introspection, in.Scale)
		tracer().Debugf("anchors from GPOS: %d glyphs", t.Len())
		return SourceGPOS, t, decodeErr
	}
	return SourceNone, anchors.Empty(), decodeErr
}
