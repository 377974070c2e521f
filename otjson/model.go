/*
Package otjson reads the JSON description of a font produced by a font
introspection tool (otfcc's otfccdump format).

The JSON tree is decoded into a typed model: layout tables (GPOS, GSUB) with
their language systems and lookups, and per-glyph outline data. Lookups are a
tagged variant: mark-to-base, mark-to-mark, pair, or other. Only the mark-attachment
lookups carry decoded subtables; for the rest we keep the raw JSON.

The model is used for two purposes: collecting anchor points from GPOS
mark-attachment lookups (see [CollectAnchors]), and comparing glyph outlines
between two fonts (see [Font.Outline]).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff.anchors'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.anchors")
}

// Font is the typed subset of a font's introspection JSON we are interested in.
type Font struct {
	Head *Head            `json:"head,omitempty"`
	GPOS *LayoutTable     `json:"GPOS,omitempty"`
	GSUB *LayoutTable     `json:"GSUB,omitempty"`
	Glyf map[string]Glyph `json:"glyf,omitempty"`
}

// Head carries font-wide header values.
type Head struct {
	UnitsPerEm int `json:"unitsPerEm"`
}

// LayoutTable is a GPOS or GSUB table. Languages are keyed by
// "<script>_<language>", e.g. "deva_MAR ".
type LayoutTable struct {
	Languages   map[string]json.RawMessage `json:"languages,omitempty"`
	Lookups     map[string]Lookup          `json:"lookups,omitempty"`
	LookupOrder []string                   `json:"lookupOrder,omitempty"`
}

// LookupKind discriminates lookups.
type LookupKind int

// Kinds of lookups. KindUntyped is used for lookups without a "type" entry.
const (
	KindUntyped LookupKind = iota
	KindMarkToBase
	KindMarkToMark
	KindPair
	KindOther
)

func (k LookupKind) String() string {
	switch k {
	case KindMarkToBase:
		return "MarkToBase"
	case KindMarkToMark:
		return "MarkToMark"
	case KindPair:
		return "Pair"
	case KindOther:
		return "Other"
	}
	return "Untyped"
}

// Lookup type names used by otfcc.
const (
	TypeMarkToBase = "gpos_mark_to_base"
	TypeMarkToMark = "gpos_mark_to_mark"
	TypePair       = "gpos_pair"
)

// Lookup is a layout lookup. MarkAttach is populated for KindMarkToBase and
// KindMarkToMark only; Subtables holds the undecoded subtables of every kind.
type Lookup struct {
	Type       string
	Kind       LookupKind
	MarkAttach []MarkAttachSubtable
	Subtables  []json.RawMessage
}

// Position is an anchor position in font units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarkAnchor is the anchor of a mark glyph, belonging to an anchor class.
type MarkAnchor struct {
	Class string `json:"class"`
	Position
}

// MarkAttachSubtable is a subtable of a mark-to-base or mark-to-mark lookup.
// Bases maps a base glyph name to its attachment points, keyed by anchor class.
type MarkAttachSubtable struct {
	Marks map[string]MarkAnchor          `json:"marks"`
	Bases map[string]map[string]Position `json:"bases"`
}

// UnmarshalJSON decodes a lookup, dispatching on its type. A malformed lookup
// does not fail the font: an unreadable lookup object becomes KindUntyped, and
// mark-attachment subtables which cannot be decoded are dropped. Both are traced.
func (lu *Lookup) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type      *string           `json:"type"`
		Subtables []json.RawMessage `json:"subtables"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		tracer().Errorf("lookup not readable, treated as untyped: %v", err)
		*lu = Lookup{Kind: KindUntyped}
		return nil
	}
	*lu = Lookup{Subtables: raw.Subtables}
	if raw.Type == nil {
		lu.Kind = KindUntyped
		return nil
	}
	lu.Type = *raw.Type
	switch lu.Type {
	case TypeMarkToBase:
		lu.Kind = KindMarkToBase
	case TypeMarkToMark:
		lu.Kind = KindMarkToMark
	case TypePair:
		lu.Kind = KindPair
	default:
		lu.Kind = KindOther
	}
	if lu.Kind == KindMarkToBase || lu.Kind == KindMarkToMark {
		lu.MarkAttach = make([]MarkAttachSubtable, 0, len(raw.Subtables))
		for i, st := range raw.Subtables {
			var sub MarkAttachSubtable
			if err := json.Unmarshal(st, &sub); err != nil {
				tracer().Errorf("%s subtable %d dropped: %v", lu.Type, i, err)
				continue
			}
			lu.MarkAttach = append(lu.MarkAttach, sub)
		}
	}
	return nil
}

// Glyph is the outline data of a glyph.
type Glyph struct {
	AdvanceWidth float64         `json:"advanceWidth"`
	Contours     json.RawMessage `json:"contours,omitempty"`
	References   json.RawMessage `json:"references,omitempty"`
}

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse decodes introspection JSON.
func Parse(data []byte) (*Font, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	f := &Font{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("font introspection data: %w", err)
	}
	return f, nil
}

// UnitsPerEm returns the font's units per em, or 0 if unknown.
func (f *Font) UnitsPerEm() int {
	if f == nil || f.Head == nil {
		return 0
	}
	return f.Head.UnitsPerEm
}

// LanguageKeys returns the language system keys declared in GPOS and GSUB,
// sorted and without duplicates.
func (f *Font) LanguageKeys() []string {
	if f == nil {
		return nil
	}
	seen := map[string]bool{}
	var keys []string
	for _, t := range []*LayoutTable{f.GPOS, f.GSUB} {
		if t == nil {
			continue
		}
		for k := range t.Languages {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// Advance returns the advance width of a glyph in font units.
func (f *Font) Advance(glyphName string) (float64, bool) {
	if f == nil || f.Glyf == nil {
		return 0, false
	}
	g, ok := f.Glyf[glyphName]
	if !ok {
		return 0, false
	}
	return g.AdvanceWidth, true
}

// Outline returns a canonical string describing a glyph's outline. It is
// meant for equality tests only. Glyphs with zero advance width have an empty
// outline string. The boolean result is false if the font has no outline data
// for the glyph.
func (f *Font) Outline(glyphName string) (string, bool) {
	if f == nil || f.Glyf == nil {
		return "", false
	}
	g, ok := f.Glyf[glyphName]
	if !ok {
		return "", false
	}
	if g.AdvanceWidth <= 0 {
		return "", true
	}
	var buf bytes.Buffer
	if len(g.Contours) > 0 {
		if err := json.Compact(&buf, g.Contours); err != nil {
			tracer().Errorf("glyph %s: malformed contours: %v", glyphName, err)
			return "", false
		}
	}
	if len(g.References) > 0 {
		buf.WriteByte('|')
		if err := json.Compact(&buf, g.References); err != nil {
			tracer().Errorf("glyph %s: malformed references: %v", glyphName, err)
			return "", false
		}
	}
	return buf.String(), true
}
