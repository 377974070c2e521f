package ankr

import (
	"fmt"
	"math"

	"github.com/npillmayer/fontdiff/anchors"
)

// LookupFormatSegmentArray is the only AAT lookup table format we decode:
// a sorted array of glyph ranges.
const LookupFormatSegmentArray = 4

// sentinelGlyph terminates the segment array.
const sentinelGlyph = 0xFFFF

// GlyphNamer maps glyph IDs to glyph names. It returns an empty string for
// glyphs it does not know.
type GlyphNamer interface {
	GlyphName(gid uint16) string
}

// RawPoint is an anchor point as stored in the table, in font units.
type RawPoint struct {
	X, Y int16
}

// GlyphAnchors are the raw anchor points of a single glyph.
type GlyphAnchors struct {
	GID    uint16
	Points []RawPoint
}

// GlyphRange is a segment of the lookup table.
type GlyphRange struct {
	First, Last uint16
	Value       uint16 // lookup value, not used for decoding
}

// Decode reads the anchor points from a binary 'ankr' table.
// Coordinates are divided by scale. Glyph IDs are converted to glyph names
// with the help of names; glyphs the namer does not know are named "gid<N>".
//
// If the lookup table has a format other than 4, Decode returns an empty table
// together with an *UnsupportedFormatError. Malformed tables result in a nil
// table and a *TableDecodeError.
func Decode(data []byte, scale float64, names GlyphNamer) (*anchors.Table, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, errDecode("header", -1, "invalid scale %g", scale)
	}
	glyphs, err := DecodeGlyphs(data)
	if err != nil {
		if _, ok := err.(*UnsupportedFormatError); ok {
			return anchors.Empty(), err
		}
		return nil, err
	}
	b := anchors.NewBuilder()
	for _, g := range glyphs {
		name := glyphName(names, g.GID)
		b.Declare(name)
		for _, p := range g.Points {
			b.Add(name, anchors.Point{
				X: float64(p.X) / scale,
				Y: float64(p.Y) / scale,
			})
		}
	}
	t := b.Table()
	tracer().Debugf("ankr: decoded anchors for %d glyphs", t.Len())
	return t, nil
}

// DecodeGlyphs reads the unscaled anchor points per glyph ID, in table order.
// Duplicate points are kept.
func DecodeGlyphs(data []byte) ([]GlyphAnchors, error) {
	b := binarySegm(data)
	version, err := b.u16("header", 0)
	if err != nil {
		return nil, err
	}
	flags, err := b.u16("header", 2)
	if err != nil {
		return nil, err
	}
	if version != 0 || flags != 0 {
		tracer().Debugf("ankr: ignoring version=%d flags=%#x", version, flags)
	}
	lookupOffset, err := b.u32("header", 4)
	if err != nil {
		return nil, err
	}
	glyphDataOffset, err := b.u32("header", 8)
	if err != nil {
		return nil, err
	}
	ranges, err := readLookup(b, int(lookupOffset))
	if err != nil {
		return nil, err
	}
	return readGlyphData(b, ranges, int(glyphDataOffset))
}

// readLookup reads the segments of a format 4 lookup table. Iteration stops
// at the sentinel segment.
func readLookup(b binarySegm, at int) ([]GlyphRange, error) {
	format, err := b.u16("lookup", at)
	if err != nil {
		return nil, err
	}
	if format != LookupFormatSegmentArray {
		tracer().Infof("ankr: lookup table format %d not supported", format)
		return nil, &UnsupportedFormatError{Format: format}
	}
	// BinSrchHeader: unitSize, nUnits, then 6 bytes of search hints we do not need,
	// as we scan the segments linearly
	nUnits, err := b.u16("lookup", at+4)
	if err != nil {
		return nil, err
	}
	pos := at + 12
	ranges := make([]GlyphRange, 0, nUnits)
	for i := 0; i < int(nUnits); i++ {
		if !b.has(pos, 6) {
			return nil, errDecode("lookup", pos, "segment %d of %d truncated", i, nUnits)
		}
		last, _ := b.u16("lookup", pos)
		first, _ := b.u16("lookup", pos+2)
		value, _ := b.u16("lookup", pos+4)
		if first >= sentinelGlyph {
			break
		}
		if first > last {
			return nil, errDecode("lookup", pos, "segment %d has first glyph %d > last glyph %d",
				i, first, last)
		}
		ranges = append(ranges, GlyphRange{First: first, Last: last, Value: value})
		pos += 6
	}
	return ranges, nil
}

// readGlyphData walks the glyph data table, one anchor array per glyph of
// every range, advancing monotonically.
func readGlyphData(b binarySegm, ranges []GlyphRange, at int) ([]GlyphAnchors, error) {
	var glyphs []GlyphAnchors
	pos := at
	for _, r := range ranges {
		for gid := int(r.First); gid <= int(r.Last); gid++ {
			count, err := b.u32("glyph data", pos)
			if err != nil {
				return nil, err
			}
			pos += 4
			if !b.has(pos, int(count)*4) {
				return nil, errDecode("glyph data", pos,
					"glyph %d claims %d anchors, exceeding table size %d", gid, count, len(b))
			}
			g := GlyphAnchors{GID: uint16(gid), Points: make([]RawPoint, 0, count)}
			for j := uint32(0); j < count; j++ {
				x, _ := b.i16("glyph data", pos)
				y, _ := b.i16("glyph data", pos+2)
				g.Points = append(g.Points, RawPoint{X: x, Y: y})
				pos += 4
			}
			glyphs = append(glyphs, g)
		}
	}
	return glyphs, nil
}

func glyphName(names GlyphNamer, gid uint16) string {
	if names != nil {
		if name := names.GlyphName(gid); name != "" {
			return name
		}
	}
	return fmt.Sprintf("gid%d", gid)
}
