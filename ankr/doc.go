/*
Package ankr decodes the anchor point table ('ankr') of AAT fonts.

The 'ankr' table stores a list of anchor points for glyphs. It is accompanied by
'morx' and 'kerx' tables, which refer to the anchors by index. For comparing
fonts we are only interested in the coordinates, not in how they are referenced.

Table layout (all values big-endian):

	ankr header
	  uint16  version            (always 0, ignored)
	  uint16  flags              (always 0, ignored)
	  uint32  lookupTableOffset
	  uint32  glyphDataTableOffset
	lookup table (AAT lookup, only format 4 is supported)
	  uint16  format
	  uint16  unitSize, nUnits, searchRange, entrySelector, rangeShift
	  nUnits × { uint16 lastGlyph, uint16 firstGlyph, uint16 value }
	glyph data table, one entry per glyph of every segment, in order
	  uint32  anchorCount
	  anchorCount × { int16 x, int16 y }

Decoding is all or nothing: a truncated or otherwise malformed table yields a
[TableDecodeError] and no anchors at all.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ankr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff.anchors'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.anchors")
}
