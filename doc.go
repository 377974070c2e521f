/*
Package fontdiff compares how two fonts render the same text.

A [Font] is loaded from a font file and owns everything needed to lay out
text with it: the parsed binary font, an optional introspection model of its
layout tables, a shaper, and the active anchor table. Laying out a string
yields a canonical layout (see package layout), and two canonical layouts of
the same string are compared by [Compare].

Anchor points come from exactly one source per font. Fonts carrying AAT
tables 'morx' and 'kerx' take their anchors from the binary 'ankr' table;
all other fonts, and AAT fonts whose 'ankr' table cannot be decoded, take
them from the mark attachment lookups of GPOS. See [SelectAnchorSource].

Failures of external collaborators never make a font unusable. They are
recorded as diagnostics of the font (see [Font.Diagnostics]) and the
affected data is treated as unavailable.

# Scale

Layout coordinates are given in points at a nominal font size (192pt by
default), i.e. font units are divided by

	scale = unitsPerEm / fontSize

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontdiff

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}
