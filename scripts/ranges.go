/*
Package scripts finds out which writing systems a font supports.

Two techniques are used and their results are unioned. The first one looks
at the Unicode coverage of a font: code points are mapped to OpenType script
tags by a static range table, and a script counts as supported once at least
PromotionThreshold code points of the font fall into its ranges. A few stray
symbols landing in a script block will not make a font a candidate for that
script.

The second technique reads the language system keys a font declares in its
GPOS and GSUB tables. otfcc writes these as "<script>_<language>", e.g.
"dev2_MAR ", and both parts are looked up in static tag dictionaries.

The range table currently covers the scripts of South and Southeast Asia.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package scripts

import (
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}

// PromotionThreshold is the number of code points a font has to cover in a
// script's ranges before the script is reported as supported.
const PromotionThreshold = 10

type scriptRange struct {
	lo, hi rune
	tag    string
}

// sorted by lo, disjoint
var scriptRanges = []scriptRange{
	{0x0780, 0x07BF, "thaa"},
	{0x0900, 0x097F, "deva"},
	{0x0980, 0x09FF, "beng"},
	{0x0A00, 0x0A7F, "guru"},
	{0x0A80, 0x0AFF, "gujr"},
	{0x0B00, 0x0B7F, "orya"},
	{0x0B80, 0x0BFF, "taml"},
	{0x0C00, 0x0C7F, "telu"},
	{0x0C80, 0x0CFF, "knda"},
	{0x0D00, 0x0D7F, "mlym"},
	{0x0D80, 0x0DFF, "sinh"},
	{0x0E00, 0x0E7F, "thai"},
	{0x0E80, 0x0EFF, "lao "},
	{0x1000, 0x109F, "mymr"},
	{0x1780, 0x17FF, "khmr"},
	{0x19E0, 0x19FF, "khmr"},
	{0x1A00, 0x1A1F, "bugi"},
	{0x1A20, 0x1AAF, "lana"},
	{0x1B00, 0x1B7F, "bali"},
	{0x1B80, 0x1BBF, "sund"},
	{0x1BC0, 0x1BFF, "batk"},
	{0x1C50, 0x1C7F, "olck"},
	{0xA880, 0xA8DF, "saur"},
	{0xA8E0, 0xA8FF, "deva"},
	{0xA930, 0xA95F, "rjng"},
	{0xA980, 0xA9DF, "java"},
	{0xA9E0, 0xA9FF, "mymr"},
	{0xAA00, 0xAA5F, "cham"},
	{0xAA60, 0xAA7F, "mymr"},
	{0xAAE0, 0xAAFF, "mtei"},
	{0xABC0, 0xABFF, "mtei"},
	{0x11000, 0x1107F, "brah"},
	{0x11100, 0x1114F, "cakm"},
	{0x11180, 0x111DF, "shrd"},
	{0x111E0, 0x111FF, "sinh"},
	{0x11300, 0x1137F, "gran"},
	{0x11480, 0x114DF, "tirh"},
	{0x11580, 0x115FF, "sidd"},
	{0x119A0, 0x119FF, "nand"},
	{0x11EE0, 0x11EFF, "maka"},
	{0x11FC0, 0x11FFF, "taml"},
}

// ScriptTagForRune returns the OpenType script tag of the range r falls into.
func ScriptTagForRune(r rune) (string, bool) {
	i := sort.Search(len(scriptRanges), func(i int) bool {
		return scriptRanges[i].hi >= r
	})
	if i < len(scriptRanges) && scriptRanges[i].lo <= r {
		return scriptRanges[i].tag, true
	}
	return "", false
}

// CountTags tallies script tags over a font's code points. Code points outside
// of every range are not counted.
func CountTags(runes []rune) map[string]int {
	counts := make(map[string]int)
	for _, r := range runes {
		if tag, ok := ScriptTagForRune(r); ok {
			counts[tag]++
		}
	}
	return counts
}

// FromUnicodes returns the names of the scripts supported by a font with the
// given code point coverage, sorted by name.
func FromUnicodes(runes []rune) []string {
	counts := CountTags(runes)
	names := make([]string, 0, len(counts))
	for tag, n := range counts {
		if n < PromotionThreshold {
			tracer().Debugf("script %q below threshold with %d code points", tag, n)
			continue
		}
		if name, ok := ScriptName(tag); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
