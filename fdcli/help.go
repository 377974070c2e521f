package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (bool, error) {
	help(op.arg)
	return false, nil
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "words", "word", "match":
		pterm.Info.Println("words[:mode] <file> [query]")
		pterm.Println(`
	Reads a word list, selects the words matching the query and compares
	their layout in both fonts. Only words with differences are listed.
	Modes:
	  contains       word contains the query (default)
	  any-letter     word contains any letter of the query
	  any-unicode    word contains any code point of the query
	  only-unicodes  word consists of code points of the query only
	  starts-with    word starts with the query
	  ends-with      word ends with the query
	  regex          query is a regular expression
	Long words are skipped, at most 1000 words are compared.
	`)
	case "clusters", "cluster":
		pterm.Info.Println("clusters[:nukta|:diffs] <file> [<base group>[, <sub-consonant>]]")
		pterm.Println(`
	Builds syllable clusters from a cluster data file and compares their
	layout in both fonts. Every base of the group is combined with the
	sub-consonant, if given, and with each vowel sign and other sign.
	Without a base group, the groups and sub-consonants are listed.
	  :nukta  add the script's nukta to every base
	  :diffs  list clusters with differences only
	`)
	case "numbers", "number":
		pterm.Info.Println("numbers[:thousand|:lakh|:grouped] <digits> [script|file.json]")
		pterm.Println(`
	Compares numbers of 1 to 9 digits, written in the digits of a script
	(OpenType script tag, e.g. deva) or of a cluster data file. Without a
	script, the script font A covers most is used. At most 200 numbers are
	compared.
	  :thousand  group as 1,234,567
	  :lakh      group as 12,34,567
	  :grouped   group the way the script usually does
	`)
	case "anchors", "ankr":
		pterm.Info.Println("anchors [glyph] / ankr")
		pterm.Println(`
	anchors lists the mark anchors of a glyph, or of all glyphs, in pixels.
	They come from an AAT 'ankr' table if present, else from GPOS mark
	attachment lookups.
	ankr dumps the 'ankr' table of font A in font units.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	info                  describe the loaded fonts
	lang [tag]            set the shaping language (BCP 47), or guess it
	shape <text>          list the glyph layout of a text for each font
	diff <text>           compare the layout of a text in both fonts
	glyphs[:diffs]        compare all glyphs by advance width and outline
	glyphs:unicodes       as above, glyphs mapped to code points only
	words[:mode] <file>   compare words of a word list  (help words)
	clusters <file> ...   compare syllable clusters     (help clusters)
	numbers <digits> ...  compare numbers               (help numbers)
	anchors [glyph]       list mark anchors             (help anchors)
	ankr                  dump the 'ankr' table
	reload                reload the font files
	quit                  leave
	`)
	}
}
