package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/fontdiff"
	"github.com/npillmayer/fontdiff/ankr"
	"github.com/npillmayer/fontdiff/compare"
	"github.com/npillmayer/fontdiff/internal/report"
	"github.com/npillmayer/fontdiff/scripts"
	"github.com/npillmayer/fontdiff/shape"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// Op is a parsed command line: "op[:format] argument text".
type Op struct {
	code   int
	arg    string
	format string
}

const (
	QUIT int = iota
	HELP
	INFO
	LANG
	SHAPE
	DIFF
	GLYPHS
	WORDS
	ANCHORS
	ANKR
	RELOAD
	CLUSTERS
	NUMBERS
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"info":     INFO,
	"lang":     LANG,
	"shape":    SHAPE,
	"diff":     DIFF,
	"glyphs":   GLYPHS,
	"words":    WORDS,
	"anchors":  ANCHORS,
	"ankr":     ANKR,
	"reload":   RELOAD,
	"clusters": CLUSTERS,
	"numbers":  NUMBERS,
}

func parseCommand(line string) *Op {
	head, arg, _ := strings.Cut(line, " ")
	name, format, _ := strings.Cut(head, ":")
	code, ok := opMap[strings.ToLower(name)]
	if !ok {
		tracer().Infof("unknown command %q", name)
		code = HELP
		arg = ""
	}
	return &Op{code: code, arg: strings.TrimSpace(arg), format: format}
}

var commandFn = map[int]func(*Intp, *Op) (bool, error){
	QUIT:     quitOp,
	HELP:     helpOp,
	INFO:     infoOp,
	LANG:     langOp,
	SHAPE:    shapeOp,
	DIFF:     diffOp,
	GLYPHS:   glyphsOp,
	WORDS:    wordsOp,
	ANCHORS:  anchorsOp,
	ANKR:     ankrOp,
	RELOAD:   reloadOp,
	CLUSTERS: clustersOp,
	NUMBERS:  numbersOp,
}

func (intp *Intp) execute(op *Op) (stop bool, err error) {
	tracer().Debugf("op = %v", op)
	f, ok := commandFn[op.code]
	if !ok {
		return false, fmt.Errorf("unknown command code: %d", op.code)
	}
	return f(intp, op)
}

var errNoText = errors.New("command needs a text argument")
var errNoCompare = errors.New("no font to compare with, use -compare")

func quitOp(intp *Intp, op *Op) (bool, error) {
	return true, nil
}

func infoOp(intp *Intp, op *Op) (bool, error) {
	return false, report.Table(report.Fonts(intp.fonts()...))
}

// lang sets the shaping language; without argument, the default language of
// the first script of font A is used.
func langOp(intp *Intp, op *Op) (bool, error) {
	if op.arg != "" {
		tag, err := shape.ParseLanguage(op.arg)
		if err != nil {
			return false, err
		}
		intp.lang = tag
		return false, nil
	}
	intp.lang = language.Und
	for _, tag := range scriptTags(intp.a) {
		if l := scripts.DefaultLanguage(tag); l != language.Und {
			intp.lang = l
			break
		}
	}
	pterm.Printf("language is %s\n", intp.lang)
	return false, nil
}

// scriptTags returns the script tags of the code points a font covers, most
// frequent first.
func scriptTags(f *fontdiff.Font) []string {
	counts := scripts.CountTags(f.Coverage())
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	return tags
}

func shapeOp(intp *Intp, op *Op) (bool, error) {
	if op.arg == "" {
		return false, errNoText
	}
	for i, f := range intp.fonts() {
		l, err := f.Layout(intp.ctx, op.arg, intp.lang)
		if err != nil {
			return false, err
		}
		pterm.Info.Printf("Font %c: %s\n", 'A'+i, f.Name())
		if err := report.Table(report.Glyphs(l)); err != nil {
			return false, err
		}
	}
	return false, nil
}

func diffOp(intp *Intp, op *Op) (bool, error) {
	if op.arg == "" {
		return false, errNoText
	}
	if intp.b == nil {
		return false, errNoCompare
	}
	c, err := fontdiff.Compare(intp.ctx, intp.a, intp.b, op.arg, intp.lang)
	if err != nil {
		return false, err
	}
	if err := report.Table(report.SideBySide(c.A, c.B)); err != nil {
		return false, err
	}
	return false, report.Table(report.Diff(c))
}

// glyphs[:diffs|:unicodes] compares all glyphs of the fonts.
func glyphsOp(intp *Intp, op *Op) (bool, error) {
	opts := compare.Options{
		DiffsOnly:    op.format == "diffs",
		UnicodesOnly: op.format == "unicodes",
	}
	var items []compare.GlyphItem
	for it := range compare.Glyphs(intp.ctx, intp.a, intp.b, opts) {
		items = append(items, it)
	}
	return false, report.Table(report.GlyphItems(items))
}

// words[:mode] <file> [query] compares the words of a word list which match
// a query.
func wordsOp(intp *Intp, op *Op) (bool, error) {
	path, query, _ := strings.Cut(op.arg, " ")
	if path == "" {
		return false, errors.New("words needs a word list file")
	}
	mode := compare.MatchContains
	if op.format != "" {
		var ok bool
		if mode, ok = compare.ParseMatchMode(op.format); !ok {
			return false, fmt.Errorf("unknown match mode %q", op.format)
		}
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	q := compare.Query{Text: strings.TrimSpace(query), Mode: mode}
	words, err := compare.SelectWords(string(text), q, compare.DefaultMaxWords)
	if err != nil {
		return false, err
	}
	pterm.Info.Printf("%d words selected\n", len(words))
	return false, intp.compareWords(words, true)
}

// compareWords lays out words in both fonts and lists them.
func (intp *Intp) compareWords(words []string, diffsOnly bool) error {
	var items []compare.WordItem
	opts := compare.Options{Language: intp.lang, DiffsOnly: diffsOnly}
	for it := range compare.Words(intp.ctx, intp.a, intp.b, words, opts) {
		items = append(items, it)
	}
	if diffsOnly && intp.b != nil {
		pterm.Info.Printf("%d of %d differ\n", len(items), len(words))
	}
	return report.Table(report.WordItems(items))
}

// clusters[:nukta|:diffs] <file> <base group>[, <sub-consonant>] compares the
// clusters built from a cluster data file.
func clustersOp(intp *Intp, op *Op) (bool, error) {
	path, rest, _ := strings.Cut(op.arg, " ")
	group, sub, _ := strings.Cut(rest, ",")
	group, sub = strings.TrimSpace(group), strings.TrimSpace(sub)
	if path == "" {
		return false, errors.New("clusters needs a cluster data file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	cd, err := compare.ParseClusterData(data)
	if err != nil {
		return false, err
	}
	if group == "" {
		pterm.Info.Printf("base groups: %s\n", strings.Join(cd.BaseNames(), ", "))
		pterm.Info.Printf("sub-consonants: %s\n", strings.Join(cd.SubConsonantNames(), ", "))
		return false, nil
	}
	set, err := cd.Set(group, sub, op.format == "nukta")
	if err != nil {
		return false, err
	}
	clusters := compare.Clusters(set)
	pterm.Info.Printf("%d clusters built\n", len(clusters))
	return false, intp.compareWords(clusters, op.format == "diffs")
}

// numbers[:thousand|:lakh|:grouped] <digit count> [script tag | cluster file]
// compares numbers written in a script's digits. Without a script, the script
// font A covers most is used, if it has digits of its own.
func numbersOp(intp *Intp, op *Op) (bool, error) {
	countArg, source, _ := strings.Cut(op.arg, " ")
	count, err := strconv.Atoi(countArg)
	if err != nil {
		return false, fmt.Errorf("numbers needs a digit count: %w", err)
	}
	digits, lakh, err := intp.scriptDigits(strings.TrimSpace(source))
	if err != nil {
		return false, err
	}
	grouping := compare.NoGrouping
	switch op.format {
	case "thousand":
		grouping = compare.GroupThousands
	case "lakh":
		grouping = compare.GroupLakh
	case "grouped":
		grouping = compare.GroupThousands
		if lakh {
			grouping = compare.GroupLakh
		}
	}
	numbers, err := compare.Numbers(count, digits, grouping)
	if err != nil {
		return false, err
	}
	pterm.Info.Printf("%d numbers built\n", len(numbers))
	return false, intp.compareWords(numbers, false)
}

// scriptDigits finds the digits for the numbers command, and whether they are
// grouped in lakhs. source is a script tag, a cluster data file, or empty.
func (intp *Intp) scriptDigits(source string) ([]rune, bool, error) {
	if strings.HasSuffix(source, ".json") {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, false, err
		}
		cd, err := compare.ParseClusterData(data)
		if err != nil {
			return nil, false, err
		}
		if cd.Digits() == nil {
			return nil, false, fmt.Errorf("%s lists no digits", source)
		}
		return cd.Digits(), cd.UsesLakh(), nil
	}
	tag := source
	if tag == "" {
		tag = "latn"
		for _, t := range scriptTags(intp.a) {
			if _, ok := scripts.Digits(t); ok {
				tag = t
				break
			}
		}
	}
	if len(tag) < 4 {
		tag += strings.Repeat(" ", 4-len(tag)) // e.g. "lao "
	}
	digits, ok := scripts.Digits(tag)
	if !ok {
		return nil, false, fmt.Errorf("script %q has no digits of its own", tag)
	}
	return digits, scripts.UsesLakh(tag), nil
}

// anchors <glyph> lists the anchors of a glyph in each font.
func anchorsOp(intp *Intp, op *Op) (bool, error) {
	rows := [][]string{{"Font", "Source", "Glyph", "Anchors"}}
	for i, f := range intp.fonts() {
		tab := f.Anchors()
		names := tab.Names()
		if op.arg != "" {
			names = []string{op.arg}
		}
		for _, name := range names {
			pts := make([]string, 0)
			for _, p := range tab.Points(name) {
				pts = append(pts, p.String())
			}
			rows = append(rows, []string{
				string(rune('A' + i)), f.AnchorSource().String(), name, strings.Join(pts, " "),
			})
		}
	}
	return false, report.Table(rows)
}

// ankr dumps the raw 'ankr' table of font A.
func ankrOp(intp *Intp, op *Op) (bool, error) {
	data, ok := intp.a.RawTable("ankr")
	if !ok {
		return false, errors.New("font has no 'ankr' table")
	}
	glyphs, err := ankr.DecodeGlyphs(data)
	if err != nil {
		return false, err
	}
	rows := [][]string{{"GID", "Glyph", "Anchors (font units)"}}
	for _, g := range glyphs {
		pts := make([]string, len(g.Points))
		for j, p := range g.Points {
			pts[j] = fmt.Sprintf("(%d,%d)", p.X, p.Y)
		}
		rows = append(rows, []string{
			strconv.Itoa(int(g.GID)), intp.a.GlyphName(g.GID), strings.Join(pts, " "),
		})
	}
	return false, report.Table(rows)
}

func reloadOp(intp *Intp, op *Op) (bool, error) {
	for _, f := range intp.fonts() {
		if err := f.Reload(intp.ctx); err != nil {
			return false, err
		}
		pterm.Info.Printf("reloaded %s\n", f.Path())
	}
	return false, nil
}
