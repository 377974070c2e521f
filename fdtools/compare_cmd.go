package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/fontdiff"
	"github.com/npillmayer/fontdiff/compare"
	"github.com/npillmayer/fontdiff/internal/report"
	"github.com/thatisuday/commando"
)

// exitDiffers is the exit status of compare when the layouts differ.
const exitDiffers = 2

func runCompareCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	ctx := context.Background()
	opts := fontOptions(flags)
	a := mustLoadFont(ctx, args["fontA"], opts)
	b := mustLoadFont(ctx, args["fontB"], opts)
	text := textArgument(args["text"])
	lang := parseLanguage(flags["lang"])

	c, err := fontdiff.Compare(ctx, a, b, text, lang)
	if err != nil {
		fatalf("compare failed: %v", err)
	}
	if err := report.Table(report.SideBySide(c.A, c.B)); err != nil {
		fatalf("%v", err)
	}
	if err := report.Table(report.Diff(c)); err != nil {
		fatalf("%v", err)
	}
	if c.HasDiff(mustFlagBool(flags["exclude-outlines"], "exclude-outlines")) {
		os.Exit(exitDiffers)
	}
}

func runGlyphsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	ctx := context.Background()
	opts := fontOptions(flags)
	a := mustLoadFont(ctx, args["fontA"], opts)
	b := mustLoadFont(ctx, args["fontB"], opts)

	copts := compare.Options{
		DiffsOnly:    mustFlagBool(flags["diffs"], "diffs"),
		UnicodesOnly: mustFlagBool(flags["unicodes"], "unicodes"),
	}
	var items []compare.GlyphItem
	for it := range compare.Glyphs(ctx, a, b, copts) {
		items = append(items, it)
	}
	if err := report.Table(report.GlyphItems(items)); err != nil {
		fatalf("%v", err)
	}
}

func runWordsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	ctx := context.Background()
	opts := fontOptions(flags)
	a := mustLoadFont(ctx, args["fontA"], opts)
	b := mustLoadFont(ctx, args["fontB"], opts)

	mode, ok := compare.ParseMatchMode(mustFlagString(flags["mode"], "mode"))
	if !ok {
		fatalf("unsupported match mode %q", mustFlagString(flags["mode"], "mode"))
	}
	limit := mustFlagInt(flags["max"], "max")
	if limit <= 0 {
		fatalf("--max must be > 0")
	}
	text, err := os.ReadFile(args["wordlist"].Value)
	if err != nil {
		fatalf("cannot read word list: %v", err)
	}
	q := compare.Query{Text: mustFlagString(flags["query"], "query"), Mode: mode}
	words, err := compare.SelectWords(string(text), q, limit)
	if err != nil {
		fatalf("%v", err)
	}
	if f, ok := flags["verbose"]; ok && mustFlagBool(f, "verbose") {
		fmt.Fprintf(os.Stderr, "fdtools: %d words selected\n", len(words))
	}
	copts := compare.Options{
		DiffsOnly:       !mustFlagBool(flags["all"], "all"),
		ExcludeOutlines: mustFlagBool(flags["exclude-outlines"], "exclude-outlines"),
		MaxWords:        limit,
		Language:        parseLanguage(flags["lang"]),
	}
	var items []compare.WordItem
	for it := range compare.Words(ctx, a, b, words, copts) {
		items = append(items, it)
	}
	if err := report.Table(report.WordItems(items)); err != nil {
		fatalf("%v", err)
	}
}
