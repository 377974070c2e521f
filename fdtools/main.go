package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fontdiff"
	"github.com/npillmayer/fontdiff/shape"
	"github.com/thatisuday/commando"
	"golang.org/x/text/language"
)

func main() {
	commando.
		SetExecutableName("fdtools").
		SetVersion("v0.1.0").
		SetDescription("Compare the text layout of two fonts.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("compare").
		SetDescription("Shape a text with two fonts and report layout differences. Exits with status 2 if the layouts differ.").
		SetShortDescription("compare a text").
		AddArgument("fontA", "font file path", "").
		AddArgument("fontB", "font file path to compare with", "").
		AddArgument("text...", "text to shape (variadic argument parts joined by comma by commando)", "").
		AddFlag("lang,l", "language tag (BCP 47, e.g. en, hi, ta)", commando.String, "-").
		AddFlag("shaper,s", "shaper: go-text|hb-shape", commando.String, "go-text").
		AddFlag("features,f", "feature list (e.g. -kern,+smcp,liga=0)", commando.String, "-").
		AddFlag("size,z", "nominal font size in points", commando.Int, int(fontdiff.DefaultFontSize)).
		AddFlag("nointro", "skip font introspection with otfccdump", commando.Bool, nil).
		AddFlag("exclude-outlines,x", "ignore outline differences for the exit status", commando.Bool, nil).
		SetAction(runCompareCommand)

	commando.
		Register("glyphs").
		SetDescription("Compare every glyph of two fonts by advance width and outline.").
		SetShortDescription("compare all glyphs").
		AddArgument("fontA", "font file path", "").
		AddArgument("fontB", "font file path to compare with", "").
		AddFlag("diffs,d", "list differing glyphs only", commando.Bool, nil).
		AddFlag("unicodes,u", "list glyphs mapped to a code point only", commando.Bool, nil).
		AddFlag("shaper,s", "shaper: go-text|hb-shape", commando.String, "go-text").
		AddFlag("size,z", "nominal font size in points", commando.Int, int(fontdiff.DefaultFontSize)).
		AddFlag("nointro", "skip font introspection with otfccdump", commando.Bool, nil).
		SetAction(runGlyphsCommand)

	commando.
		Register("words").
		SetDescription("Compare the layout of the words of a word list which match a query.").
		SetShortDescription("compare a word list").
		AddArgument("fontA", "font file path", "").
		AddArgument("fontB", "font file path to compare with", "").
		AddArgument("wordlist", "text file with words", "").
		AddFlag("query,q", "query text", commando.String, "-").
		AddFlag("mode,m", "match mode: contains|any-letter|any-unicode|only-unicodes|starts-with|ends-with|regex", commando.String, "contains").
		AddFlag("max,n", "maximum number of words to compare", commando.Int, 1000).
		AddFlag("all,a", "list words without differences too", commando.Bool, nil).
		AddFlag("lang,l", "language tag (BCP 47, e.g. en, hi, ta)", commando.String, "-").
		AddFlag("shaper,s", "shaper: go-text|hb-shape", commando.String, "go-text").
		AddFlag("features,f", "feature list (e.g. -kern,+smcp,liga=0)", commando.String, "-").
		AddFlag("size,z", "nominal font size in points", commando.Int, int(fontdiff.DefaultFontSize)).
		AddFlag("nointro", "skip font introspection with otfccdump", commando.Bool, nil).
		AddFlag("exclude-outlines,x", "ignore outline differences", commando.Bool, nil).
		SetAction(runWordsCommand)

	commando.
		Register("font").
		SetDescription("Print metrics, anchor source, scripts and diagnostics of a font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "font file path", "").
		AddFlag("size,z", "nominal font size in points", commando.Int, int(fontdiff.DefaultFontSize)).
		AddFlag("nointro", "skip font introspection with otfccdump", commando.Bool, nil).
		SetAction(runFontCommand)

	commando.Parse(nil)
}

// fontOptions collects the loading options common to all commands. Flags a
// command does not register are ignored.
func fontOptions(flags map[string]commando.FlagValue) []fontdiff.Option {
	var opts []fontdiff.Option
	if f, ok := flags["shaper"]; ok {
		name, err := f.GetString()
		if err != nil {
			fatalf("invalid --shaper flag: %v", err)
		}
		kind, ok := fontdiff.ParseShaperKind(strings.TrimSpace(name))
		if !ok {
			fatalf("unsupported shaper %q (expected go-text|hb-shape)", name)
		}
		opts = append(opts, fontdiff.WithShaper(kind))
	}
	if f, ok := flags["features"]; ok {
		spec := mustFlagString(f, "features")
		if spec != "" {
			feats, err := shape.ParseFeatures(splitCSVSpace(spec))
			if err != nil {
				fatalf("%v", err)
			}
			opts = append(opts, fontdiff.WithFeatures(feats...))
		}
	}
	if f, ok := flags["size"]; ok {
		size := mustFlagInt(f, "size")
		if size <= 0 {
			fatalf("--size must be > 0")
		}
		opts = append(opts, fontdiff.WithFontSize(float64(size)))
	}
	if f, ok := flags["nointro"]; ok && mustFlagBool(f, "nointro") {
		opts = append(opts, fontdiff.WithoutIntrospection())
	}
	return opts
}

func mustLoadFont(ctx context.Context, arg commando.ArgValue, opts []fontdiff.Option) *fontdiff.Font {
	path := strings.TrimSpace(arg.Value)
	if path == "" {
		fatalf("font path is required")
	}
	f, err := fontdiff.LoadContext(ctx, path, opts...)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	for _, d := range f.Diagnostics() {
		fmt.Fprintf(os.Stderr, "fdtools: %s: %v\n", path, d)
	}
	return f
}

func parseLanguage(flag commando.FlagValue) language.Tag {
	s := mustFlagString(flag, "lang")
	if s == "" {
		return language.Und
	}
	tag, err := shape.ParseLanguage(s)
	if err != nil {
		fatalf("%v", err)
	}
	return tag
}

func textArgument(arg commando.ArgValue) string {
	text := strings.TrimSpace(arg.Value)
	if text == "" {
		fatalf("input text is empty")
	}
	return text
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// mustFlagString returns a string flag, with "-" meaning "not given".
func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "fdtools: "+format+"\n", args...)
	os.Exit(1)
}
