package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/fontdiff/internal/report"
	"github.com/npillmayer/fontdiff/layout"
	"github.com/npillmayer/fontdiff/scripts"
	"github.com/thatisuday/commando"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f := mustLoadFont(context.Background(), args["font"], fontOptions(flags))

	if err := report.Table(report.Fonts(f)); err != nil {
		fatalf("%v", err)
	}
	m, err := f.Metrics()
	if err != nil {
		fatalf("cannot read metrics: %v", err)
	}
	fmt.Printf("Family: %s\n", f.Family())
	if v := f.Version(); v != "" {
		fmt.Printf("Version: %s\n", v)
	}
	fmt.Printf("Glyphs: %d, code points: %d\n", len(f.GlyphNames()), len(f.Coverage()))
	fmt.Printf("Metrics at %gpt: ascent=%g descent=%g line height=%g x-height=%g cap height=%g\n",
		m.FontSize, layout.Round3(m.Ascent), layout.Round3(m.Descent), layout.Round3(m.LineHeight),
		layout.Round3(m.XHeight), layout.Round3(m.CapHeight))

	counts := scripts.CountTags(f.Coverage())
	parts := make([]string, 0, len(counts))
	for tag, n := range counts {
		name, _ := scripts.ScriptName(tag)
		parts = append(parts, fmt.Sprintf("%s=%d", name, n))
	}
	if len(parts) > 0 {
		sort.Strings(parts)
		fmt.Printf("Script coverage: %s\n", strings.Join(parts, " "))
	}
}
