package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontdiff"
	"github.com/npillmayer/fontdiff/shape"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// tracer traces with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}

var traceKeys = []string{"fontdiff", "fontdiff.anchors", "fontdiff.layout", "fontdiff.shaper",
	"fontdiff.compare"}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fontA := flag.String("font", "", "Font to load")
	fontB := flag.String("compare", "", "Font to compare with")
	shaperName := flag.String("shaper", "go-text", "Shaper [go-text|hb-shape]")
	features := flag.String("features", "", "OpenType features, e.g. -kern,+smcp")
	size := flag.Float64("size", fontdiff.DefaultFontSize, "Nominal font size in points")
	nointro := flag.Bool("nointro", false, "Skip font introspection with otfccdump")
	watch := flag.Bool("watch", false, "Reload fonts when their files change")
	flag.Parse()
	if !setTraceLevel(*tlevel) {
		pterm.Error.Printf("Invalid trace level: %s\n", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the font comparison CLI") // colored welcome message
	//
	opts, err := loadOptions(*shaperName, *features, *size, *nointro)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	// set up REPL
	repl, err := readline.New("fd > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, lang: language.Und, ctx: context.Background()}
	//
	// load fonts to use
	if err := intp.loadFonts(*fontA, *fontB, opts); err != nil { // font names provided by flags
		pterm.Error.Println(err)
		os.Exit(4)
	}
	if *watch {
		if err := intp.watchFonts(); err != nil {
			pterm.Error.Println(err)
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// setTraceLevel sets the level of all our tracers.
func setTraceLevel(s string) bool {
	for _, key := range traceKeys {
		switch s {
		case "Debug":
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		case "Info":
			tracing.Select(key).SetTraceLevel(tracing.LevelInfo)
		case "Error":
			tracing.Select(key).SetTraceLevel(tracing.LevelError)
		default:
			return false
		}
	}
	return true
}

func loadOptions(shaperName, features string, size float64, nointro bool) ([]fontdiff.Option, error) {
	kind, ok := fontdiff.ParseShaperKind(shaperName)
	if !ok {
		return nil, fmt.Errorf("unknown shaper %q", shaperName)
	}
	opts := []fontdiff.Option{fontdiff.WithShaper(kind), fontdiff.WithFontSize(size)}
	if features != "" {
		feats, err := shape.ParseFeatures(strings.Split(features, ","))
		if err != nil {
			return nil, err
		}
		opts = append(opts, fontdiff.WithFeatures(feats...))
	}
	if nointro {
		opts = append(opts, fontdiff.WithoutIntrospection())
	}
	return opts, nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	ctx  context.Context
	a, b *fontdiff.Font // b may be nil
	lang language.Tag
	repl *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.a == nil {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("( %s", intp.a.Name()))
	if intp.b != nil {
		sb.WriteString(fmt.Sprintf(" <> %s", intp.b.Name()))
	}
	if intp.lang != language.Und {
		sb.WriteString(fmt.Sprintf(" | lang=%s", intp.lang))
	}
	sb.WriteString(" )")
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFonts(pathA, pathB string, opts []fontdiff.Option) (err error) {
	if pathA == "" {
		return fmt.Errorf("no font given, use -font")
	}
	if intp.a, err = fontdiff.LoadContext(intp.ctx, pathA, opts...); err != nil {
		return err
	}
	tracer().Infof("loaded font %s", intp.a.Name())
	if pathB != "" {
		if intp.b, err = fontdiff.LoadContext(intp.ctx, pathB, opts...); err != nil {
			return err
		}
		tracer().Infof("loaded font %s", intp.b.Name())
	}
	for _, f := range intp.fonts() {
		if f.Degraded() {
			pterm.Warning.Printf("%s: some data is unavailable, see 'info'\n", f.Path())
		}
	}
	return nil
}

// watchFonts reloads the fonts whenever their files change. Reloads are
// reported as they happen; watching ends with the interpreter's context.
func (intp *Intp) watchFonts() error {
	for _, f := range intp.fonts() {
		events, err := f.Watch(intp.ctx)
		if err != nil {
			return fmt.Errorf("cannot watch %s: %w", f.Path(), err)
		}
		go func() {
			for ev := range events {
				intp.reportReload(ev)
			}
		}()
		tracer().Infof("watching %s", f.Path())
	}
	return nil
}

func (intp *Intp) reportReload(ev fontdiff.ReloadEvent) {
	if ev.Err != nil {
		pterm.Error.Printf("%s changed but cannot be reloaded: %v\n", ev.Path, ev.Err)
		return
	}
	pterm.Info.Printf("%s changed, reloaded\n", ev.Path)
	if intp.repl != nil {
		intp.repl.Refresh()
	}
}

func (intp *Intp) fonts() []*fontdiff.Font {
	if intp.b == nil {
		return []*fontdiff.Font{intp.a}
	}
	return []*fontdiff.Font{intp.a, intp.b}
}
